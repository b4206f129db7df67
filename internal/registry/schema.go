package registry

import "github.com/zclconf/go-cty/cty"

// defaultsSchema represents the `defaults` block of the registry document.
type defaultsSchema struct {
	BuildCmd       string `hcl:"build_cmd"`
	FallbackHeader string `hcl:"fallback_header"`
}

// tweakSchema represents one `tweak` block. Every attribute is optional;
// scalar overrides are decoded as cty values so translation can apply
// type conversion uniformly.
type tweakSchema struct {
	ID          string     `hcl:"id,label"`
	Release     bool       `hcl:"release,optional"`
	Appex       bool       `hcl:"appex,optional"`
	BuildCmd    *cty.Value `hcl:"build_cmd,optional"`
	DependsOn   []string   `hcl:"depends_on,optional"`
	Headers     []string   `hcl:"headers,optional"`
	DebFilter   *cty.Value `hcl:"deb_filter,optional"`
	DebExclude  *cty.Value `hcl:"deb_exclude,optional"`
	PreBuildCmd *cty.Value `hcl:"pre_build_cmd,optional"`
	Skip        *cty.Value `hcl:"skip,optional"`
}

// headerSchema represents one `header` block of the header repository table.
type headerSchema struct {
	Name string `hcl:"name,label"`
	Repo string `hcl:"repo"`
}

// rootSchema represents the top-level structure of the registry document.
type rootSchema struct {
	Defaults *defaultsSchema `hcl:"defaults,block"`
	Tweaks   []*tweakSchema  `hcl:"tweak,block"`
	Headers  []*headerSchema `hcl:"header,block"`
}
