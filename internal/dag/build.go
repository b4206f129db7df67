package dag

import (
	"context"
	"fmt"

	"github.com/Balackburn/tweakplan/internal/ctxlog"
	"github.com/Balackburn/tweakplan/internal/tweak"
)

// Build constructs the dependency graph for a set of resolved tweak records.
func Build(ctx context.Context, records []*tweak.Record) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: starting graph construction.")
	graph := New()

	// First pass: create all nodes.
	for _, rec := range records {
		graph.AddNode(rec.ID)
	}
	logger.Debug("Build: node creation complete.", "node_count", graph.Len())

	// Second pass: link declared dependencies.
	for _, rec := range records {
		for _, depID := range rec.DependsOn {
			if err := graph.AddEdge(depID, rec.ID); err != nil {
				return nil, fmt.Errorf("error linking dependency graph: %w", err)
			}
		}
	}
	logger.Debug("Build: dependency linking complete.")

	return graph, nil
}
