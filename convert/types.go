// SPDX-License-Identifier: MIT
package convert

import "errors"

var (
	// ErrUnconvertible is returned by ToGraph after every shape probe
	// has failed.
	ErrUnconvertible = errors.New("convert: value matches no known graph shape")
	// ErrBadMatrix is returned for a non-square adjacency matrix or a
	// node list whose length does not match the matrix dimension.
	ErrBadMatrix = errors.New("convert: malformed adjacency matrix")
)

// Edge is one entry of an EdgeList. Attrs may be nil.
type Edge struct {
	U, V  string
	Key   int
	Attrs map[string]any
}

// exportConfig aggregates per-call export options.
type exportConfig struct {
	nodelist []string
	hasList  bool
	edgeData map[string]any
	override bool
}

// ExportOption customizes a single export call.
type ExportOption func(*exportConfig)

// WithNodelist restricts an export to the induced subgraph on nodes.
// Unknown node IDs are ignored; output order follows the list.
func WithNodelist(nodes ...string) ExportOption {
	return func(c *exportConfig) { c.nodelist = nodes; c.hasList = true }
}

// WithEdgeData reports data for every edge instead of its real
// attributes. The same map instance is shared across all entries.
func WithEdgeData(data map[string]any) ExportOption {
	return func(c *exportConfig) { c.edgeData = data; c.override = true }
}

func buildExportConfig(opts []ExportOption) exportConfig {
	var c exportConfig
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
