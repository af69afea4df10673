package parser

import (
	"fmt"

	"github.com/erraggy/treeschema/value"
)

// DocumentStats summarizes a decoded document's structure.
type DocumentStats struct {
	// NodeCount is the total number of nodes in the tree.
	NodeCount int
	// MaxDepth is the deepest nesting level (the root is depth 1).
	MaxDepth int
	// KindCounts maps kind names (null, boolean, number, string, array,
	// object) to the number of nodes of that kind.
	KindCounts map[string]int
}

// CollectStats walks the document and gathers structural statistics.
func CollectStats(doc value.Value) DocumentStats {
	stats := DocumentStats{KindCounts: map[string]int{}}
	stats.NodeCount, stats.MaxDepth = survey(doc, 1, stats.KindCounts)
	return stats
}

func survey(v value.Value, depth int, kindCounts map[string]int) (nodes, maxDepth int) {
	kindCounts[v.Kind().String()]++
	nodes = 1
	maxDepth = depth

	switch v.Kind() {
	case value.KindSequence:
		for _, item := range v.Items() {
			n, d := survey(item, depth+1, kindCounts)
			nodes += n
			if d > maxDepth {
				maxDepth = d
			}
		}
	case value.KindMapping:
		for _, key := range v.Keys() {
			child, _ := v.Get(key)
			n, d := survey(child, depth+1, kindCounts)
			nodes += n
			if d > maxDepth {
				maxDepth = d
			}
		}
	}
	return nodes, maxDepth
}

// FormatBytes renders a byte count in human-readable form (B, KB, MB, GB).
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMG"[exp])
}
