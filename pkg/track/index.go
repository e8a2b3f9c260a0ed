package track

import (
	"sort"

	"github.com/go-scals/scals/pkg/state"
)

// Index is the reverse dependency map built from a completed tracking pass:
// state path → ids of the nodes whose output depends on it.
//
// Matching is symmetric across granularity. A node that read "user" depends
// on a write to "user.profile.name" (it read the enclosing subtree), and a
// node that read "user.profile.name" depends on a write to "user" (its value
// lives inside the replaced subtree). Both directions must invalidate.
type Index struct {
	// covering lists each node under every read path and every strict
	// prefix of it: lookup by a dirty path catches reads at or below it.
	covering map[string][]NodeID
	// exact lists each node under its read paths only: lookup by the dirty
	// path's prefixes catches reads above it.
	exact map[string][]NodeID
}

// BuildIndex walks the shadow tree depth-first and registers every node
// under each of its read paths and all their strict prefixes.
func BuildIndex(t *Tracker) *Index {
	ix := &Index{
		covering: make(map[string][]NodeID),
		exact:    make(map[string][]NodeID),
	}
	if t == nil {
		return ix
	}
	for _, node := range t.Nodes() {
		for _, read := range node.Reads {
			ix.exact[read] = append(ix.exact[read], node.ID)
			ix.covering[read] = append(ix.covering[read], node.ID)
			for _, prefix := range state.ParentPaths(read) {
				ix.covering[prefix] = append(ix.covering[prefix], node.ID)
			}
		}
	}
	return ix
}

// Query returns the union, over all dirty paths, of the nodes whose read
// paths equal, are prefixes of, or are prefixed by the dirty path. The
// result is deduplicated and sorted by id.
func (ix *Index) Query(dirtyPaths []string) []NodeID {
	seen := make(map[NodeID]struct{})
	for _, dirty := range dirtyPaths {
		canonical := state.ParsePath(dirty).String()
		for _, id := range ix.covering[canonical] {
			seen[id] = struct{}{}
		}
		for _, prefix := range state.ParentPaths(canonical) {
			for _, id := range ix.exact[prefix] {
				seen[id] = struct{}{}
			}
		}
	}
	out := make([]NodeID, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
