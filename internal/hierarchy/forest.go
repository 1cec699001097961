// Package hierarchy holds the in-memory geographic forest: an id-addressed
// node index plus a reverse children index. Closure queries and cascading
// removal walk these indexes explicitly instead of leaning on the storage
// engine.
package hierarchy

import (
	"fmt"
	"sort"

	"outage_notifier/internal/domain"
)

type Forest struct {
	nodes    map[int64]domain.PlaceNode
	children map[int64][]int64
}

func New() *Forest {
	return &Forest{
		nodes:    make(map[int64]domain.PlaceNode),
		children: make(map[int64][]int64),
	}
}

// FromNodes builds a forest from a node list in any order. Duplicate ids and
// self-parenting are rejected; the seed data is known to reuse identifiers
// for distinct streets and must not be loaded silently.
func FromNodes(nodes []domain.PlaceNode) (*Forest, error) {
	f := New()
	for _, n := range nodes {
		if err := f.Insert(n); err != nil {
			return nil, fmt.Errorf("insert node %d: %w", n.ID, err)
		}
	}
	return f, nil
}

// Insert adds a node. The parent does not need to exist yet, so loading
// order does not matter.
func (f *Forest) Insert(n domain.PlaceNode) error {
	if _, ok := f.nodes[n.ID]; ok {
		return domain.ErrDuplicateNode
	}
	if n.ParentID != nil && *n.ParentID == n.ID {
		return domain.ErrCycleDetected
	}
	f.nodes[n.ID] = n
	if n.ParentID != nil {
		f.children[*n.ParentID] = append(f.children[*n.ParentID], n.ID)
	}
	return nil
}

// Node returns the node for id, if present.
func (f *Forest) Node(id int64) (domain.PlaceNode, bool) {
	n, ok := f.nodes[id]
	return n, ok
}

// Len returns the number of nodes in the forest.
func (f *Forest) Len() int {
	return len(f.nodes)
}

// Descendants returns the target plus all nodes transitively beneath it.
// Each node is visited at most once; revisiting one means the parent data is
// corrupt (every node has a single parent, so no node is reachable twice in
// an intact forest) and the traversal aborts with ErrCycleDetected.
func (f *Forest) Descendants(target int64) ([]int64, error) {
	if _, ok := f.nodes[target]; !ok {
		return nil, domain.ErrUnknownNode
	}

	visited := map[int64]struct{}{target: {}}
	out := []int64{target}
	stack := append([]int64(nil), f.children[target]...)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := visited[id]; seen {
			return nil, fmt.Errorf("node %d reached twice under %d: %w", id, target, domain.ErrCycleDetected)
		}
		visited[id] = struct{}{}
		out = append(out, id)
		stack = append(stack, f.children[id]...)
	}
	return out, nil
}

// AffectedSet is the union of descendant closures over every target. A cycle
// aborts only the offending target's subtree; clean subtrees still land in
// the set. Targets missing from the forest are skipped the same way. The
// collected per-target errors are returned alongside the set.
func (f *Forest) AffectedSet(targets []int64) (map[int64]struct{}, []error) {
	set := make(map[int64]struct{})
	var errs []error
	for _, t := range targets {
		ids, err := f.Descendants(t)
		if err != nil {
			errs = append(errs, fmt.Errorf("target %d: %w", t, err))
			continue
		}
		for _, id := range ids {
			set[id] = struct{}{}
		}
	}
	return set, errs
}

// Ancestors returns the parent chain from id's parent up to its root.
func (f *Forest) Ancestors(id int64) ([]int64, error) {
	n, ok := f.nodes[id]
	if !ok {
		return nil, domain.ErrUnknownNode
	}

	visited := map[int64]struct{}{id: {}}
	var chain []int64
	for n.ParentID != nil {
		pid := *n.ParentID
		if _, seen := visited[pid]; seen {
			return nil, fmt.Errorf("ancestor %d revisited: %w", pid, domain.ErrCycleDetected)
		}
		visited[pid] = struct{}{}
		chain = append(chain, pid)
		p, ok := f.nodes[pid]
		if !ok {
			// Dangling parent reference: the chain ends here.
			break
		}
		n = p
	}
	return chain, nil
}

// Remove deletes the node and its whole subtree from the indexes and returns
// the removed ids sorted ascending, so callers can cascade dependent rows.
func (f *Forest) Remove(target int64) ([]int64, error) {
	ids, err := f.Descendants(target)
	if err != nil {
		return nil, err
	}

	removed := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		removed[id] = struct{}{}
	}
	for _, id := range ids {
		n := f.nodes[id]
		if n.ParentID != nil {
			if _, gone := removed[*n.ParentID]; !gone {
				f.children[*n.ParentID] = without(f.children[*n.ParentID], id)
			}
		}
		delete(f.nodes, id)
		delete(f.children, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func without(ids []int64, id int64) []int64 {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
