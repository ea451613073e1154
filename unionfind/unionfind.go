package unionfind

// UnionFind is a disjoint-set forest with path compression and
// weighted union. The zero value is not usable; construct with New.
type UnionFind[T comparable] struct {
	parents map[T]T
	weights map[T]int
}

// New returns an empty structure, optionally seeded with the discrete
// partition on the given elements.
// Complexity: O(len(elements)).
func New[T comparable](elements ...T) *UnionFind[T] {
	uf := &UnionFind[T]{
		parents: make(map[T]T),
		weights: make(map[T]int),
	}
	for _, x := range elements {
		if _, ok := uf.parents[x]; !ok {
			uf.parents[x] = x
			uf.weights[x] = 1
		}
	}

	return uf
}

// Find returns the representative of the set containing x, creating a
// new singleton set when x has not been seen. Every node on the walked
// path is re-parented directly to the root (path compression).
// Complexity: amortized near O(1).
func (uf *UnionFind[T]) Find(x T) T {
	if _, ok := uf.parents[x]; !ok {
		uf.parents[x] = x
		uf.weights[x] = 1

		return x
	}

	// Walk to the root, collecting the path.
	path := []T{x}
	root := uf.parents[x]
	for root != path[len(path)-1] {
		path = append(path, root)
		root = uf.parents[root]
	}
	// Compress: rewrite every visited node's parent to the root.
	for _, ancestor := range path {
		uf.parents[ancestor] = root
	}

	return root
}

// Union merges the sets containing the given elements into one,
// implicitly absorbing unseen elements first. The heaviest root (by
// element count) becomes the merged root.
// Complexity: O(len(items) α(n)).
func (uf *UnionFind[T]) Union(items ...T) {
	if len(items) == 0 {
		return
	}
	roots := make([]T, 0, len(items))
	seen := make(map[T]struct{}, len(items))
	for _, x := range items {
		r := uf.Find(x)
		if _, dup := seen[r]; !dup {
			seen[r] = struct{}{}
			roots = append(roots, r)
		}
	}

	heaviest := roots[0]
	for _, r := range roots[1:] {
		if uf.weights[r] > uf.weights[heaviest] {
			heaviest = r
		}
	}
	for _, r := range roots {
		if r != heaviest {
			uf.weights[heaviest] += uf.weights[r]
			uf.parents[r] = heaviest
		}
	}
}

// ToSets returns the disjoint sets as slices, one per distinct root,
// partitioning every element ever passed to Find or Union. Order within
// and across sets is unspecified.
// Complexity: O(n α(n)).
func (uf *UnionFind[T]) ToSets() [][]T {
	groups := make(map[T][]T, len(uf.parents))
	for x := range uf.parents {
		r := uf.Find(x)
		groups[r] = append(groups[r], x)
	}
	out := make([][]T, 0, len(groups))
	for _, members := range groups {
		out = append(out, members)
	}

	return out
}

// Connected reports whether x and y are currently in the same set,
// absorbing either as a singleton when unseen.
// Complexity: amortized near O(1).
func (uf *UnionFind[T]) Connected(x, y T) bool {
	return uf.Find(x) == uf.Find(y)
}

// Len returns the number of elements ever seen. O(1).
func (uf *UnionFind[T]) Len() int {
	return len(uf.parents)
}

// Elements returns every element ever seen, in unspecified order. O(n).
func (uf *UnionFind[T]) Elements() []T {
	out := make([]T, 0, len(uf.parents))
	for x := range uf.parents {
		out = append(out, x)
	}

	return out
}
