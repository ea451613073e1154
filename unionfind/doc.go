// Package unionfind implements a disjoint-set (union-find) structure
// over any comparable element type.
//
// Each UnionFind maintains a family of disjoint sets. Find returns a
// representative for the set containing an element, creating a new
// singleton set for unseen elements; it path-compresses every node
// visited on the way to the root. Union merges the sets of all given
// elements, attaching lighter-weight roots under the heaviest to bound
// tree height. No operation ever fails: unseen elements are absorbed
// transparently.
//
// Complexity: a sequence of m Find/Union operations over n elements
// runs in O(m α(n)) where α is the inverse Ackermann function.
package unionfind
