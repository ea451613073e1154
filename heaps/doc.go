// Package heaps provides min-heap implementations keyed by comparable
// identifiers with ordered priorities, used by the capacity-scaling
// min-cost-flow solver's shortest-path stage.
//
// The MinHeap contract stores key→value pairs ordered by value and
// supports querying the minimum, deleting the minimum, reading the
// value of a key, and Insert with decrease-key semantics: inserting an
// existing key only takes effect when the new value is smaller, unless
// allowIncrease is set.
//
// Two implementations are provided:
//
//   - BinaryHeap: container/heap with lazy decrease-key (stale entries
//     skipped on pop). O(log n) push/pop.
//   - PairingHeap: multipass pairing heap with true decrease-key.
//     O(1) insert/decrease, amortized O(log n) pop.
package heaps
