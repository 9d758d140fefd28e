// Package kdtree implements an exact k-nearest-neighbor index over
// labeled points in k-dimensional space. Points are partitioned by a
// binary tree that splits on one coordinate axis per level
// (axis = depth mod k), with the median point along that axis as the
// pivot. Queries descend the side of the splitting hyperplane that
// contains the query first and visit the other side only when it could
// still hold a closer point, so results are identical to a full scan.
//
// Features:
//   - Bulk construction from labeled entries with an arbitrary carried value
//   - Exact kNN queries via a bounded max-heap, ascending by distance
//   - Deterministic tie-breaking by build order
//   - Optional Insert that descends to a leaf position (no rebalancing)
//   - Pluggable distance function (squared Euclidean by default)
//
// A built tree is safe for concurrent readers; Insert takes the write
// lock. Expected query cost is O(log n) for well-distributed
// low-dimensional data and degrades toward O(n) as dimensionality grows
// or points cluster adversarially.
package kdtree
