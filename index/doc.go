// Package index defines a minimal abstraction for nearest-neighbor
// indexes built from labeled vectors. Implementations in this module
// include a brute-force baseline and a KD-tree adapter; both are exact
// and return the same results, so the baseline doubles as the test
// oracle for the tree.
package index
