// Package bruteforce provides a linear-scan nearest-neighbor index.
// It is exact by construction and independent of the KD-tree code, so
// it doubles as the oracle the tree-backed index is tested against.
package bruteforce
