// Package pointset stores labeled points in SQLite so clients can feed
// durable data into a KD-tree. It includes:
//   - LabeledPoint model
//   - coordinate BLOB codec
//   - schema helper and a Store for save/load/remove
//
// Load returns points in insertion order, which is also the tree's
// tie-breaking order, so a tree rebuilt from a store ranks
// equal-distance neighbors the same way every time.
package pointset
