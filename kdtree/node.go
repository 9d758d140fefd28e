package kdtree

// node is a tree node that exclusively owns its children. entry indexes
// the tree's entry store; axis is the splitting dimension for the
// subtree rooted here. Every entry in the left subtree has
// Point[axis] <= the pivot's coordinate, every entry in the right
// subtree has Point[axis] >= it.
type node struct {
	entry int
	axis  int
	left  *node
	right *node
}
