// Package kd adapts the kdtree package to the generic index API, so
// callers that speak (id, vector) pairs get tree-accelerated exact kNN
// without touching tree types directly.
package kd
