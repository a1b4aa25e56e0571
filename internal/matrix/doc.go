// Package matrix provides a flat-backed, N-dimensional container.
//
// A Matrix stores its elements in a single slice using row-major order:
// the last axis varies fastest. A coordinate vector c maps to the linear
// offset
//
//	offset = ((c[0]*d[1] + c[1])*d[2] + c[2]) ...
//
// where d holds the dimension sizes. The element count always equals the
// product of the dimensions.
//
// # Shape Operations
//
// Reshape reinterprets the same linear layout with a new shape and never
// moves data. InsertAxisSliceDefault grows one axis by one, filling the new
// hyperplane with the zero value of T:
//
//	m := matrix.FromRows([][]int{{1, 2, 3}, {1, 2, 3}})
//	_ = m.InsertAxisSliceDefault(1)
//	// m.Dimensions() == [2 4]
//	// m.Elements()   == [1 2 3 0 1 2 3 0]
//
// # Errors
//
// Accessors report contract violations as errors rather than panicking:
// ErrRankMismatch, ErrIndexOutOfRange, ErrShapeMismatch and
// ErrAxisOutOfRange. Use errors.Is to test for them.
package matrix
