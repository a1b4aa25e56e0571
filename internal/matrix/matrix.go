package matrix

import (
	"slices"
)

// Matrix is a multi-dimensional store of T with row-major addressing.
// The zero value of T is used as the default for padding and growth.
//
// A Matrix is not safe for concurrent mutation.
type Matrix[T any] struct {
	elements   []T
	dimensions []int
}

// New creates a matrix of the given shape filled with zero values.
// Negative dimensions are treated as zero.
func New[T any](dimensions ...int) *Matrix[T] {
	dims := make([]int, len(dimensions))
	for i, d := range dimensions {
		dims[i] = max(d, 0)
	}
	return &Matrix[T]{
		elements:   make([]T, product(dims)),
		dimensions: dims,
	}
}

// FromSlice creates a one-dimensional matrix that takes ownership of elements.
func FromSlice[T any](elements []T) *Matrix[T] {
	return &Matrix[T]{
		elements:   elements,
		dimensions: []int{len(elements)},
	}
}

// FromRows builds a two-dimensional matrix from ragged rows.
// Every row is right-padded with the zero value to the widest row, which is
// at least one column wide. Ragged input never fails.
func FromRows[T any](rows [][]T) *Matrix[T] {
	width := 1
	for _, row := range rows {
		width = max(width, len(row))
	}

	elements := make([]T, 0, len(rows)*width)
	var zero T
	for _, row := range rows {
		elements = append(elements, row...)
		for i := len(row); i < width; i++ {
			elements = append(elements, zero)
		}
	}

	return &Matrix[T]{
		elements:   elements,
		dimensions: []int{len(rows), width},
	}
}

// Dimensions returns a copy of the axis sizes.
func (m *Matrix[T]) Dimensions() []int {
	return slices.Clone(m.dimensions)
}

// Dimension returns the size of a single axis, or 0 if the axis does not exist.
func (m *Matrix[T]) Dimension(axis int) int {
	if axis < 0 || axis >= len(m.dimensions) {
		return 0
	}
	return m.dimensions[axis]
}

// Rank returns the number of axes.
func (m *Matrix[T]) Rank() int {
	return len(m.dimensions)
}

// Len returns the total number of elements.
func (m *Matrix[T]) Len() int {
	return len(m.elements)
}

// Elements returns a copy of the flat, row-major element sequence.
func (m *Matrix[T]) Elements() []T {
	return slices.Clone(m.elements)
}

// Clone returns an independent copy of the matrix.
// Elements are copied shallowly.
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{
		elements:   slices.Clone(m.elements),
		dimensions: slices.Clone(m.dimensions),
	}
}

// Reshape replaces the shape in place. The element count must stay the
// same; no data moves.
func (m *Matrix[T]) Reshape(dimensions ...int) error {
	for _, d := range dimensions {
		if d < 0 {
			return &ShapeError{Have: m.Dimensions(), Want: slices.Clone(dimensions), Err: ErrShapeMismatch}
		}
	}
	if product(dimensions) != len(m.elements) {
		return &ShapeError{Have: m.Dimensions(), Want: slices.Clone(dimensions), Err: ErrShapeMismatch}
	}
	m.dimensions = slices.Clone(dimensions)
	return nil
}

// WithShape reshapes the matrix and returns it, for chaining at construction.
func (m *Matrix[T]) WithShape(dimensions ...int) (*Matrix[T], error) {
	if err := m.Reshape(dimensions...); err != nil {
		return nil, err
	}
	return m, nil
}

// Get returns the element at coord.
func (m *Matrix[T]) Get(coord ...int) (T, error) {
	offset, err := m.offset(coord)
	if err != nil {
		var zero T
		return zero, err
	}
	return m.elements[offset], nil
}

// Ref returns a pointer to the element at coord for in-place mutation.
// The pointer is invalidated by InsertAxisSliceDefault.
func (m *Matrix[T]) Ref(coord ...int) (*T, error) {
	offset, err := m.offset(coord)
	if err != nil {
		return nil, err
	}
	return &m.elements[offset], nil
}

// Set stores value at coord.
func (m *Matrix[T]) Set(value T, coord ...int) error {
	offset, err := m.offset(coord)
	if err != nil {
		return err
	}
	m.elements[offset] = value
	return nil
}

// Offset returns the linear offset of coord.
func (m *Matrix[T]) Offset(coord ...int) (int, error) {
	return m.offset(coord)
}

// offset folds coord into a row-major offset, validating rank and bounds.
func (m *Matrix[T]) offset(coord []int) (int, error) {
	if len(coord) != len(m.dimensions) {
		return 0, &IndexError{Coord: slices.Clone(coord), Dimensions: m.Dimensions(), Err: ErrRankMismatch}
	}
	offset := 0
	for i, size := range m.dimensions {
		idx := coord[i]
		if idx < 0 || idx >= size {
			return 0, &IndexError{Coord: slices.Clone(coord), Dimensions: m.Dimensions(), Err: ErrIndexOutOfRange}
		}
		offset = offset*size + idx
	}
	return offset, nil
}

// InsertAxisSliceDefault grows axis by one, appending a zero-filled
// hyperplane at the end of that axis.
//
// The axes before axis form a multi-radix counter. Each counter value names
// one contiguous run of dimensions[axis]*extend existing elements, where
// extend is the product of the axes after axis. The buffer is grown once,
// then runs are visited from the highest counter value down to zero; each
// run is moved to its final offset and followed by extend zero values.
// Visiting in descending order means the source offsets of runs not yet
// visited are never overwritten, so every element moves at most once.
func (m *Matrix[T]) InsertAxisSliceDefault(axis int) error {
	if axis < 0 || axis >= len(m.dimensions) {
		return &ShapeError{Have: m.Dimensions(), Want: nil, Err: ErrAxisOutOfRange}
	}

	extend := product(m.dimensions[axis+1:])
	run := m.dimensions[axis] * extend
	outer := m.dimensions[:axis]
	blocks := product(outer)

	oldLen := len(m.elements)
	newLen := oldLen + blocks*extend
	m.elements = slices.Grow(m.elements, newLen-oldLen)[:newLen]

	if blocks > 0 {
		counter := make([]int, len(outer))
		for i, size := range outer {
			counter[i] = size - 1
		}

		var zero T
		for {
			block := rowMajor(counter, outer)
			src := block * run
			dst := block * (run + extend)
			copy(m.elements[dst:dst+run], m.elements[src:src+run])
			for i := dst + run; i < dst+run+extend; i++ {
				m.elements[i] = zero
			}
			if !decrement(counter, outer) {
				break
			}
		}
	}

	m.dimensions[axis]++
	return nil
}

// rowMajor folds a counter over the given radices.
func rowMajor(counter, radices []int) int {
	offset := 0
	for i, size := range radices {
		offset = offset*size + counter[i]
	}
	return offset
}

// decrement steps a multi-radix counter down by one, least significant digit
// first. It returns false once the most significant digit underflows.
func decrement(counter, radices []int) bool {
	for i := len(counter) - 1; i >= 0; i-- {
		if counter[i] > 0 {
			counter[i]--
			return true
		}
		counter[i] = radices[i] - 1
	}
	return false
}

func product(dims []int) int {
	p := 1
	for _, d := range dims {
		p *= d
	}
	return p
}
