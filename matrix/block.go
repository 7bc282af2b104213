// SPDX-License-Identifier: MIT

// Package matrix - Block: a typed view over explicit row/column index sets.
//
// Purpose:
//   - Address sub-blocks such as L[F,F], L[C,F] of a larger matrix without
//     copying, with every index validated once at construction.
//   - A Block is a Matrix: reads and writes go through to the base.
//
// Complexity quicksheet:
//   - NewBlock: O(|rows|+|cols|); At/Set: O(1) plus the base accessor; Materialize: O(|rows|·|cols|).

package matrix

import "fmt"

const ctxBlock = "Block"

// Block is a non-owning view of base restricted to rows × cols.
// Row i of the block is row rows[i] of the base; likewise for columns.
type Block struct {
	base Matrix
	rows []int
	cols []int
}

var _ Matrix = (*Block)(nil)

// NewBlock validates the index sets against base and returns the view.
//
// Errors:
//   - ErrNilMatrix if base is nil.
//   - ErrOutOfRange if an index is outside base bounds.
//   - ErrDuplicateIndex if an index set repeats an index.
//
// The index slices are copied, so later caller mutation does not move the view.
func NewBlock(base Matrix, rows, cols []int) (*Block, error) {
	if err := ValidateNotNil(base); err != nil {
		return nil, fmt.Errorf("New%s: %w", ctxBlock, err)
	}
	if err := ValidateIndexSet(rows, base.Rows()); err != nil {
		return nil, fmt.Errorf("New%s: rows: %w", ctxBlock, err)
	}
	if err := ValidateIndexSet(cols, base.Cols()); err != nil {
		return nil, fmt.Errorf("New%s: cols: %w", ctxBlock, err)
	}

	return &Block{
		base: base,
		rows: append([]int(nil), rows...),
		cols: append([]int(nil), cols...),
	}, nil
}

// Rows returns the number of block rows.
func (b *Block) Rows() int { return len(b.rows) }

// Cols returns the number of block columns.
func (b *Block) Cols() int { return len(b.cols) }

// RowIndex returns a copy of the base row indices.
func (b *Block) RowIndex() []int { return append([]int(nil), b.rows...) }

// ColIndex returns a copy of the base column indices.
func (b *Block) ColIndex() []int { return append([]int(nil), b.cols...) }

// At reads block element (i,j) from the base.
func (b *Block) At(i, j int) (float64, error) {
	if i < 0 || i >= len(b.rows) || j < 0 || j >= len(b.cols) {
		return 0, fmt.Errorf("%s.At(%d,%d): %w", ctxBlock, i, j, ErrOutOfRange)
	}

	return b.base.At(b.rows[i], b.cols[j])
}

// Set writes block element (i,j) through to the base.
func (b *Block) Set(i, j int, v float64) error {
	if i < 0 || i >= len(b.rows) || j < 0 || j >= len(b.cols) {
		return fmt.Errorf("%s.Set(%d,%d): %w", ctxBlock, i, j, ErrOutOfRange)
	}

	return b.base.Set(b.rows[i], b.cols[j], v)
}

// Clone returns an independent *Dense copy of the block.
func (b *Block) Clone() Matrix {
	d, err := b.Materialize()
	if err != nil {
		// indices were validated at construction; only a misbehaving base can fail here
		return newDenseZeroOK(0, 0)
	}

	return d
}

// Materialize copies the block into a new Dense of shape |rows|×|cols|.
// A zero-area block yields a legal zero-area Dense.
// Complexity: O(|rows|·|cols|).
func (b *Block) Materialize() (*Dense, error) {
	if d, ok := b.base.(*Dense); ok {
		return d.Induced(b.rows, b.cols)
	}
	out := newDenseZeroOK(len(b.rows), len(b.cols))
	var v float64
	var err error
	for i, ri := range b.rows {
		for j, cj := range b.cols {
			if v, err = b.base.At(ri, cj); err != nil {
				return nil, fmt.Errorf("%s.Materialize: %w", ctxBlock, err)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}
