// SPDX-License-Identifier: MIT

// Package matrix - textual dump and load.
//
// Format:
//   - Row-major; values in a row separated by a single space; rows separated
//     by '\n'; no trailing newline; nothing at all for the degenerate matrix.
//   - Cells use the shortest decimal form that parses back to the same
//     float64 (strconv 'g', precision -1), so dump→load is exact.
//
// Reading:
//   - ReadText fills an existing matrix and never infers the shape.
//   - Parse infers the shape from the text and allocates a new matrix.

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtSep    = ' '
	_fmtRowEnd = '\n'
)

// maxLineBytes bounds a single text row accepted by Parse.
const maxLineBytes = 64 << 20

// appendText appends the textual form of m to dst.
func (m *Matrix) appendText(dst []byte) []byte {
	if !m.bound() {
		return dst
	}
	var i, j, base int
	for i = 0; i < m.blk.rows; i++ {
		if i > 0 {
			dst = append(dst, _fmtRowEnd)
		}
		base = i * m.blk.cols
		for j = 0; j < m.blk.cols; j++ {
			if j > 0 {
				dst = append(dst, _fmtSep)
			}
			dst = strconv.AppendFloat(dst, m.blk.data[base+j], 'g', -1, 64)
		}
	}

	return dst
}

// String renders m in the text format. Empty for the degenerate matrix.
// Complexity: O(r*c).
func (m *Matrix) String() string { return string(m.appendText(nil)) }

// WriteTo writes m in the text format to w. It implements io.WriterTo.
func (m *Matrix) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(m.appendText(nil))

	return int64(n), err
}

// ReadText reads Rows()*Cols() values from r in row-major order and stores
// them through Set, so shared storage is detached before the first write.
//
// All values are parsed and checked before any element is written: on error
// m is unchanged. Values may be separated by any whitespace. A degenerate m
// reads nothing.
//
// Tokens are scanned with fmt.Fscan. When r is not an io.RuneScanner each
// token costs byte-sized reads and the delimiter after it is consumed; wrap
// an *os.File or socket in a bufio.Reader, which also lets several matrices
// be read back to back from one stream.
//
// Errors:
//   - io.ErrUnexpectedEOF (wrapped) if r runs out of values.
//   - strconv parse errors for malformed cells.
//   - ErrNaNInf for a non-finite value under WithFiniteOnly.
func (m *Matrix) ReadText(r io.Reader) error {
	if !m.bound() {
		return nil
	}
	rows, cols := m.blk.rows, m.blk.cols
	vals := make([]float64, rows*cols)

	var (
		i, j int
		tok  string
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if _, err = fmt.Fscan(r, &tok); err != nil {
				if err == io.EOF {
					err = io.ErrUnexpectedEOF
				}
				return matrixErrorf(ctxReadText, fmt.Errorf("cell (%d,%d): %w", i, j, err))
			}
			v, perr := strconv.ParseFloat(tok, 64)
			if perr != nil {
				return matrixErrorf(ctxReadText, fmt.Errorf("cell (%d,%d): %w", i, j, perr))
			}
			if err = m.blk.checkValue(v); err != nil {
				return matrixErrorf(ctxReadText, handleErrorf(ctxSet, i, j, err))
			}
			vals[i*cols+j] = v
		}
	}

	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if err = m.Set(i, j, vals[i*cols+j]); err != nil {
				return matrixErrorf(ctxReadText, err)
			}
		}
	}

	return nil
}

// Parse reads a whole text dump from r and returns a new matrix with the
// shape found in the text: one row per non-blank line, columns taken from the
// first row. Empty input yields the degenerate matrix.
//
// Errors:
//   - ErrDimensionMismatch for ragged rows.
//   - strconv parse errors for malformed cells.
//   - ErrNaNInf under WithFiniteOnly.
func Parse(r io.Reader, opts ...Option) (*Matrix, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		rows, cols int
		data       []float64
		line       int
	)
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if rows == 0 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, matrixErrorf(ctxParse, fmt.Errorf("line %d has %d values, want %d: %w", line, len(fields), cols, ErrDimensionMismatch))
		}
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, matrixErrorf(ctxParse, fmt.Errorf("line %d, column %d: %w", line, j, err))
			}
			data = append(data, v)
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, matrixErrorf(ctxParse, err)
	}
	if rows == 0 {
		return &Matrix{}, nil
	}

	m, err := NewFromSlice(rows, cols, data, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxParse, err)
	}

	return m, nil
}
