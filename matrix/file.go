// SPDX-License-Identifier: MIT

// Package matrix - text dump files.
//
// WriteFile stores the text format followed by a single newline. ReadFile and
// ReadFileInto map the file read-only and parse straight from the mapping;
// parsed values are copied into matrix storage, so nothing refers to the
// mapping once it is unmapped.

package matrix

import (
	"bufio"
	"bytes"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// WriteFile writes m to path in the text format, creating or truncating it.
// A degenerate matrix produces an empty file.
func WriteFile(path string, m *Matrix) (err error) {
	if err = ValidateNotNil(m); err != nil {
		return matrixErrorf(ctxWriteFile, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return matrixErrorf(ctxWriteFile, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = matrixErrorf(ctxWriteFile, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if _, err = m.WriteTo(w); err != nil {
		return matrixErrorf(ctxWriteFile, err)
	}
	if m.bound() {
		if err = w.WriteByte(_fmtRowEnd); err != nil {
			return matrixErrorf(ctxWriteFile, err)
		}
	}
	if err = w.Flush(); err != nil {
		return matrixErrorf(ctxWriteFile, err)
	}

	return nil
}

// ReadFile loads a text dump and returns a matrix shaped after its contents
// (see Parse). An empty file yields the degenerate matrix.
func ReadFile(path string, opts ...Option) (*Matrix, error) {
	var out *Matrix
	err := withMappedFile(path, func(data []byte) error {
		m, err := Parse(bytes.NewReader(data), opts...)
		if err != nil {
			return err
		}
		out = m
		return nil
	})
	if err != nil {
		return nil, matrixErrorf(ctxReadFile, err)
	}

	return out, nil
}

// ReadFileInto loads Rows()*Cols() values from a text dump into m via
// ReadText. m keeps its shape; trailing values in the file are ignored.
func ReadFileInto(path string, m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(ctxReadFileIn, err)
	}
	err := withMappedFile(path, func(data []byte) error {
		return m.ReadText(bytes.NewReader(data))
	})
	if err != nil {
		return matrixErrorf(ctxReadFileIn, err)
	}

	return nil
}

// withMappedFile maps path read-only and passes the bytes to fn.
// Empty files cannot be mapped; fn receives nil for them.
func withMappedFile(path string, fn func(data []byte) error) (err error) {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return err
	}
	if st.Size() == 0 {
		return fn(nil)
	}

	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return fmt.Errorf("mmap %s: %w", path, err)
	}
	defer func() {
		if uerr := mm.Unmap(); uerr != nil && err == nil {
			err = fmt.Errorf("munmap %s: %w", path, uerr)
		}
	}()

	return fn(mm)
}
