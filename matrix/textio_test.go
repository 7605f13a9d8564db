package matrix_test

import (
	"bufio"
	"bytes"
	"io"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/cowmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestStringFormat(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2.5}, {-3, 4e-7}})
	require.Equal(t, "1 2.5\n-3 4e-07", m.String())

	require.Equal(t, "", MustNew(t, 0, 0).String())
	require.Equal(t, "0", MustNew(t, 1, 1).String())
}

func TestWriteTo(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	var buf bytes.Buffer
	n, err := m.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(len("1 2\n3 4")), n)
	require.Equal(t, "1 2\n3 4", buf.String())

	buf.Reset()
	n, err = MustNew(t, 0, 0).WriteTo(&buf)
	require.NoError(t, err)
	require.Zero(t, n)
	require.Zero(t, buf.Len())
}

func TestTextRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		name string
		m    *matrix.Matrix
	}{
		{"random 4x3", RandFilled(t, 4, 3, 1337)},
		{"random 1x7", RandFilled(t, 1, 7, 42)},
		{"specials", MustRows(t, [][]float64{
			{math.Inf(1), math.Inf(-1), math.Copysign(0, -1)},
			{0.1, 1e-300, math.MaxFloat64},
		})},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			_, err := tc.m.WriteTo(&buf)
			require.NoError(t, err)

			back := MustNew(t, tc.m.Rows(), tc.m.Cols())
			require.NoError(t, back.ReadText(&buf))
			require.True(t, back.Equal(tc.m), "got\n%s\nwant\n%s", back, tc.m)

			parsed, err := matrix.Parse(strings.NewReader(tc.m.String()))
			require.NoError(t, err)
			require.True(t, parsed.Equal(tc.m))
		})
	}
}

func TestReadTextDetaches(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := a.Copy()

	require.NoError(t, b.ReadText(strings.NewReader("5 6\n7 8")))
	RequireRows(t, [][]float64{{5, 6}, {7, 8}}, b)
	RequireRows(t, [][]float64{{1, 2}, {3, 4}}, a)
	require.False(t, matrix.SameStorage(a, b))
	require.Equal(t, 1, matrix.RefCount(b))
}

func TestReadTextSequential(t *testing.T) {
	r := strings.NewReader("1 2\n3 4\n5 6\n7 8\n")
	first := MustNew(t, 2, 2)
	second := MustNew(t, 1, 4)

	require.NoError(t, first.ReadText(r))
	require.NoError(t, second.ReadText(r))
	RequireRows(t, [][]float64{{1, 2}, {3, 4}}, first)
	RequireRows(t, [][]float64{{5, 6, 7, 8}}, second)
}

func TestReadTextErrorsLeaveMatrixUnchanged(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		want  error
	}{
		{"short", "1 2 3", io.ErrUnexpectedEOF},
		{"empty", "", io.ErrUnexpectedEOF},
		{"malformed", "1 x 3 4", strconv.ErrSyntax},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := MustRows(t, [][]float64{{9, 9}, {9, 9}})
			keep := m.Copy()
			err := m.ReadText(strings.NewReader(tc.input))
			require.ErrorIs(t, err, tc.want)
			require.True(t, m.Equal(keep))
			require.True(t, matrix.SameStorage(m, keep), "failed read must not detach")
		})
	}
}

func TestReadTextBufferedStream(t *testing.T) {
	// hide the RuneScanner so the reader behaves like a file or socket
	plain := struct{ io.Reader }{strings.NewReader("1 2\n3 4\n5 6\n7 8\n")}
	r := bufio.NewReader(plain)

	first := MustNew(t, 2, 2)
	second := MustNew(t, 2, 2)
	require.NoError(t, first.ReadText(r))
	require.NoError(t, second.ReadText(r))
	RequireRows(t, [][]float64{{1, 2}, {3, 4}}, first)
	RequireRows(t, [][]float64{{5, 6}, {7, 8}}, second)
}

func TestReadTextFiniteOnly(t *testing.T) {
	m, err := matrix.New(1, 2, matrix.WithFiniteOnly())
	require.NoError(t, err)
	err = m.ReadText(strings.NewReader("1 +Inf"))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	RequireRows(t, [][]float64{{0, 0}}, m)
}

func TestReadTextDegenerate(t *testing.T) {
	r := strings.NewReader("1 2")
	require.NoError(t, MustNew(t, 0, 0).ReadText(r))
	require.Equal(t, 3, r.Len(), "nothing consumed")
}

func TestParse(t *testing.T) {
	m, err := matrix.Parse(strings.NewReader("1 2 3\n\n4 5 6\n"))
	require.NoError(t, err)
	RequireRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m)

	m, err = matrix.Parse(strings.NewReader("  \n"))
	require.NoError(t, err)
	require.True(t, m.IsEmpty())

	_, err = matrix.Parse(strings.NewReader("1 2\n3"))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Parse(strings.NewReader("1 two"))
	require.ErrorIs(t, err, strconv.ErrSyntax)

	_, err = matrix.Parse(strings.NewReader("NaN"), matrix.WithFiniteOnly())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
