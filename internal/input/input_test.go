package input

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		text   string
		status Status
		value  int
	}{
		{"3", OK, 3},
		{"  7 \t", OK, 7},
		{"1", OK, 1},
		{"10", OK, 10},
		{"0", OutOfRange, 0},
		{"11", OutOfRange, 11},
		{"-4", OutOfRange, -4},
		{"", NotANumber, 0},
		{"abc", NotANumber, 0},
		{"4.5", NotANumber, 0},
		{"5 6", NotANumber, 0},
	}
	for _, tc := range testCases {
		got := Parse(tc.text, 1, 10)
		assert.Equal(t, tc.status, got.Status, "%q", tc.text)
		assert.Equal(t, tc.value, got.Value, "%q", tc.text)
	}
}

func TestReadIntRetriesUntilValid(t *testing.T) {
	var out bytes.Buffer
	r := NewReader(strings.NewReader("abc\n0\n99\n 4 \n"), &out)

	n, err := r.ReadInt(1, 5)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	assert.Equal(t, 1, strings.Count(out.String(), "Invalid input. Please enter a valid number: "))
	assert.Equal(t, 2, strings.Count(out.String(), "Please enter a number between 1 and 5: "))
}

func TestReadIntConsumesOneLinePerCall(t *testing.T) {
	r := NewReader(strings.NewReader("2\n3\n"), io.Discard)

	a, err := r.ReadInt(1, 5)
	require.NoError(t, err)
	b, err := r.ReadInt(1, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, []int{a, b})
}

func TestReadIntEOF(t *testing.T) {
	r := NewReader(strings.NewReader("nope\n"), io.Discard)

	_, err := r.ReadInt(1, 5)
	assert.ErrorIs(t, err, io.EOF)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("device gone") }

func TestReadIntReadFailure(t *testing.T) {
	r := NewReader(failingReader{}, io.Discard)

	_, err := r.ReadInt(1, 5)
	require.Error(t, err)
	assert.NotErrorIs(t, err, io.EOF)
}

func TestWaitForEnter(t *testing.T) {
	r := NewReader(strings.NewReader("anything\n3\n"), io.Discard)

	require.NoError(t, r.WaitForEnter())
	n, err := r.ReadInt(1, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	assert.ErrorIs(t, r.WaitForEnter(), io.EOF)
}

func TestReadIntRecoversFromOverlongLine(t *testing.T) {
	testCases := []struct {
		name string
		line string
	}{
		{"digits", strings.Repeat("9", 70000)},
		{"valid prefix", "3" + strings.Repeat(" ", 70000) + "x"},
		{"just over limit", strings.Repeat(" ", maxLineLen) + "2"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			r := NewReader(strings.NewReader(tc.line+"\n3\n"), &out)

			n, err := r.ReadInt(1, 5)
			require.NoError(t, err)
			assert.Equal(t, 3, n)
			assert.Equal(t, 1, strings.Count(out.String(), "Invalid input. Please enter a valid number: "))
		})
	}
}

func TestReadIntOverlongLineThenEOF(t *testing.T) {
	r := NewReader(strings.NewReader(strings.Repeat("x", 70000)), io.Discard)

	_, err := r.ReadInt(1, 5)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadIntLastLineWithoutNewline(t *testing.T) {
	r := NewReader(strings.NewReader("\n\r\n4"), io.Discard)

	n, err := r.ReadInt(1, 5)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}
