// internal/input/input.go
//
// Validated integer input for the terminal.
// Responsibilities:
//   - Parse a line into an explicit Result (ok / not a number / out of range).
//   - Re-prompt until a value inside [min, max] is supplied.
//
// Malformed and out-of-range input never leaves this package as an error;
// only the end of the input stream (io.EOF) or a read failure does.

package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// maxLineLen bounds how much of a line is kept. Longer lines are drained and
// reported as NotANumber.
const maxLineLen = 256

// Status classifies a parsed line.
type Status int

const (
	OK Status = iota
	NotANumber
	OutOfRange
)

// Result is the outcome of parsing one line of input.
type Result struct {
	Status Status
	Value  int // set for OK and OutOfRange
}

// Parse interprets text as an integer in [min, max].
// Surrounding whitespace is ignored.
func Parse(text string, min, max int) Result {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return Result{Status: NotANumber}
	}
	if n < min || n > max {
		return Result{Status: OutOfRange, Value: n}
	}
	return Result{Status: OK, Value: n}
}

// Reader reads validated values from a line-oriented source and writes
// corrective prompts to out.
type Reader struct {
	br  *bufio.Reader
	out io.Writer
}

// NewReader wraps in and out.
func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{br: bufio.NewReader(in), out: out}
}

// ReadInt blocks until a line parses to a value in [min, max].
// Returns io.EOF once the input is exhausted.
func (r *Reader) ReadInt(min, max int) (int, error) {
	for {
		line, overlong, err := r.readLine()
		if err != nil {
			return 0, err
		}

		res := Result{Status: NotANumber}
		if !overlong {
			res = Parse(line, min, max)
		}
		switch res.Status {
		case OK:
			return res.Value, nil
		case OutOfRange:
			log.Debug().Int("value", res.Value).Int("min", min).Int("max", max).Msg("input out of range")
			fmt.Fprintf(r.out, "Please enter a number between %d and %d: ", min, max)
		default:
			log.Debug().Str("input", line).Bool("truncated", overlong).Msg("input not a number")
			fmt.Fprint(r.out, "Invalid input. Please enter a valid number: ")
		}
	}
}

// WaitForEnter consumes one line, whatever it contains.
func (r *Reader) WaitForEnter() error {
	_, _, err := r.readLine()
	return err
}

// readLine returns the next line without its terminator. At most maxLineLen
// bytes are kept; the second result reports that the rest was discarded.
func (r *Reader) readLine() (string, bool, error) {
	var buf []byte
	total := 0
	for {
		chunk, isPrefix, err := r.br.ReadLine()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return "", false, fmt.Errorf("input: read: %w", err)
			}
			if total == 0 {
				return "", false, io.EOF
			}
			// Input ended in the middle of an overlong line.
			return string(buf), total > maxLineLen, nil
		}
		total += len(chunk)
		if room := maxLineLen - len(buf); room > 0 {
			buf = append(buf, chunk[:min(room, len(chunk))]...)
		}
		if !isPrefix {
			return string(buf), total > maxLineLen, nil
		}
	}
}
