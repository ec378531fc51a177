// Package shell implements the interactive calculator prompt loop.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ameleshko/cplxcalc/internal/number"
	"github.com/ameleshko/cplxcalc/internal/ops"
)

// QuitToken is the input that terminates the interactive session
const QuitToken = "q"

// Shell represents an interactive calculator session over a reader and a writer
type Shell struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates a new interactive shell reading from in and writing to out
func New(in io.Reader, out io.Writer) *Shell {
	return &Shell{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run runs the prompt loop until the quit token or the end of input.
// A failed computation is reported and the loop restarts from the
// operation prompt; no error is fatal to the session.
func (s *Shell) Run() error {
	s.printf("Complex number calculator")

	for {
		s.printf("Enter an operation (%s) or %s to quit:", strings.Join(ops.Tokens(), ","), QuitToken)
		token, ok := s.readLine()
		if !ok {
			return s.in.Err()
		}
		if token == QuitToken {
			s.printf("Exiting")
			return nil
		}

		op, err := ops.Resolve(token)
		if err != nil {
			s.printf("Error: %v", err)
			continue
		}

		s.printf("Enter the first complex number in the form a,b:")
		text, ok := s.readLine()
		if !ok {
			return s.in.Err()
		}
		first, err := number.Parse(text)
		if err != nil {
			s.printf("Error: %v", err)
			continue
		}

		s.printf("Enter the second complex number in the form c,d:")
		text, ok = s.readLine()
		if !ok {
			return s.in.Err()
		}
		second, err := number.Parse(text)
		if err != nil {
			s.printf("Error: %v", err)
			continue
		}

		result, err := op.Apply(first, second)
		if err != nil {
			s.printf("Error: %v", err)
			continue
		}

		s.printf("Result: %s", result)
	}
}

// readLine reads the next input line, reporting false at end of input
func (s *Shell) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

// printf writes a single output line to the session writer
func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format+"\n", args...)
}
