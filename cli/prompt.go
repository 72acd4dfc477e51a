package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInputClosed is returned when the input stream ends before a valid
// answer arrives.
var ErrInputClosed = errors.New("input stream closed")

// Prompter reads line-oriented answers from in and writes questions and
// complaints to out. Invalid lines are rejected with a retry.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

func (p *Prompter) Say(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *Prompter) illegal() {
	fmt.Fprintln(p.out, "Illegal input!")
}

// IntInRange keeps asking until it reads an integer in [lower, upper).
func (p *Prompter) IntInRange(lower, upper int) (int, error) {
	for {
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return 0, err
			}
			return 0, ErrInputClosed
		}
		n, err := strconv.Atoi(strings.TrimSpace(p.in.Text()))
		if err != nil || n < lower || n >= upper {
			p.illegal()
			continue
		}
		return n, nil
	}
}

// YesNo keeps asking until it reads Y or N, case-insensitively.
func (p *Prompter) YesNo() (bool, error) {
	for {
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return false, err
			}
			return false, ErrInputClosed
		}
		switch strings.ToUpper(strings.TrimSpace(p.in.Text())) {
		case "Y":
			return true, nil
		case "N":
			return false, nil
		default:
			p.illegal()
		}
	}
}
