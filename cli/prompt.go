package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// prompter reads typed parameters from an interactive session, re-prompting
// until the input parses. Empty input takes the offered default, so malformed
// numbers never reach the simulators.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
	st  styles
}

func newPrompter(in io.Reader, out io.Writer, st styles) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out, st: st}
}

func (p *prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *prompter) float(label string, def float64) (float64, error) {
	for {
		fmt.Fprint(p.out, p.st.prompt.Render(fmt.Sprintf("%s [%g]: ", label, def)))
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		if line == "" {
			return def, nil
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Fprintln(p.out, p.st.errs.Render("Invalid input. Please enter a valid number (e.g. 1000)."))
			continue
		}
		return v, nil
	}
}

func (p *prompter) int(label string, def int) (int, error) {
	for {
		fmt.Fprint(p.out, p.st.prompt.Render(fmt.Sprintf("%s [%d]: ", label, def)))
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		if line == "" {
			return def, nil
		}
		v, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(p.out, p.st.errs.Render("Invalid input. Please enter a valid integer (e.g. 52)."))
			continue
		}
		return v, nil
	}
}

// choice keeps asking until the answer is one of the options; empty input
// picks the default.
func (p *prompter) choice(label string, options []string, def string) (string, error) {
	for {
		fmt.Fprint(p.out, p.st.prompt.Render(fmt.Sprintf("%s [%s]: ", label, def)))
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		if line == "" {
			return def, nil
		}
		for _, opt := range options {
			if line == opt {
				return line, nil
			}
		}
		fmt.Fprintln(p.out, p.st.errs.Render(
			fmt.Sprintf("Invalid choice. Please enter one of %s.", strings.Join(options, ", "))))
	}
}
