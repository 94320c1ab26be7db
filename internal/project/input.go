package project

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// IsAffirmative reports whether input is an affirmative answer. Matching is
// deliberately narrow: "y" or "yes" after trimming and case folding. Any
// other input, including empty, is negative rather than an error.
func IsAffirmative(input string) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true
	}
	return false
}

// Collector reads interactive answers line by line. Prompts go to out so
// they can be directed at stderr while generated output stays on stdout.
type Collector struct {
	in  *bufio.Reader
	out io.Writer
}

// NewCollector constructs a Collector over the given reader and writer.
func NewCollector(r io.Reader, w io.Writer) *Collector {
	return &Collector{in: bufio.NewReader(r), out: w}
}

// ProjectName prompts for the project name and validates it. The answer is
// read exactly once; a bad name fails the run instead of re-prompting.
func (c *Collector) ProjectName() (string, error) {
	fmt.Fprint(c.out, "Project name: ")
	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading project name: %w", err)
	}
	name := strings.TrimSpace(line)
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return name, nil
}

// ConfirmFeature asks a yes/no question. Only an affirmative answer
// activates the feature; everything else, including EOF, declines it.
func (c *Collector) ConfirmFeature(question string) (bool, error) {
	fmt.Fprintf(c.out, "%s (y/N): ", question)
	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("reading answer: %w", err)
	}
	return IsAffirmative(line), nil
}
