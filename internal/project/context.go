package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// FeatureTests selects the test-framework bundle.
const FeatureTests = "tests"

// Options is the set of named boolean feature selections for one run.
type Options map[string]bool

// Enabled reports whether the named feature was selected.
func (o Options) Enabled(name string) bool { return o[name] }

// Context carries the identity of one scaffolding run. It is created once
// from user input and never mutated afterwards; every step receives it and
// resolves paths against Dir instead of the process working directory.
type Context struct {
	Name     string
	Dir      string
	Template string
	Options  Options
}

// New validates the name, resolves dir to an absolute path, and builds the
// Context. When dir is empty the project lands at ./<name>.
func New(name, dir, template string, opts Options) (*Context, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if dir == "" {
		dir = filepath.Join(".", name)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving project directory: %w", err)
	}
	if opts == nil {
		opts = Options{}
	}
	return &Context{Name: name, Dir: abs, Template: template, Options: opts}, nil
}

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// ErrInvalidName reports a project name unfit for a directory name.
var ErrInvalidName = errors.New("invalid project name")

// ValidateName rejects empty or whitespace-only names and anything outside
// the safe directory-name alphabet.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: %q must match pattern [a-z0-9][a-z0-9-]*", ErrInvalidName, name)
	}
	return nil
}
