package addons

import (
	"context"
	"fmt"

	"github.com/webstrap-labs/webstrap/internal/project"
)

// Installer applies one feature bundle to a scaffolded project.
type Installer interface {
	Name() string
	Install(ctx context.Context, pc *project.Context) error
}

// FeatureError reports a feature bundle that failed mid-install. The
// underlying cause is preserved for errors.Is/As inspection.
type FeatureError struct {
	Feature string
	Err     error
}

func (e *FeatureError) Error() string {
	return fmt.Sprintf("feature %q: %v", e.Feature, e.Err)
}

func (e *FeatureError) Unwrap() error { return e.Err }
