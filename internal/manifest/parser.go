package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrNotFound reports that no manifest exists at the given path.
var ErrNotFound = errors.New("manifest not found")

// ErrMalformed reports a manifest that exists but cannot be parsed, or
// whose scripts block is not a string-to-string object.
var ErrMalformed = errors.New("manifest malformed")

// Parse reads the manifest at path into its typed view.
func Parse(path string) (*PackageJSON, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var pkg PackageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrMalformed, path, err)
	}
	return &pkg, nil
}

// readFile reads the manifest bytes, mapping a missing file to ErrNotFound.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	return data, nil
}
