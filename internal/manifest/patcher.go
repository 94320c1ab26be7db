package manifest

import (
	"encoding/json"
	"fmt"

	"github.com/webstrap-labs/webstrap/internal/artifact"
)

// PatchScripts merges patch.Scripts into the manifest at path. The flow is
// read, validate, merge, write: nothing is written when the manifest is
// missing or malformed, and the write itself is atomic. The merge touches
// only the scripts block; all other top-level keys are carried through as
// raw JSON.
func PatchScripts(path string, patch Patch) error {
	data, err := readFile(path)
	if err != nil {
		return err
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: parsing %s: %v", ErrMalformed, path, err)
	}

	scripts := map[string]string{}
	if raw, ok := doc["scripts"]; ok {
		if err := json.Unmarshal(raw, &scripts); err != nil {
			return fmt.Errorf("%w: scripts block in %s is not a string map: %v", ErrMalformed, path, err)
		}
	}
	for alias, invocation := range patch.Scripts {
		scripts[alias] = invocation
	}

	rawScripts, err := json.Marshal(scripts)
	if err != nil {
		return fmt.Errorf("encoding scripts block: %w", err)
	}
	doc["scripts"] = rawScripts

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	out = append(out, '\n')

	if err := artifact.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}
