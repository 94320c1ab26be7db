package manifest

// FileName is the npm manifest file name at the project root.
const FileName = "package.json"

// PackageJSON is a typed view of the manifest fields webstrap reads.
// Patching never round-trips through this struct (see PatchScripts), so
// fields absent here are still preserved on write.
type PackageJSON struct {
	Name            string            `json:"name"`
	Version         string            `json:"version,omitempty"`
	Private         bool              `json:"private,omitempty"`
	Type            string            `json:"type,omitempty"`
	Scripts         map[string]string `json:"scripts,omitempty"`
	Dependencies    map[string]string `json:"dependencies,omitempty"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
}

// Patch lists script aliases to merge into the manifest. Only keys named
// here are written; existing aliases outside the patch are never altered.
type Patch struct {
	Scripts map[string]string
}
