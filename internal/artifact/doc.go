// Package artifact renders and writes the configuration files webstrap
// generates into a scaffolded project. Rendering is pure: a template plus a
// typed substitution record produce bytes, with no filesystem involvement.
// Writing is atomic via a temp file and rename, so a crashed run never
// leaves a half-written config behind. Emission always overwrites; artifacts
// derive from the current templates and context alone, never from prior
// file state.
package artifact
