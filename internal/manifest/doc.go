// Package manifest reads, patches, and validates the project's package.json.
// Script patching is a raw-JSON merge: only the scripts block is decoded and
// rewritten, every other key passes through untouched. Validation checks
// document shape against an embedded JSON Schema, never semantics such as
// version ranges.
package manifest
