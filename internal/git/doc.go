// Package git wraps the git executable for the finalize step: initializing
// a repository in the scaffolded project and recording the initial snapshot
// commit. All operations run with -C so the process working directory is
// never changed.
package git
