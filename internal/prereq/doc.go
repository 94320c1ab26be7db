// Package prereq verifies the external executables webstrap shells out to.
// Check is the hard gate used before scaffolding: every required tool must
// resolve on PATH or the run stops at the first one that does not. Probe and
// Report power the doctor command with version information on top of the
// presence check.
package prereq
