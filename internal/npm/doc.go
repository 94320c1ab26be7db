// Package npm shells out to the npm and npx executables. It covers the three
// invocations scaffolding needs: running the create-vite template tool into a
// prepared directory, installing the base dependency set, and installing dev
// dependencies for optional feature bundles. Exit status is authoritative;
// any nonzero exit surfaces as an error.
package npm
