// Package addons installs optional feature bundles into a scaffolded
// project. A bundle owns its dependencies, config artifacts, script
// aliases, and starter files; failure of any sub-step aborts the bundle
// and surfaces as a FeatureError. The only bundle today is the Jest
// testing stack.
package addons
