// Package config manages user-level settings stored at ~/.webstrap/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default scaffold template used when --template is not passed.
package config
