// Package config manages user-level settings stored at ~/.resumegen/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default metadata output format.
package config
