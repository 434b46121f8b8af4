// Package config loads srtkit settings from TOML.
//
// Lookup order is an explicit path, then ~/.config/srtkit/config.toml, then
// ./srtkit.toml. A missing file leaves every value at its default.
package config
