// Package config manages LabelForge configuration.
//
// Settings come from labelforge.yml and LABELFORGE_* environment
// variables, with environment taking precedence. Each attribute tracks
// its source (default, file, environment) for the
// `labelctl configuration show` command. Watch provides hot reload on
// config file changes.
package config
