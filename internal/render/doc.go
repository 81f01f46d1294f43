// Package render prints Origin users as a box table, JSON or YAML.
package render
