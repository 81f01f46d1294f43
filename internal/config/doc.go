// Package config loads and validates the application settings.
// Settings come from an optional YAML file, ORIGIN_LOOKUP_* environment variables
// and command-line flags; session credentials come from REMID, SID and ACCESS_TOKEN,
// which are also persisted to a dotenv file between runs.
package config
