package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/origin-lookup/internal/config"
	"github.com/oshokin/origin-lookup/internal/constants"
	"github.com/oshokin/origin-lookup/internal/service/lookup"
)

const testBaseConfigContent = `
remid: "config_remid"
sid: "config_sid"
log_level: "info"
request_timeout: "30s"
max_log_length: "64KB"
users_cache_size: 16
output_format: "table"
`

// clearCredentialEnv keeps real credentials in the environment from leaking into the tests.
func clearCredentialEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{config.EnvRemid, config.EnvSID, config.EnvAccessToken} {
		t.Setenv(key, "")
	}
}

func loadTestConfig(t *testing.T) *config.Config {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "test-config.yaml")

	err := os.WriteFile(
		configPath,
		[]byte(testBaseConfigContent),
		constants.DefaultFilePermissions,
	) //nolint:gosec // It's a test file.
	require.NoError(t, err)

	cfg, err := config.LoadConfig(configPath)
	require.NoError(t, err)

	return cfg
}

func newTestFlags(t *testing.T, values map[string]string) *pflag.FlagSet {
	t.Helper()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addRootFlags(flags)

	for name, value := range values {
		require.NoError(t, flags.Set(name, value), "failed to set flag %s", name)
	}

	return flags
}

// TestBindFlagsToConfig tests that command-line flags override configuration values.
//
//nolint:funlen,tparallel // Cannot run in parallel because the environment is modified.
func TestBindFlagsToConfig(t *testing.T) {
	clearCredentialEnv(t)

	tests := []struct {
		name          string
		flags         map[string]string
		expectedQuery lookup.Query
		check         func(*testing.T, *config.Config)
	}{
		{
			name:          "name only uses config credentials",
			flags:         map[string]string{flagName: "Foo"},
			expectedQuery: lookup.Query{Name: "Foo"},
			check: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "config_remid", cfg.Remid)
				assert.Equal(t, "config_sid", cfg.SID)
				assert.Empty(t, cfg.AccessToken)
				assert.Equal(t, "table", cfg.OutputFormat)
			},
		},
		{
			name:          "comma-separated IDs",
			flags:         map[string]string{flagID: "A,B,C"},
			expectedQuery: lookup.Query{IDs: []string{"A", "B", "C"}},
		},
		{
			name: "credential flags override config",
			flags: map[string]string{
				flagName:        "Foo",
				flagRemid:       "flag_remid",
				flagSID:         "flag_sid",
				flagAccessToken: "flag_token",
			},
			expectedQuery: lookup.Query{Name: "Foo"},
			check: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "flag_remid", cfg.Remid)
				assert.Equal(t, "flag_sid", cfg.SID)
				assert.Equal(t, "flag_token", cfg.AccessToken)
			},
		},
		{
			name:          "output flag is normalized",
			flags:         map[string]string{flagID: "123", flagOutput: "JSON"},
			expectedQuery: lookup.Query{IDs: []string{"123"}},
			check: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "json", cfg.OutputFormat)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := loadTestConfig(t)

			query, err := bindFlagsToConfig(newTestFlags(t, tt.flags), cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedQuery, query)

			assert.Equal(t, uint64(64000), cfg.ParsedMaxLogLength)

			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

// TestBindFlagsToConfig_Errors tests that invalid flag values are rejected.
//
//nolint:tparallel // Cannot run in parallel because the environment is modified.
func TestBindFlagsToConfig_Errors(t *testing.T) {
	clearCredentialEnv(t)

	tests := []struct {
		name     string
		flags    map[string]string
		expected error
	}{
		{
			name:     "unknown output format",
			flags:    map[string]string{flagName: "Foo", flagOutput: "csv"},
			expected: config.ErrUnknownOutputFormat,
		},
		{
			name:     "blank remid",
			flags:    map[string]string{flagName: "Foo", flagRemid: "  "},
			expected: config.ErrEmptyRemid,
		},
		{
			name:     "blank sid",
			flags:    map[string]string{flagName: "Foo", flagSID: ""},
			expected: config.ErrEmptySID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := loadTestConfig(t)

			_, err := bindFlagsToConfig(newTestFlags(t, tt.flags), cfg)
			require.ErrorIs(t, err, tt.expected)
		})
	}
}

// TestRootCommand_FlagGroups tests that exactly one of --name and --id is accepted.
func TestRootCommand_FlagGroups(t *testing.T) {
	t.Parallel()

	nameFlag := rootCmd.Flags().Lookup(flagName)
	idFlag := rootCmd.Flags().Lookup(flagID)

	require.NotNil(t, nameFlag)
	require.NotNil(t, idFlag)

	assert.Contains(t, nameFlag.Annotations, "cobra_annotation_mutually_exclusive")
	assert.Contains(t, nameFlag.Annotations, "cobra_annotation_one_required")
	assert.Contains(t, idFlag.Annotations, "cobra_annotation_mutually_exclusive")
	assert.Contains(t, idFlag.Annotations, "cobra_annotation_one_required")
}

// TestRootCommand_Version tests that the version string comes from the version package.
func TestRootCommand_Version(t *testing.T) {
	t.Parallel()

	assert.Contains(t, rootCmd.Version, "version: ")
	assert.Contains(t, rootCmd.Version, "commit: ")
}
