package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/subosito/gotenv"

	"github.com/oshokin/origin-lookup/internal/constants"
)

// Credentials are the values persisted to the dotenv file between runs.
type Credentials struct {
	// Remid is the "remid" session cookie.
	Remid string
	// SID is the "sid" session cookie.
	SID string
	// AccessToken is the most recently used bearer token.
	AccessToken string
}

// LoadEnvFile exports the entries of a dotenv file into the process environment.
// Variables that are already set win over the file. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		path = DefaultEnvFilename
	}

	if err := gotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("failed to load env file: %w", err)
	}

	return nil
}

// SaveCredentials merges the credentials into the dotenv file, keeping unrelated entries.
// The file ends up readable by its owner only, even if it existed with a looser mode.
// Empty credential fields leave the existing entries untouched.
func SaveCredentials(path string, credentials *Credentials) error {
	if path == "" {
		path = DefaultEnvFilename
	}

	entries, err := readEnvFile(path)
	if err != nil {
		return err
	}

	for key, value := range map[string]string{
		EnvRemid:       credentials.Remid,
		EnvSID:         credentials.SID,
		EnvAccessToken: credentials.AccessToken,
	} {
		if value != "" {
			entries[key] = value
		}
	}

	content, err := gotenv.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal env file: %w", err)
	}

	if err = os.WriteFile(path, []byte(content+"\n"), constants.CredentialsFilePermissions); err != nil {
		return fmt.Errorf("failed to write env file: %w", err)
	}

	// WriteFile only applies the mode to new files; tighten a pre-existing one too.
	if err = os.Chmod(path, constants.CredentialsFilePermissions); err != nil {
		return fmt.Errorf("failed to restrict env file permissions: %w", err)
	}

	return nil
}

func readEnvFile(path string) (gotenv.Env, error) {
	file, err := os.Open(path) //nolint:gosec // The path comes from the user's own configuration.
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return make(gotenv.Env), nil
		}

		return nil, fmt.Errorf("failed to read env file: %w", err)
	}

	defer file.Close() //nolint:errcheck // Read-only file, error on close is not critical.

	entries, err := gotenv.StrictParse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse env file: %w", err)
	}

	return entries, nil
}
