package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/origin-lookup/internal/client/origin"
)

const (
	// FormatTable prints one Field/Value box table per user.
	FormatTable = "table"
	// FormatJSON prints indented JSON.
	FormatJSON = "json"
	// FormatYAML prints YAML.
	FormatYAML = "yaml"

	// missingValue is shown for absent optional fields.
	missingValue = "None"
	jsonIndent   = "  "
	yamlIndent   = 2
)

// ErrUnknownFormat indicates an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// Render writes users to w in the given format. A single user is rendered as an object, several as a list.
func Render(w io.Writer, format string, users ...*origin.User) error {
	switch strings.ToLower(format) {
	case "", FormatTable:
		return renderTables(w, users)
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", jsonIndent)

		return encoder.Encode(payload(users))
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(yamlIndent)

		if err := encoder.Encode(payload(users)); err != nil {
			return err
		}

		return encoder.Close()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

func payload(users []*origin.User) any {
	if len(users) == 1 {
		return users[0]
	}

	return users
}

func renderTables(w io.Writer, users []*origin.User) error {
	for i, user := range users {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, newUserTable(userRows(user))); err != nil {
			return err
		}
	}

	return nil
}

// userRows lists the user's fields in display order.
func userRows(user *origin.User) [][2]string {
	return [][2]string{
		{"Field", "Value"},
		{"user_id", user.UserID},
		{"email", optional(user.Email)},
		{"persona_id", user.PersonaID},
		{"ea_id", user.EAID},
		{"first_name", optional(user.FirstName)},
		{"last_name", optional(user.LastName)},
		{"underage_user", strconv.FormatBool(user.UnderageUser)},
		{"is_discoverable_email", strconv.FormatBool(user.IsDiscoverableEmail)},
	}
}

func optional(value *string) string {
	if value == nil {
		return missingValue
	}

	return *value
}
