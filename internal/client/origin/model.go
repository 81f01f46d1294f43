package origin

import (
	"encoding/xml"
	"errors"
	"fmt"
)

// errMissingField indicates that a decoded user lacks a required field.
var errMissingField = errors.New("required field is missing")

// AuthData is the payload returned by the token mint endpoint.
type AuthData struct {
	// AccessToken is the bearer token presented on lookups.
	AccessToken string `json:"access_token"`
	// TokenType is usually "Bearer". Not acted upon.
	TokenType string `json:"token_type"`
	// ExpiresIn is the token lifetime in seconds, sent as a string. Not acted upon.
	ExpiresIn string `json:"expires_in"`
	// Error is set instead of a token when the provider cannot mint silently (e.g., "login_required").
	Error string `json:"error,omitempty"`
	// ErrorDescription details Error.
	ErrorDescription string `json:"error_description,omitempty"`
}

// User is an Origin account as returned by the lookup endpoints.
type User struct {
	XMLName xml.Name `json:"-" xml:"user" yaml:"-"`
	// UserID is the numeric account identifier, kept as a string.
	UserID string `json:"userId" xml:"userId" yaml:"user_id"`
	// Email is only disclosed for discoverable accounts.
	Email *string `json:"email" xml:"email,omitempty" yaml:"email"`
	// PersonaID identifies the account's persona.
	PersonaID string `json:"personaId" xml:"personaId" yaml:"persona_id"`
	// EAID is the public display name.
	EAID string `json:"eaId" xml:"EAID" yaml:"ea_id"`
	// FirstName is optional.
	FirstName *string `json:"firstName" xml:"firstName,omitempty" yaml:"first_name"`
	// LastName is optional.
	LastName *string `json:"lastName" xml:"lastName,omitempty" yaml:"last_name"`
	// UnderageUser defaults to false when absent.
	UnderageUser bool `json:"underageUser" xml:"underageUser" yaml:"underage_user"`
	// IsDiscoverableEmail defaults to false when absent.
	IsDiscoverableEmail bool `json:"isDiscoverableEmail" xml:"isDiscoverableEmail" yaml:"is_discoverable_email"`
}

// UserList is the container returned by the lookup by IDs, in server order (best match first).
type UserList struct {
	XMLName xml.Name `json:"-" xml:"users" yaml:"-"`
	// Users keeps the order the server sent.
	Users []User `json:"users" xml:"user" yaml:"users"`
}

// validate reports a user that lacks any of the fields every account has.
func (u *User) validate() error {
	switch {
	case u.UserID == "":
		return fmt.Errorf("%w: userId", errMissingField)
	case u.PersonaID == "":
		return fmt.Errorf("%w: personaId", errMissingField)
	case u.EAID == "":
		return fmt.Errorf("%w: EAID", errMissingField)
	}

	return nil
}

// validate checks every user in the list. An empty list is valid.
func (l *UserList) validate() error {
	for i := range l.Users {
		if err := l.Users[i].validate(); err != nil {
			return fmt.Errorf("user %d: %w", i, err)
		}
	}

	return nil
}
