package origin_test

import (
	"encoding/json"
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/origin-lookup/internal/client/origin"
)

// TestUserList_XML tests decoding of a real lookup payload.
func TestUserList_XML(t *testing.T) {
	t.Parallel()

	payload := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?><users><user>` +
		`<userId>2407904290</userId><personaId>1711480102</personaId><EAID>w4rm1nd</EAID>` +
		`</user></users>`

	var userList origin.UserList
	require.NoError(t, xml.Unmarshal([]byte(payload), &userList))
	require.Len(t, userList.Users, 1)

	user := userList.Users[0]
	assert.Equal(t, "2407904290", user.UserID)
	assert.Equal(t, "1711480102", user.PersonaID)
	assert.Equal(t, "w4rm1nd", user.EAID)
	assert.Nil(t, user.Email)
	assert.False(t, user.UnderageUser)
}

// TestUser_XMLOptionalFields tests that present optional fields are decoded.
func TestUser_XMLOptionalFields(t *testing.T) {
	t.Parallel()

	payload := `<user><userId>1</userId><email>foo@example.com</email><personaId>2</personaId>` +
		`<EAID>Foo</EAID><firstName>Jane</firstName><underageUser>true</underageUser>` +
		`<isDiscoverableEmail>true</isDiscoverableEmail></user>`

	var user origin.User
	require.NoError(t, xml.Unmarshal([]byte(payload), &user))

	require.NotNil(t, user.Email)
	assert.Equal(t, "foo@example.com", *user.Email)
	require.NotNil(t, user.FirstName)
	assert.Equal(t, "Jane", *user.FirstName)
	assert.Nil(t, user.LastName)
	assert.True(t, user.UnderageUser)
	assert.True(t, user.IsDiscoverableEmail)
}

// TestAuthData_JSON tests decoding of the mint payload, including the error shape.
func TestAuthData_JSON(t *testing.T) {
	t.Parallel()

	var authData origin.AuthData
	require.NoError(t, json.Unmarshal(
		[]byte(`{"access_token":"QVQwOjMuMA","token_type":"Bearer","expires_in":"14399"}`),
		&authData,
	))

	assert.Equal(t, "QVQwOjMuMA", authData.AccessToken)
	assert.Equal(t, "Bearer", authData.TokenType)
	assert.Equal(t, "14399", authData.ExpiresIn)
	assert.Empty(t, authData.Error)

	var failed origin.AuthData
	require.NoError(t, json.Unmarshal([]byte(`{"error":"login_required"}`), &failed))
	assert.Equal(t, "login_required", failed.Error)
	assert.Empty(t, failed.AccessToken)
}

func stringPtr(value string) *string {
	return &value
}

// TestUser_RoundTrip tests that encoding then decoding a user gives the same value in both wire shapes.
func TestUser_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		user origin.User
	}{
		{
			name: "optional fields absent",
			user: origin.User{UserID: "2407904290", PersonaID: "1711480102", EAID: "w4rm1nd"},
		},
		{
			name: "optional fields empty",
			user: origin.User{
				UserID:    "1",
				Email:     stringPtr(""),
				PersonaID: "2",
				EAID:      "Foo",
				FirstName: stringPtr(""),
				LastName:  stringPtr(""),
			},
		},
		{
			name: "all fields set",
			user: origin.User{
				UserID:              "1001223352890",
				Email:               stringPtr("qi@example.com"),
				PersonaID:           "1264838874",
				EAID:                "Qi-Johnny",
				FirstName:           stringPtr("Qi"),
				LastName:            stringPtr("Johnny"),
				UnderageUser:        true,
				IsDiscoverableEmail: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/json", func(t *testing.T) {
			t.Parallel()

			encoded, err := json.Marshal(tt.user)
			require.NoError(t, err)

			var decoded origin.User
			require.NoError(t, json.Unmarshal(encoded, &decoded))
			assert.Equal(t, tt.user, decoded)
		})

		t.Run(tt.name+"/xml", func(t *testing.T) {
			t.Parallel()

			encoded, err := xml.Marshal(tt.user)
			require.NoError(t, err)

			var decoded origin.User
			require.NoError(t, xml.Unmarshal(encoded, &decoded))

			// The decoder records the element name; the source value leaves it unset.
			decoded.XMLName = xml.Name{}
			assert.Equal(t, tt.user, decoded)
		})
	}
}

// TestUserList_RoundTrip tests that the user order survives both wire shapes.
func TestUserList_RoundTrip(t *testing.T) {
	t.Parallel()

	userList := origin.UserList{
		Users: []origin.User{
			{UserID: "B", PersonaID: "2", EAID: "Bravo", Email: stringPtr("b@example.com")},
			{UserID: "A", PersonaID: "1", EAID: "Alpha"},
			{UserID: "C", PersonaID: "3", EAID: "Charlie", LastName: stringPtr("")},
		},
	}

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		encoded, err := json.Marshal(userList)
		require.NoError(t, err)

		var decoded origin.UserList
		require.NoError(t, json.Unmarshal(encoded, &decoded))
		assert.Equal(t, userList, decoded)
	})

	t.Run("xml", func(t *testing.T) {
		t.Parallel()

		encoded, err := xml.Marshal(userList)
		require.NoError(t, err)

		var decoded origin.UserList
		require.NoError(t, xml.Unmarshal(encoded, &decoded))

		decoded.XMLName = xml.Name{}
		for i := range decoded.Users {
			decoded.Users[i].XMLName = xml.Name{}
		}

		assert.Equal(t, userList, decoded)
	})
}
