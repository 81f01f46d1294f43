// Package auth harvests EA session cookies through a real browser.
//
// The user signs in to EA in a visible browser window driven by go-rod.
// Once the identity provider has set both the "remid" and "sid" cookies,
// they are read back and returned so they can be stored next to the access token.
package auth
