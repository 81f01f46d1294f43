// Package origin provides a Go client for the EA/Origin identity API.
// A Session exchanges the long-lived remid/sid browser cookies for a short-lived
// access token; ClientImpl uses that token for user lookups and, when a request
// fails at the transport level, refreshes the token and retries exactly once.
// The mint endpoint answers in JSON while the lookup endpoints answer in XML;
// each endpoint carries its own decoder.
package origin
