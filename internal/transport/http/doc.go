// Package http provides the HTTP client used to talk to the identity API,
// together with round trippers for debug request/response logging
// and User-Agent header injection.
package http
