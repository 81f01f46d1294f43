package utils

import (
	"mime"
	"regexp"
	"strings"
)

// textContentTypePatterns matches content types that are safe to dump into debug logs.
//
//nolint:gochecknoglobals // These are immutable, pre-compiled regex patterns and used as constants.
var textContentTypePatterns = []*regexp.Regexp{
	regexp.MustCompile("^text/.+"),
	regexp.MustCompile(`^application/(.+\+)?json$`),
	regexp.MustCompile(`^application/(.+\+)?xml$`),
}

// IsTextContentType checks if the given content type represents a text-based format
// such as "text/*", JSON or XML.
// It also checks that the charset, if present, is either "utf-8" or "us-ascii".
func IsTextContentType(contentType string) bool {
	parsedType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	for _, pattern := range textContentTypePatterns {
		if !pattern.MatchString(parsedType) {
			continue
		}

		charset := strings.ToLower(params["charset"])

		return charset == "" || charset == "utf-8" || charset == "us-ascii"
	}

	return false
}

// MaskSecret hides all but the last few characters of a credential so it can be logged.
func MaskSecret(secret string) string {
	const visibleSuffix = 4

	if len(secret) <= visibleSuffix {
		return strings.Repeat("*", len(secret))
	}

	return strings.Repeat("*", len(secret)-visibleSuffix) + secret[len(secret)-visibleSuffix:]
}
