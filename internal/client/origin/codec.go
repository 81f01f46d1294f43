package origin

import (
	"encoding/json"
	"encoding/xml"
	"io"
)

// responseDecoder turns an endpoint's response body into a value.
// Each endpoint is bound to exactly one decoder; the body is never sniffed.
type responseDecoder interface {
	// MediaType is sent in the Accept header.
	MediaType() string
	// Decode reads the whole body into v.
	Decode(r io.Reader, v any) error
}

// jsonDecoder decodes the mint endpoint.
type jsonDecoder struct{}

func (jsonDecoder) MediaType() string {
	return "application/json"
}

func (jsonDecoder) Decode(r io.Reader, v any) error {
	return json.NewDecoder(r).Decode(v)
}

// xmlDecoder decodes the lookup endpoints.
type xmlDecoder struct{}

func (xmlDecoder) MediaType() string {
	return "application/xml"
}

func (xmlDecoder) Decode(r io.Reader, v any) error {
	return xml.NewDecoder(r).Decode(v)
}
