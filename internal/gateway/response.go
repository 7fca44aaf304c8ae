package gateway

import (
	"bytes"
	"encoding/json"

	"github.com/nfrund/userdesk/internal/domain"
)

// Response is a decoded endpoint reply.
type Response struct {
	// Status is the HTTP status code. The gateway does not act on it.
	Status int
	// Payload is the raw JSON body.
	Payload json.RawMessage
}

// Decode unmarshals the payload into v. A shape mismatch is a TransportError.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Payload, v); err != nil {
		return domain.NewTransportError("decode", err)
	}
	return nil
}

// Pretty returns the payload indented by two spaces.
func (r *Response) Pretty() string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, r.Payload, "", "  "); err != nil {
		return string(r.Payload)
	}
	return buf.String()
}
