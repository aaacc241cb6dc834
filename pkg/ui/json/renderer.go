// Package json renders debug reports and errors as JSON for scripts
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/run-mailcap/pkg/errors"
)

// errorDocument is the shape of a rendered error
type errorDocument struct {
	Error   string                 `json:"error"`
	Code    errors.ErrorCode       `json:"code,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Renderer writes one indented JSON document per call
type Renderer struct {
	encoder *json.Encoder
}

// New creates a JSON renderer writing to output
func New(output io.Writer) (*Renderer, error) {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	// command lines routinely contain < > &
	encoder.SetEscapeHTML(false)
	return &Renderer{encoder: encoder}, nil
}

// RenderResult encodes result as is
func (r *Renderer) RenderResult(result interface{}) error {
	return r.encoder.Encode(result)
}

// RenderError encodes err with its code and details when it carries them
func (r *Renderer) RenderError(err error) error {
	doc := errorDocument{
		Error:   err.Error(),
		Details: errors.GetErrorDetails(err),
	}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		doc.Code = code
	}
	return r.encoder.Encode(doc)
}

// RenderMessage encodes msg as {"message": msg}
func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
