// README: Handler result union and the reply envelope returned to clients.
package chat

import "dreamstate/internal/modules/intent"

// Structured is a handler payload carrying machine-readable data next to the
// display text. Type is the discriminator richer clients switch on.
type Structured struct {
	Type    string         `json:"type"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

// Result is what a downstream handler returns: plain display text, or a
// structured payload whose Message doubles as the display text.
type Result struct {
	Text       string
	Structured *Structured
}

// Plain wraps bare text in a Result.
func Plain(text string) Result { return Result{Text: text} }

// StructuredResult wraps a structured payload in a Result.
func StructuredResult(s *Structured) Result { return Result{Structured: s} }

// Envelope is the single reply shape produced for every message. Extracted
// carries the final intent record for observability; Structured is present
// only when the handler returned a structured payload.
type Envelope struct {
	Reply      string         `json:"reply"`
	Extracted  *intent.Record `json:"extracted"`
	Structured *Structured    `json:"structured,omitempty"`
}

// Assemble normalizes a handler result into the envelope. It is total over
// both result shapes: callers never need to know which handler ran.
func Assemble(res Result, rec *intent.Record) *Envelope {
	if res.Structured != nil && res.Structured.Type != "" {
		return &Envelope{
			Reply:      res.Structured.Message,
			Extracted:  rec,
			Structured: res.Structured,
		}
	}
	return &Envelope{Reply: res.Text, Extracted: rec}
}
