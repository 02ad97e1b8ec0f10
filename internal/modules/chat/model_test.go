// README: Envelope assembly tests (plain vs structured handler results).
package chat

import (
	"reflect"
	"testing"

	"dreamstate/internal/modules/intent"
)

func TestAssemble_PlainString(t *testing.T) {
	rec := intent.Default("hello")
	env := Assemble(Plain("just text"), rec)

	if env.Reply != "just text" {
		t.Errorf("reply = %q, want the exact string", env.Reply)
	}
	if env.Structured != nil {
		t.Errorf("structured should be absent for a plain reply, got %+v", env.Structured)
	}
	if env.Extracted != rec {
		t.Error("extracted record not attached")
	}
}

func TestAssemble_StructuredResult(t *testing.T) {
	payload := &Structured{
		Type:    "x",
		Message: "y",
		Data:    map[string]any{"extra": 1},
	}
	env := Assemble(StructuredResult(payload), intent.Default("msg"))

	if env.Reply != "y" {
		t.Errorf("reply = %q, want the structured message", env.Reply)
	}
	if !reflect.DeepEqual(env.Structured, payload) {
		t.Errorf("structured = %+v, want the full original payload %+v", env.Structured, payload)
	}
}

// TestAssemble_EmptyDiscriminator: a structured value without a type is
// treated as plain text, mirroring the duck-typed contract it replaces.
func TestAssemble_EmptyDiscriminator(t *testing.T) {
	env := Assemble(Result{Text: "fallback", Structured: &Structured{Message: "ignored"}}, intent.Default("m"))
	if env.Reply != "fallback" || env.Structured != nil {
		t.Errorf("untyped structured payload should assemble as plain text, got %+v", env)
	}
}
