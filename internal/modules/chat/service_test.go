// README: Pipeline routing tests; dispatch goes to exactly one handler.
package chat

import (
	"context"
	"errors"
	"testing"

	"dreamstate/internal/modules/intent"
)

type stubClassifier struct {
	rec *intent.Record
	err error
}

func (s *stubClassifier) Classify(_ context.Context, _ string) (*intent.Record, error) {
	return s.rec, s.err
}

// callRecorder counts which handlers the router touched.
type callRecorder struct {
	property int
	dataset  int
	general  int
	lastMsg  string
}

func (r *callRecorder) HandlePropertyQuery(_ context.Context, _ *intent.Record) (Result, error) {
	r.property++
	return Plain("property reply"), nil
}

func (r *callRecorder) HandleDatasetQuery(_ context.Context, _ *intent.Record) (Result, error) {
	r.dataset++
	return Plain("dataset reply"), nil
}

func (r *callRecorder) GeneralReply(_ context.Context, message string) (Result, error) {
	r.general++
	r.lastMsg = message
	return Plain("general reply"), nil
}

func noResolve(_ *string, _ string) (string, string) { return "general", "" }

func newTestService(rec *intent.Record) (*Service, *callRecorder) {
	calls := &callRecorder{}
	svc := NewService(&stubClassifier{rec: rec}, noResolve, calls, calls, calls)
	return svc, calls
}

func TestProcess_DatasetQueryInvokesOnlyDatasetHandler(t *testing.T) {
	rec := &intent.Record{Intent: intent.DatasetQuery, InputMessage: "pools?"}
	svc, calls := newTestService(rec)

	env, err := svc.Process(context.Background(), "pools?")
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if calls.dataset != 1 || calls.property != 0 || calls.general != 0 {
		t.Errorf("dispatch counts property=%d dataset=%d general=%d, want only dataset",
			calls.property, calls.dataset, calls.general)
	}
	if env.Reply != "dataset reply" {
		t.Errorf("reply = %q", env.Reply)
	}
}

func TestProcess_PropertyQueryInvokesPropertyHandler(t *testing.T) {
	rec := &intent.Record{Intent: intent.PropertyQuery, InputMessage: "unit 5 wifi"}
	svc, calls := newTestService(rec)

	if _, err := svc.Process(context.Background(), "unit 5 wifi"); err != nil {
		t.Fatalf("process: %v", err)
	}
	if calls.property != 1 || calls.dataset != 0 || calls.general != 0 {
		t.Errorf("dispatch counts property=%d dataset=%d general=%d, want only property",
			calls.property, calls.dataset, calls.general)
	}
}

// TestProcess_GeneralGetsRawMessageOnly checks the general-reply contract:
// greetings, "other", and defensively any unknown intent route to the
// general generator, which receives the raw message and not the record.
func TestProcess_GeneralGetsRawMessageOnly(t *testing.T) {
	for _, tt := range []struct {
		name   string
		intent string
	}{
		{"greeting", intent.Greeting},
		{"other", intent.Other},
		{"unknown value", "some_unknown_intent"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			rec := &intent.Record{Intent: tt.intent, InputMessage: "raw text"}
			svc, calls := newTestService(rec)

			if _, err := svc.Process(context.Background(), "raw text"); err != nil {
				t.Fatalf("process: %v", err)
			}
			if calls.general != 1 || calls.property != 0 || calls.dataset != 0 {
				t.Errorf("dispatch counts property=%d dataset=%d general=%d, want only general",
					calls.property, calls.dataset, calls.general)
			}
			if calls.lastMsg != "raw text" {
				t.Errorf("general handler got %q, want the raw message", calls.lastMsg)
			}
		})
	}
}

func TestProcess_ClassifierErrorPropagates(t *testing.T) {
	wantErr := errors.New("extraction transport failure")
	calls := &callRecorder{}
	svc := NewService(&stubClassifier{err: wantErr}, noResolve, calls, calls, calls)

	_, err := svc.Process(context.Background(), "anything")
	if !errors.Is(err, wantErr) {
		t.Errorf("classifier error not propagated: %v", err)
	}
	if calls.property+calls.dataset+calls.general != 0 {
		t.Error("no handler should run after a classification failure")
	}
}

func TestProcess_EnrichmentAttached(t *testing.T) {
	rec := &intent.Record{Intent: intent.Greeting, InputMessage: "hi"}
	calls := &callRecorder{}
	resolve := func(_ *string, _ string) (string, string) { return "wifi", "wifi_speed" }
	svc := NewService(&stubClassifier{rec: rec}, resolve, calls, calls, calls)

	env, err := svc.Process(context.Background(), "hi")
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if env.Extracted.FieldType != "wifi" || env.Extracted.DatasetHint != "wifi_speed" {
		t.Errorf("enrichment missing: fieldType=%q hint=%q", env.Extracted.FieldType, env.Extracted.DatasetHint)
	}
}
