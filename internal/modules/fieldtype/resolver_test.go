// README: Field resolver tests.
package fieldtype

import "testing"

func TestResolve_Keywords(t *testing.T) {
	wifi := "WiFi password"
	tests := []struct {
		name     string
		info     *string
		message  string
		wantTag  string
		wantHint string
	}{
		{"wifi from extracted phrase", &wifi, "what's the wifi at unit 5", FieldWifi, "wifi_speed"},
		{"wifi from message only", nil, "is the internet fast there?", FieldWifi, "wifi_speed"},
		{"check-in", nil, "when is check-in at Unit 3?", FieldCheckIn, ""},
		{"parking", nil, "where do I park?", FieldParking, ""},
		{"price", nil, "how much per night?", FieldPrice, "price_per_night"},
		{"rating", nil, "how is it rated?", FieldRating, "rating"},
		{"pool", nil, "does it have a hot tub?", FieldPool, "amenities"},
		{"owner", nil, "who owns Unit 9?", FieldOwner, "owner"},
		{"no signal", nil, "tell me a joke", FieldGeneral, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag, hint := Resolve(tt.info, tt.message)
			if tag != tt.wantTag {
				t.Errorf("tag = %q, want %q", tag, tt.wantTag)
			}
			if hint != tt.wantHint {
				t.Errorf("hint = %q, want %q", hint, tt.wantHint)
			}
		})
	}
}

// TestResolve_NilInputDeterministic: the resolver must tolerate empty input
// and always land on the same tag.
func TestResolve_NilInputDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		tag, hint := Resolve(nil, "")
		if tag != FieldGeneral || hint != "" {
			t.Fatalf("empty input resolved to (%q, %q), want (%q, \"\")", tag, hint, FieldGeneral)
		}
	}
}

// Extracted phrase outranks the rest of the message when both carry signals.
func TestResolve_ExtractedPhraseWins(t *testing.T) {
	info := "parking"
	tag, _ := Resolve(&info, "what about the wifi and parking?")
	if tag != FieldParking {
		t.Errorf("tag = %q, want %q (phrase scanned before message)", tag, FieldParking)
	}
}
