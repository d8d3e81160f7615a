package request

import "testing"

func TestResolveSessionID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain id", "abc-123", "abc-123"},
		{"surrounding whitespace trimmed", "  abc-123  ", "abc-123"},
		{"blank becomes empty", "   ", ""},
		{"empty stays empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := StartSessionRequest{SessionID: tc.input}
			if got := r.ResolveSessionID(); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
