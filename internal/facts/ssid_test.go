package facts

import (
	"testing"

	"github.com/HerbHall/wifilens/pkg/models"
)

func TestNormalizeSSID(t *testing.T) {
	const unknown = "Desconocido"
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"sentinel", models.SSIDUnknown, unknown},
		{"quoted sentinel", `"<unknown ssid>"`, unknown},
		{"quoted", `"home"`, "home"},
		{"clean", "home", "home"},
		{"inner quotes", `"my "guest" net"`, "my guest net"},
		{"empty", "", ""},
		{"spaces kept", `" cafe wifi "`, " cafe wifi "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeSSID(tt.raw, unknown); got != tt.want {
				t.Errorf("NormalizeSSID(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeSSID_Idempotent(t *testing.T) {
	for _, raw := range []string{models.SSIDUnknown, `"home"`, "home", `""`, `"<unknown ssid>"`} {
		t.Run(raw, func(t *testing.T) {
			once := NormalizeSSID(raw, Spanish.UnknownSSID)
			twice := NormalizeSSID(once, Spanish.UnknownSSID)
			if once != twice {
				t.Errorf("NormalizeSSID not idempotent for %q: %q then %q", raw, once, twice)
			}
		})
	}
}
