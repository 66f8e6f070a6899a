package facts

import (
	"strings"

	"github.com/HerbHall/wifilens/pkg/models"
)

// NormalizeSSID removes the double quotes the platform wraps around SSIDs
// and replaces the "no SSID available" sentinel with unknownLabel.
//
// Quotes are stripped before the sentinel check so a quoted sentinel maps
// to the label too, and NormalizeSSID(NormalizeSSID(s)) == NormalizeSSID(s).
func NormalizeSSID(raw, unknownLabel string) string {
	ssid := strings.ReplaceAll(raw, `"`, "")
	if ssid == models.SSIDUnknown {
		return unknownLabel
	}
	return ssid
}
