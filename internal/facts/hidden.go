package facts

import "github.com/HerbHall/wifilens/pkg/models"

// IsHidden reports whether the access point with the given BSSID is hiding
// its SSID. A BSSID missing from the scan counts as hidden, as does a
// matching entry that advertises an empty SSID.
func IsHidden(bssid string, scan []models.ScanEntry) bool {
	for _, entry := range scan {
		if entry.BSSID == bssid {
			return entry.SSID == ""
		}
	}
	return true
}
