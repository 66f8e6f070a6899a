package facts

import (
	"golang.org/x/text/language"

	"github.com/HerbHall/wifilens/pkg/models"
)

// Labels is the localized copy used when extracting and rendering facts.
type Labels struct {
	Tag language.Tag

	UnknownSSID    string
	UnknownAddress string
	UnknownChannel string
	Open           string
	Secured        string
	Yes            string
	No             string

	// PermissionDenied is shown instead of the report when the platform
	// refuses access to the WiFi state.
	PermissionDenied string

	SSID       string
	BSSID      string
	LinkSpeed  string
	Frequency  string
	Channel    string
	RSSI       string
	Encryption string
	IPAddress  string
	Gateway    string
	Netmask    string
	DNS1       string
	DNS2       string
	DHCPLease  string
	ExternalIP string
	Hidden     string
}

// Spanish is the default label set.
var Spanish = Labels{
	Tag:              language.Spanish,
	UnknownSSID:      "Desconocido",
	UnknownAddress:   "Desconocida",
	UnknownChannel:   "Desconocido",
	Open:             "Abierta",
	Secured:          "WPA/WPA2",
	Yes:              "Sí",
	No:               "No",
	PermissionDenied: "Permiso de ubicación denegado. No se puede mostrar el SSID.",
	SSID:             "SSID",
	BSSID:            "BSSID",
	LinkSpeed:        "Velocidad de enlace",
	Frequency:        "Frecuencia",
	Channel:          "Canal",
	RSSI:             "RSSI",
	Encryption:       "Encriptación",
	IPAddress:        "Dirección IP interna",
	Gateway:          "Puerta de enlace",
	Netmask:          "Máscara de subred",
	DNS1:             "DNS1",
	DNS2:             "DNS2",
	DHCPLease:        "Duración del DHCP lease",
	ExternalIP:       "IP externa",
	Hidden:           "Red oculta",
}

// English label set.
var English = Labels{
	Tag:              language.English,
	UnknownSSID:      "Unknown",
	UnknownAddress:   "Unknown",
	UnknownChannel:   "Unknown",
	Open:             "Open",
	Secured:          "WPA/WPA2",
	Yes:              "Yes",
	No:               "No",
	PermissionDenied: "Location permission denied. The SSID cannot be shown.",
	SSID:             "SSID",
	BSSID:            "BSSID",
	LinkSpeed:        "Link speed",
	Frequency:        "Frequency",
	Channel:          "Channel",
	RSSI:             "RSSI",
	Encryption:       "Encryption",
	IPAddress:        "Internal IP address",
	Gateway:          "Gateway",
	Netmask:          "Subnet mask",
	DNS1:             "DNS1",
	DNS2:             "DNS2",
	DHCPLease:        "DHCP lease duration",
	ExternalIP:       "External IP",
	Hidden:           "Hidden network",
}

var (
	labelSets    = []Labels{Spanish, English}
	labelMatcher = language.NewMatcher([]language.Tag{language.Spanish, language.English})
)

// LabelsFor picks the label set for the first supported language in the
// given preferences. Each argument may be a BCP 47 tag ("en-GB") or a full
// Accept-Language header value; earlier arguments take priority. Unmatched
// or empty input yields Spanish.
func LabelsFor(langs ...string) Labels {
	for _, s := range langs {
		if s == "" {
			continue
		}
		tags, _, err := language.ParseAcceptLanguage(s)
		if err != nil {
			continue
		}
		for _, tag := range tags {
			if _, idx, conf := labelMatcher.Match(tag); conf != language.No {
				return labelSets[idx]
			}
		}
	}
	return Spanish
}

// EncryptionLabel returns the display name for e.
func (l Labels) EncryptionLabel(e models.Encryption) string {
	if e == models.EncryptionOpen {
		return l.Open
	}
	return l.Secured
}

// YesNo returns the localized yes or no.
func (l Labels) YesNo(b bool) string {
	if b {
		return l.Yes
	}
	return l.No
}
