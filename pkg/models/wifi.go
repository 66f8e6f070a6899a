package models

// SSIDUnknown is the SSID reported by the platform when the connected
// network's name is not available to the caller.
const SSIDUnknown = "<unknown ssid>"

// NetworkIDNone marks a connection that is not associated with a known
// (configured) network.
const NetworkIDNone = -1

// ChannelUnknown is returned for frequencies outside the supported bands.
const ChannelUnknown = -1

// Encryption classifies the security of the current connection.
type Encryption string

const (
	EncryptionOpen    Encryption = "open"
	EncryptionSecured Encryption = "secured"
)

// ConnectionInfo is the raw state of the current WiFi association as
// reported by the platform.
type ConnectionInfo struct {
	SSID      string `json:"ssid" yaml:"ssid"`
	BSSID     string `json:"bssid" yaml:"bssid"`
	LinkSpeed int    `json:"link_speed" yaml:"link_speed"` // Mbps
	Frequency int    `json:"frequency" yaml:"frequency"`   // MHz
	RSSI      int    `json:"rssi" yaml:"rssi"`             // dBm
	NetworkID int    `json:"network_id" yaml:"network_id"`
}

// DHCPInfo holds the DHCP lease of the current connection. Addresses are
// packed in platform-native order: the least-significant byte is the first
// octet.
type DHCPInfo struct {
	IPAddress     uint32 `json:"ip_address"`
	Gateway       uint32 `json:"gateway"`
	Netmask       uint32 `json:"netmask"`
	DNS1          uint32 `json:"dns1"`
	DNS2          uint32 `json:"dns2"`
	LeaseDuration int    `json:"lease_duration"` // seconds
}

// ScanEntry is a single access point seen in the most recent scan.
type ScanEntry struct {
	BSSID string `json:"bssid" yaml:"bssid"`
	SSID  string `json:"ssid" yaml:"ssid"`
}

// NetworkFacts is the formatted, validated view of the current connection.
type NetworkFacts struct {
	SSID             string     `json:"ssid"`
	BSSID            string     `json:"bssid"`
	LinkSpeedMbps    int        `json:"link_speed_mbps"`
	FrequencyGHz     int        `json:"frequency_ghz"`
	FrequencyMHz     int        `json:"frequency_mhz"`
	Channel          int        `json:"channel"`
	RSSIDBm          int        `json:"rssi_dbm"`
	Encryption       Encryption `json:"encryption"`
	IPAddress        string     `json:"ip_address"`
	Gateway          string     `json:"gateway"`
	Netmask          string     `json:"netmask"`
	DNS1             string     `json:"dns1"`
	DNS2             string     `json:"dns2"`
	DHCPLeaseSeconds int        `json:"dhcp_lease_seconds"`
	ExternalIP       string     `json:"external_ip"`
	Hidden           bool       `json:"hidden"`
}
