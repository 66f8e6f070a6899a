package testutil

import "github.com/HerbHall/wifilens/pkg/models"

// NewConnection returns a ConnectionInfo for an associated 2.4 GHz network.
// Override individual fields with options as needed.
func NewConnection(opts ...func(*models.ConnectionInfo)) models.ConnectionInfo {
	c := models.ConnectionInfo{
		SSID:      `"home"`,
		BSSID:     "AA:BB:CC:DD:EE:FF",
		LinkSpeed: 72,
		Frequency: 2437,
		RSSI:      -55,
		NetworkID: 5,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithSSID sets the raw SSID.
func WithSSID(ssid string) func(*models.ConnectionInfo) {
	return func(c *models.ConnectionInfo) { c.SSID = ssid }
}

// WithBSSID sets the access point BSSID.
func WithBSSID(bssid string) func(*models.ConnectionInfo) {
	return func(c *models.ConnectionInfo) { c.BSSID = bssid }
}

// WithFrequency sets the frequency in MHz.
func WithFrequency(mhz int) func(*models.ConnectionInfo) {
	return func(c *models.ConnectionInfo) { c.Frequency = mhz }
}

// WithNetworkID sets the network ID.
func WithNetworkID(id int) func(*models.ConnectionInfo) {
	return func(c *models.ConnectionInfo) { c.NetworkID = id }
}

// NewDHCP returns a lease for 192.168.1.1/24 with a 2 hour lease time.
func NewDHCP() models.DHCPInfo {
	return models.DHCPInfo{
		IPAddress:     0x0101A8C0, // 192.168.1.1
		Gateway:       0xFE01A8C0, // 192.168.1.254
		Netmask:       0x00FFFFFF, // 255.255.255.0
		DNS1:          0x08080808, // 8.8.8.8
		DNS2:          0x01010101, // 1.1.1.1
		LeaseDuration: 7200,
	}
}

// WLANInterface returns a non-loopback interface carrying addr.
func WLANInterface(addr string) models.NetworkInterface {
	return models.NetworkInterface{
		Name:       "wlan0",
		Index:      3,
		MTU:        1500,
		MACAddress: "02:00:00:11:22:33",
		Addresses:  []string{addr},
		IsUp:       true,
	}
}

// LoopbackInterface returns the usual lo interface.
func LoopbackInterface() models.NetworkInterface {
	return models.NetworkInterface{
		Name:       "lo",
		Index:      1,
		MTU:        65536,
		Addresses:  []string{"127.0.0.1/8", "::1/128"},
		IsUp:       true,
		IsLoopback: true,
	}
}
