package models

// NetworkInterface represents a network interface on the host.
type NetworkInterface struct {
	Name       string   `json:"name" yaml:"name"`
	Index      int      `json:"index" yaml:"index"`
	MTU        int      `json:"mtu" yaml:"mtu"`
	MACAddress string   `json:"mac_address" yaml:"mac_address"`
	Addresses  []string `json:"addresses" yaml:"addresses"`
	IsUp       bool     `json:"is_up" yaml:"is_up"`
	IsLoopback bool     `json:"is_loopback" yaml:"is_loopback"`
}
