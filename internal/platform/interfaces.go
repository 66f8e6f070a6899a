package platform

import (
	"fmt"
	"net"

	"github.com/HerbHall/wifilens/pkg/models"
)

// HostInterfaces enumerates the interfaces of the running host.
type HostInterfaces struct{}

// Interfaces lists every interface with its addresses (without prefix
// length). Interfaces whose addresses cannot be read are still returned.
func (HostInterfaces) Interfaces() ([]models.NetworkInterface, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("list interfaces: %w", err)
	}

	result := make([]models.NetworkInterface, 0, len(ifaces))
	for i := range ifaces {
		ifi := &ifaces[i]
		ni := models.NetworkInterface{
			Name:       ifi.Name,
			Index:      ifi.Index,
			MTU:        ifi.MTU,
			MACAddress: ifi.HardwareAddr.String(),
			IsUp:       ifi.Flags&net.FlagUp != 0,
			IsLoopback: ifi.Flags&net.FlagLoopback != 0,
		}
		if addrs, err := ifi.Addrs(); err == nil {
			for _, a := range addrs {
				if ip := addrIP(a); ip != nil {
					ni.Addresses = append(ni.Addresses, ip.String())
				}
			}
		}
		result = append(result, ni)
	}
	return result, nil
}

func addrIP(a net.Addr) net.IP {
	switch v := a.(type) {
	case *net.IPNet:
		return v.IP
	case *net.IPAddr:
		return v.IP
	}
	return nil
}
