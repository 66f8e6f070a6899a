package facts

import (
	"net/netip"

	"github.com/HerbHall/wifilens/pkg/models"
)

// InterfaceLister enumerates the host's network interfaces.
type InterfaceLister interface {
	Interfaces() ([]models.NetworkInterface, error)
}

// AddressResult is the outcome of ProbeExternalAddress: either an address
// or the explicit unknown outcome.
type AddressResult struct {
	Addr  netip.Addr
	Known bool
	// Err is set when enumeration itself failed. It is informational only.
	Err error
}

// Or returns the address as a string, or fallback when it is unknown.
func (r AddressResult) Or(fallback string) string {
	if !r.Known {
		return fallback
	}
	return r.Addr.String()
}

// ProbeExternalAddress returns the first non-loopback address found on the
// host's interfaces.
//
// Despite the name, no external service is queried: the result is a local
// interface address, which may be private. Callers that need the public
// address must resolve it elsewhere.
func ProbeExternalAddress(lister InterfaceLister) AddressResult {
	if lister == nil {
		return AddressResult{}
	}
	ifaces, err := lister.Interfaces()
	if err != nil {
		return AddressResult{Err: err}
	}
	for _, ifi := range ifaces {
		if ifi.IsLoopback {
			continue
		}
		for _, s := range ifi.Addresses {
			addr, err := parseAddr(s)
			if err != nil || addr.IsLoopback() || addr.IsUnspecified() {
				continue
			}
			return AddressResult{Addr: addr, Known: true}
		}
	}
	return AddressResult{}
}

// parseAddr accepts both bare addresses and CIDR notation.
func parseAddr(s string) (netip.Addr, error) {
	if p, err := netip.ParsePrefix(s); err == nil {
		return p.Addr(), nil
	}
	return netip.ParseAddr(s)
}
