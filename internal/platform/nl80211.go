package platform

import (
	"go.uber.org/zap"

	"github.com/HerbHall/wifilens/internal/facts"
)

// NL80211Options configures an NL80211Source.
type NL80211Options struct {
	// Interface pins the station interface; empty picks the first one.
	Interface string
	// LeaseCommand is the DHCP client binary queried for the lease time
	// (invoked as "<cmd> --dumplease <iface>"). Empty disables the lookup.
	LeaseCommand string
	ResolvConf   string
	RouteTable   string
}

// NL80211Source reads the live WiFi state through the kernel's nl80211
// interface. It is only functional on Linux.
type NL80211Source struct {
	HostInterfaces

	opts   NL80211Options
	dhcp   *dhcpReader
	logger *zap.Logger
}

// Compile-time interface guard.
var _ facts.Source = (*NL80211Source)(nil)

// NewNL80211Source creates an nl80211-backed source.
func NewNL80211Source(opts NL80211Options, logger *zap.Logger) *NL80211Source {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.ResolvConf == "" {
		opts.ResolvConf = "/etc/resolv.conf"
	}
	if opts.RouteTable == "" {
		opts.RouteTable = "/proc/net/route"
	}
	return &NL80211Source{
		opts: opts,
		dhcp: &dhcpReader{
			leaseCommand: opts.LeaseCommand,
			resolvConf:   opts.ResolvConf,
			routeTable:   opts.RouteTable,
			logger:       logger,
		},
		logger: logger,
	}
}
