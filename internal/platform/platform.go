// Package platform reads WiFi connection state from the host.
package platform

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/HerbHall/wifilens/internal/config"
	"github.com/HerbHall/wifilens/internal/facts"
)

var (
	// ErrPermissionDenied is returned when the host refuses access to the
	// WiFi state, typically for lack of CAP_NET_ADMIN.
	ErrPermissionDenied = errors.New("permission denied reading wifi state")

	// ErrUnsupported is returned by sources that cannot run on this OS.
	ErrUnsupported = errors.New("wifi source not supported on this platform")

	// ErrNoWiFiInterface is returned when no station-mode interface exists.
	ErrNoWiFiInterface = errors.New("no wifi station interface found")
)

// Source names accepted by the "source" configuration key.
const (
	SourceNL80211 = "nl80211"
	SourceFile    = "file"
)

// New builds the source selected by cfg.
func New(cfg config.Config, logger *zap.Logger) (facts.Source, error) {
	switch name := cfg.GetString("source"); name {
	case SourceNL80211, "":
		return NewNL80211Source(NL80211Options{
			Interface:    cfg.GetString("interface"),
			LeaseCommand: cfg.GetString("dhcp.lease_command"),
			ResolvConf:   cfg.GetString("dhcp.resolv_conf"),
			RouteTable:   cfg.GetString("dhcp.route_table"),
		}, logger), nil
	case SourceFile:
		path := cfg.GetString("source_file")
		if path == "" {
			return nil, fmt.Errorf("source %q requires source_file", name)
		}
		return NewFileSource(path, logger), nil
	default:
		return nil, fmt.Errorf("unknown source %q", name)
	}
}
