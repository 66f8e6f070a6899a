// Package facts derives validated, human-readable WiFi connection facts
// from the raw values a platform reports.
package facts

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/HerbHall/wifilens/pkg/models"
)

// Source supplies raw WiFi state from the platform.
type Source interface {
	InterfaceLister
	ConnectionInfo(ctx context.Context) (models.ConnectionInfo, error)
	DHCPInfo(ctx context.Context) (models.DHCPInfo, error)
	ScanResults(ctx context.Context) ([]models.ScanEntry, error)
}

// Pinner is implemented by sources whose state can change between calls.
// Pin returns a view that stays fixed for one collection.
type Pinner interface {
	Pin(ctx context.Context) (Source, error)
}

// Input is everything Extract needs, obtained ahead of time.
type Input struct {
	Connection models.ConnectionInfo
	DHCP       models.DHCPInfo
	Scan       []models.ScanEntry
	Interfaces InterfaceLister
}

// Extract builds the facts for one connection. It never fails: values it
// cannot interpret degrade to the unknown labels in l.
func Extract(in Input, l Labels) models.NetworkFacts {
	conn := in.Connection
	return models.NetworkFacts{
		SSID:             NormalizeSSID(conn.SSID, l.UnknownSSID),
		BSSID:            conn.BSSID,
		LinkSpeedMbps:    conn.LinkSpeed,
		FrequencyGHz:     conn.Frequency / 1000,
		FrequencyMHz:     conn.Frequency,
		Channel:          ChannelFromFrequency(conn.Frequency),
		RSSIDBm:          conn.RSSI,
		Encryption:       ClassifyEncryption(conn.NetworkID),
		IPAddress:        DecodeIPv4(in.DHCP.IPAddress),
		Gateway:          DecodeIPv4(in.DHCP.Gateway),
		Netmask:          DecodeIPv4(in.DHCP.Netmask),
		DNS1:             DecodeIPv4(in.DHCP.DNS1),
		DNS2:             DecodeIPv4(in.DHCP.DNS2),
		DHCPLeaseSeconds: in.DHCP.LeaseDuration,
		ExternalIP:       ProbeExternalAddress(in.Interfaces).Or(l.UnknownAddress),
		Hidden:           IsHidden(conn.BSSID, in.Scan),
	}
}

// Extractor reads a Source and turns its state into facts.
type Extractor struct {
	source Source
	logger *zap.Logger
}

// NewExtractor creates an Extractor over src.
func NewExtractor(src Source, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{source: src, logger: logger}
}

// Collect reads the current connection from the source and extracts its
// facts. Only connection and DHCP read failures are returned; a failed scan
// is treated as an empty one. Sources implementing Pinner are pinned first.
func (e *Extractor) Collect(ctx context.Context, l Labels) (models.NetworkFacts, error) {
	src := e.source
	if p, ok := src.(Pinner); ok {
		pinned, err := p.Pin(ctx)
		if err != nil {
			return models.NetworkFacts{}, fmt.Errorf("pin source: %w", err)
		}
		src = pinned
	}

	conn, err := src.ConnectionInfo(ctx)
	if err != nil {
		return models.NetworkFacts{}, fmt.Errorf("read connection info: %w", err)
	}
	dhcp, err := src.DHCPInfo(ctx)
	if err != nil {
		return models.NetworkFacts{}, fmt.Errorf("read dhcp info: %w", err)
	}
	scan, err := src.ScanResults(ctx)
	if err != nil {
		e.logger.Warn("scan results unavailable, treating network as hidden",
			zap.String("bssid", conn.BSSID),
			zap.Error(err),
		)
		scan = nil
	}

	ifaces, err := src.Interfaces()
	if err != nil {
		e.logger.Debug("interface enumeration failed", zap.Error(err))
	}

	f := Extract(Input{
		Connection: conn,
		DHCP:       dhcp,
		Scan:       scan,
		Interfaces: listed{ifaces: ifaces, err: err},
	}, l)

	e.logger.Debug("extracted wifi facts",
		zap.String("ssid", f.SSID),
		zap.String("bssid", f.BSSID),
		zap.Int("channel", f.Channel),
		zap.Bool("hidden", f.Hidden),
	)
	return f, nil
}

// listed replays a single enumeration so the probe and the logs agree.
type listed struct {
	ifaces []models.NetworkInterface
	err    error
}

func (l listed) Interfaces() ([]models.NetworkInterface, error) { return l.ifaces, l.err }
