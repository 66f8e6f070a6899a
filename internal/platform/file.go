package platform

import (
	"context"
	"fmt"
	"net/netip"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/HerbHall/wifilens/internal/facts"
	"github.com/HerbHall/wifilens/pkg/models"
)

// Snapshot is the on-disk form of a captured WiFi state. DHCP addresses
// are written as dotted quads.
type Snapshot struct {
	Connection models.ConnectionInfo     `yaml:"connection"`
	DHCP       SnapshotDHCP              `yaml:"dhcp"`
	Scan       []models.ScanEntry        `yaml:"scan"`
	Interfaces []models.NetworkInterface `yaml:"interfaces,omitempty"`
}

// SnapshotDHCP is the human-readable DHCP section of a Snapshot.
type SnapshotDHCP struct {
	IPAddress     string `yaml:"ip_address"`
	Gateway       string `yaml:"gateway"`
	Netmask       string `yaml:"netmask"`
	DNS1          string `yaml:"dns1"`
	DNS2          string `yaml:"dns2"`
	LeaseDuration int    `yaml:"lease_duration"`
}

// FileSource serves WiFi state from a YAML snapshot. The file may be edited
// while a server is running: each collection pins one read of it, and the
// individual methods re-read it on every call. When the snapshot lists no
// interfaces, the host's interfaces are used.
type FileSource struct {
	path   string
	host   HostInterfaces
	logger *zap.Logger
}

// Compile-time interface guards.
var (
	_ facts.Source = (*FileSource)(nil)
	_ facts.Pinner = (*FileSource)(nil)
)

// NewFileSource creates a source backed by the snapshot at path.
func NewFileSource(path string, logger *zap.Logger) *FileSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileSource{path: path, logger: logger}
}

// Pin reads the snapshot once and returns a source serving that read.
func (s *FileSource) Pin(_ context.Context) (facts.Source, error) {
	snap, err := s.load()
	if err != nil {
		return nil, err
	}
	return snapshotView{snap: snap, host: s.host}, nil
}

// ConnectionInfo returns the snapshot's connection section.
func (s *FileSource) ConnectionInfo(ctx context.Context) (models.ConnectionInfo, error) {
	v, err := s.Pin(ctx)
	if err != nil {
		return models.ConnectionInfo{}, err
	}
	return v.ConnectionInfo(ctx)
}

// DHCPInfo returns the snapshot's DHCP section in packed form.
func (s *FileSource) DHCPInfo(ctx context.Context) (models.DHCPInfo, error) {
	v, err := s.Pin(ctx)
	if err != nil {
		return models.DHCPInfo{}, err
	}
	return v.DHCPInfo(ctx)
}

// ScanResults returns the snapshot's scan section.
func (s *FileSource) ScanResults(ctx context.Context) ([]models.ScanEntry, error) {
	v, err := s.Pin(ctx)
	if err != nil {
		return nil, err
	}
	return v.ScanResults(ctx)
}

// Interfaces returns the snapshot's interfaces, or the host's when the
// snapshot has none.
func (s *FileSource) Interfaces() ([]models.NetworkInterface, error) {
	v, err := s.Pin(context.Background())
	if err != nil {
		return nil, err
	}
	return v.Interfaces()
}

// snapshotView serves a single parsed snapshot.
type snapshotView struct {
	snap *Snapshot
	host HostInterfaces
}

func (v snapshotView) ConnectionInfo(context.Context) (models.ConnectionInfo, error) {
	return v.snap.Connection, nil
}

func (v snapshotView) DHCPInfo(context.Context) (models.DHCPInfo, error) {
	return v.snap.DHCP.packed()
}

func (v snapshotView) ScanResults(context.Context) ([]models.ScanEntry, error) {
	return v.snap.Scan, nil
}

func (v snapshotView) Interfaces() ([]models.NetworkInterface, error) {
	if len(v.snap.Interfaces) == 0 {
		return v.host.Interfaces()
	}
	return v.snap.Interfaces, nil
}

func (s *FileSource) load() (*Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, fmt.Errorf("read snapshot %s: %w: %w", s.path, ErrPermissionDenied, err)
		}
		return nil, fmt.Errorf("read snapshot %s: %w", s.path, err)
	}
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", s.path, err)
	}
	s.logger.Debug("loaded wifi snapshot",
		zap.String("path", s.path),
		zap.Int("scan_entries", len(snap.Scan)),
	)
	return &snap, nil
}

func (d SnapshotDHCP) packed() (models.DHCPInfo, error) {
	info := models.DHCPInfo{LeaseDuration: d.LeaseDuration}
	fields := []struct {
		name string
		in   string
		out  *uint32
	}{
		{"ip_address", d.IPAddress, &info.IPAddress},
		{"gateway", d.Gateway, &info.Gateway},
		{"netmask", d.Netmask, &info.Netmask},
		{"dns1", d.DNS1, &info.DNS1},
		{"dns2", d.DNS2, &info.DNS2},
	}
	for _, f := range fields {
		if f.in == "" {
			continue
		}
		addr, err := netip.ParseAddr(f.in)
		if err != nil || !addr.Unmap().Is4() {
			return models.DHCPInfo{}, fmt.Errorf("dhcp.%s: %q is not an IPv4 address", f.name, f.in)
		}
		*f.out = facts.EncodeIPv4(addr)
	}
	return info, nil
}

// WriteSnapshot stores snap at path in the format FileSource reads.
func WriteSnapshot(path string, snap *Snapshot) error {
	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot %s: %w", path, err)
	}
	return nil
}

// Capture reads src once and returns it as a Snapshot.
func Capture(ctx context.Context, src facts.Source) (*Snapshot, error) {
	if p, ok := src.(facts.Pinner); ok {
		pinned, err := p.Pin(ctx)
		if err != nil {
			return nil, fmt.Errorf("pin source: %w", err)
		}
		src = pinned
	}
	conn, err := src.ConnectionInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("read connection info: %w", err)
	}
	dhcp, err := src.DHCPInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("read dhcp info: %w", err)
	}
	scan, err := src.ScanResults(ctx)
	if err != nil {
		return nil, fmt.Errorf("read scan results: %w", err)
	}
	ifaces, err := src.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("list interfaces: %w", err)
	}
	return &Snapshot{
		Connection: conn,
		DHCP: SnapshotDHCP{
			IPAddress:     facts.DecodeIPv4(dhcp.IPAddress),
			Gateway:       facts.DecodeIPv4(dhcp.Gateway),
			Netmask:       facts.DecodeIPv4(dhcp.Netmask),
			DNS1:          facts.DecodeIPv4(dhcp.DNS1),
			DNS2:          facts.DecodeIPv4(dhcp.DNS2),
			LeaseDuration: dhcp.LeaseDuration,
		},
		Scan:       scan,
		Interfaces: ifaces,
	}, nil
}
