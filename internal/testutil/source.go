package testutil

import (
	"context"
	"sync"

	"github.com/HerbHall/wifilens/pkg/models"
)

// FakeSource is an in-memory WiFi source. Error fields, when set, are
// returned by the matching method instead of the data.
type FakeSource struct {
	mu sync.Mutex

	Connection models.ConnectionInfo
	DHCP       models.DHCPInfo
	Scan       []models.ScanEntry
	Ifaces     []models.NetworkInterface

	ConnectionErr error
	DHCPErr       error
	ScanErr       error
	IfacesErr     error

	calls int
}

// ConnectionInfo returns the configured connection.
func (s *FakeSource) ConnectionInfo(_ context.Context) (models.ConnectionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.Connection, s.ConnectionErr
}

// DHCPInfo returns the configured lease.
func (s *FakeSource) DHCPInfo(_ context.Context) (models.DHCPInfo, error) {
	return s.DHCP, s.DHCPErr
}

// ScanResults returns the configured scan entries.
func (s *FakeSource) ScanResults(_ context.Context) ([]models.ScanEntry, error) {
	return s.Scan, s.ScanErr
}

// Interfaces returns the configured interfaces.
func (s *FakeSource) Interfaces() ([]models.NetworkInterface, error) {
	return s.Ifaces, s.IfacesErr
}

// Calls returns how many times ConnectionInfo was called.
func (s *FakeSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
