//go:build !linux

package platform

import (
	"context"

	"github.com/HerbHall/wifilens/pkg/models"
)

// ConnectionInfo always returns ErrUnsupported on this platform.
func (s *NL80211Source) ConnectionInfo(_ context.Context) (models.ConnectionInfo, error) {
	return models.ConnectionInfo{}, ErrUnsupported
}

// DHCPInfo always returns ErrUnsupported on this platform.
func (s *NL80211Source) DHCPInfo(_ context.Context) (models.DHCPInfo, error) {
	return models.DHCPInfo{}, ErrUnsupported
}

// ScanResults always returns ErrUnsupported on this platform.
func (s *NL80211Source) ScanResults(_ context.Context) ([]models.ScanEntry, error) {
	return nil, ErrUnsupported
}
