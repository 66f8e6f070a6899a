//go:build linux

package platform

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mdlayher/wifi"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"github.com/HerbHall/wifilens/pkg/models"
)

// disconnectedBSSID is what the platform reports when not associated.
const disconnectedBSSID = "02:00:00:00:00:00"

// ConnectionInfo reads the current association and station statistics.
func (s *NL80211Source) ConnectionInfo(_ context.Context) (models.ConnectionInfo, error) {
	var info models.ConnectionInfo
	err := s.withStation(func(c *wifi.Client, ifi *wifi.Interface) error {
		bss, bssErr := c.BSS(ifi)
		var stations []*wifi.StationInfo
		switch {
		case bssErr == nil:
			var err error
			stations, err = c.StationInfo(ifi)
			if err != nil {
				s.logger.Debug("station info unavailable", zap.String("interface", ifi.Name), zap.Error(err))
			}
		case errors.Is(bssErr, os.ErrNotExist):
			s.logger.Debug("wifi interface not associated", zap.String("interface", ifi.Name))
		}

		var err error
		info, err = connectionFromBSS(ifi, bss, bssErr, stations)
		return err
	})
	return info, err
}

// connectionFromBSS maps one nl80211 association to a ConnectionInfo. A
// bssErr of os.ErrNotExist means the station is not associated.
func connectionFromBSS(ifi *wifi.Interface, bss *wifi.BSS, bssErr error, stations []*wifi.StationInfo) (models.ConnectionInfo, error) {
	if bssErr != nil {
		if errors.Is(bssErr, os.ErrNotExist) {
			return models.ConnectionInfo{
				SSID:      models.SSIDUnknown,
				BSSID:     disconnectedBSSID,
				Frequency: ifi.Frequency,
				NetworkID: models.NetworkIDNone,
			}, nil
		}
		return models.ConnectionInfo{}, classify("read bss", bssErr)
	}

	info := models.ConnectionInfo{
		SSID:      bss.SSID,
		Frequency: bss.Frequency,
		NetworkID: ifi.Index,
	}
	if bss.SSID == "" {
		info.SSID = models.SSIDUnknown
	}
	if bss.BSSID != nil {
		info.BSSID = bss.BSSID.String()
	}
	if info.Frequency == 0 {
		info.Frequency = ifi.Frequency
	}
	if len(stations) > 0 && stations[0] != nil {
		info.RSSI = stations[0].Signal
		info.LinkSpeed = stations[0].TransmitBitrate / 1_000_000
	}
	return info, nil
}

// DHCPInfo reads the lease of the station interface.
func (s *NL80211Source) DHCPInfo(ctx context.Context) (models.DHCPInfo, error) {
	name := s.opts.Interface
	if name == "" {
		err := s.withStation(func(_ *wifi.Client, ifi *wifi.Interface) error {
			name = ifi.Name
			return nil
		})
		if err != nil {
			return models.DHCPInfo{}, err
		}
	}
	return s.dhcp.read(ctx, name)
}

// ScanResults triggers a best-effort scan and returns the known BSS list.
func (s *NL80211Source) ScanResults(ctx context.Context) ([]models.ScanEntry, error) {
	var entries []models.ScanEntry
	err := s.withStation(func(c *wifi.Client, ifi *wifi.Interface) error {
		// The kernel may reject the trigger (already scanning, no
		// permission); cached results are still useful.
		if scanErr := c.Scan(ctx, ifi); scanErr != nil && !errors.Is(scanErr, wifi.ErrScanAborted) {
			s.logger.Debug("wifi active scan failed, using cached results", zap.Error(scanErr))
		}

		bssList, err := c.AccessPoints(ifi)
		if err != nil {
			return classify("get access points", err)
		}
		entries = scanEntries(bssList)
		return nil
	})
	return entries, err
}

// scanEntries converts access points to scan entries, dropping those
// without a BSSID.
func scanEntries(bssList []*wifi.BSS) []models.ScanEntry {
	entries := make([]models.ScanEntry, 0, len(bssList))
	for _, bss := range bssList {
		if bss == nil || bss.BSSID == nil {
			continue
		}
		entries = append(entries, models.ScanEntry{
			BSSID: bss.BSSID.String(),
			SSID:  bss.SSID,
		})
	}
	return entries
}

// withStation opens an nl80211 client and calls fn with the station
// interface selected by the options.
func (s *NL80211Source) withStation(fn func(*wifi.Client, *wifi.Interface) error) error {
	c, err := wifi.New()
	if err != nil {
		return classify("open wifi client", err)
	}
	defer c.Close()

	ifaces, err := c.Interfaces()
	if err != nil {
		return classify("enumerate wifi interfaces", err)
	}

	for _, ifi := range ifaces {
		if ifi.Type != wifi.InterfaceTypeStation {
			continue
		}
		if s.opts.Interface != "" && ifi.Name != s.opts.Interface {
			continue
		}
		return fn(c, ifi)
	}
	if s.opts.Interface != "" {
		return fmt.Errorf("%w: %q", ErrNoWiFiInterface, s.opts.Interface)
	}
	return ErrNoWiFiInterface
}

// classify wraps err, mapping permission failures to ErrPermissionDenied.
func classify(op string, err error) error {
	if isPermissionError(err) {
		return fmt.Errorf("%s: %w: %w", op, ErrPermissionDenied, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isPermissionError(err error) bool {
	return errors.Is(err, os.ErrPermission) ||
		errors.Is(err, unix.EPERM) ||
		errors.Is(err, unix.EACCES)
}
