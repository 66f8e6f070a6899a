package facts

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/HerbHall/wifilens/internal/testutil"
	"github.com/HerbHall/wifilens/pkg/models"
)

func TestExtract_UnknownHiddenNetwork(t *testing.T) {
	in := Input{
		Connection: models.ConnectionInfo{
			SSID:      models.SSIDUnknown,
			BSSID:     "AA:BB:CC:DD:EE:FF",
			Frequency: 2437,
			RSSI:      -55,
			NetworkID: 5,
		},
		DHCP: models.DHCPInfo{
			IPAddress:     0x0101A8C0,
			LeaseDuration: 7200,
		},
		Scan: []models.ScanEntry{{BSSID: "AA:BB:CC:DD:EE:FF", SSID: ""}},
	}

	f := Extract(in, Spanish)

	assert.Equal(t, "Desconocido", f.SSID)
	assert.Equal(t, 6, f.Channel)
	assert.Equal(t, 2, f.FrequencyGHz)
	assert.Equal(t, 2437, f.FrequencyMHz)
	assert.Equal(t, -55, f.RSSIDBm)
	assert.Equal(t, models.EncryptionSecured, f.Encryption)
	assert.True(t, f.Hidden)
	assert.Equal(t, 7200, f.DHCPLeaseSeconds)
	assert.Equal(t, "192.168.1.1", f.IPAddress)
	assert.Equal(t, "0.0.0.0", f.Gateway)
	assert.Equal(t, "Desconocida", f.ExternalIP)
}

func TestExtract_FullConnection(t *testing.T) {
	in := Input{
		Connection: testutil.NewConnection(testutil.WithFrequency(5180)),
		DHCP:       testutil.NewDHCP(),
		Scan:       []models.ScanEntry{{BSSID: "AA:BB:CC:DD:EE:FF", SSID: "home"}},
		Interfaces: staticLister{ifaces: []models.NetworkInterface{
			testutil.LoopbackInterface(),
			testutil.WLANInterface("192.168.1.1/24"),
		}},
	}

	f := Extract(in, English)

	assert.Equal(t, models.NetworkFacts{
		SSID:             "home",
		BSSID:            "AA:BB:CC:DD:EE:FF",
		LinkSpeedMbps:    72,
		FrequencyGHz:     5,
		FrequencyMHz:     5180,
		Channel:          36,
		RSSIDBm:          -55,
		Encryption:       models.EncryptionSecured,
		IPAddress:        "192.168.1.1",
		Gateway:          "192.168.1.254",
		Netmask:          "255.255.255.0",
		DNS1:             "8.8.8.8",
		DNS2:             "1.1.1.1",
		DHCPLeaseSeconds: 7200,
		ExternalIP:       "192.168.1.1",
		Hidden:           false,
	}, f)
}

func TestExtract_OpenNetworkUnknownChannel(t *testing.T) {
	in := Input{
		Connection: testutil.NewConnection(
			testutil.WithNetworkID(models.NetworkIDNone),
			testutil.WithFrequency(4000),
		),
	}
	f := Extract(in, English)
	assert.Equal(t, models.EncryptionOpen, f.Encryption)
	assert.Equal(t, models.ChannelUnknown, f.Channel)
	assert.Equal(t, "Unknown", f.ExternalIP)
}

func TestExtractor_Collect(t *testing.T) {
	src := &testutil.FakeSource{
		Connection: testutil.NewConnection(),
		DHCP:       testutil.NewDHCP(),
		Scan:       []models.ScanEntry{{BSSID: "AA:BB:CC:DD:EE:FF", SSID: "home"}},
		Ifaces:     []models.NetworkInterface{testutil.WLANInterface("192.168.1.1/24")},
	}
	e := NewExtractor(src, testutil.Logger())

	f, err := e.Collect(context.Background(), Spanish)
	require.NoError(t, err)
	assert.Equal(t, "home", f.SSID)
	assert.False(t, f.Hidden)
	assert.Equal(t, "192.168.1.1", f.ExternalIP)
	assert.Equal(t, 1, src.Calls())
}

func TestExtractor_CollectScanFailureIsHidden(t *testing.T) {
	src := &testutil.FakeSource{
		Connection: testutil.NewConnection(),
		DHCP:       testutil.NewDHCP(),
		Scan:       []models.ScanEntry{{BSSID: "AA:BB:CC:DD:EE:FF", SSID: "home"}},
		ScanErr:    errors.New("scan busy"),
	}
	f, err := NewExtractor(src, zap.NewNop()).Collect(context.Background(), Spanish)
	require.NoError(t, err)
	assert.True(t, f.Hidden)
}

func TestExtractor_CollectInterfaceFailureNotFatal(t *testing.T) {
	src := &testutil.FakeSource{
		Connection: testutil.NewConnection(),
		DHCP:       testutil.NewDHCP(),
		IfacesErr:  errors.New("netlink: permission denied"),
	}
	f, err := NewExtractor(src, nil).Collect(context.Background(), Spanish)
	require.NoError(t, err)
	assert.Equal(t, Spanish.UnknownAddress, f.ExternalIP)
}

func TestExtractor_CollectSourceErrors(t *testing.T) {
	boom := errors.New("boom")

	t.Run("connection", func(t *testing.T) {
		src := &testutil.FakeSource{ConnectionErr: boom}
		_, err := NewExtractor(src, zap.NewNop()).Collect(context.Background(), Spanish)
		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "connection info")
	})

	t.Run("dhcp", func(t *testing.T) {
		src := &testutil.FakeSource{Connection: testutil.NewConnection(), DHCPErr: boom}
		_, err := NewExtractor(src, zap.NewNop()).Collect(context.Background(), Spanish)
		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "dhcp info")
	})
}

type pinningSource struct {
	*testutil.FakeSource
	pinned *testutil.FakeSource
	err    error
}

func (p pinningSource) Pin(context.Context) (Source, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.pinned, nil
}

func TestExtractor_CollectReadsPinnedView(t *testing.T) {
	live := &testutil.FakeSource{Connection: testutil.NewConnection(testutil.WithSSID(`"live"`))}
	view := &testutil.FakeSource{
		Connection: testutil.NewConnection(testutil.WithSSID(`"pinned"`)),
		DHCP:       testutil.NewDHCP(),
		Scan:       []models.ScanEntry{{BSSID: "AA:BB:CC:DD:EE:FF", SSID: "pinned"}},
	}

	f, err := NewExtractor(pinningSource{FakeSource: live, pinned: view}, zap.NewNop()).
		Collect(context.Background(), Spanish)
	require.NoError(t, err)
	assert.Equal(t, "pinned", f.SSID)
	assert.False(t, f.Hidden)
	assert.Equal(t, 0, live.Calls())
	assert.Equal(t, 1, view.Calls())
}

func TestExtractor_CollectPinError(t *testing.T) {
	boom := errors.New("snapshot unreadable")
	src := pinningSource{FakeSource: &testutil.FakeSource{}, err: boom}

	_, err := NewExtractor(src, zap.NewNop()).Collect(context.Background(), Spanish)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, src.Calls())
}
