package facts

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/HerbHall/wifilens/pkg/models"
)

// RenderText formats facts as a multi-line report, one fact per line.
func RenderText(f models.NetworkFacts, l Labels) string {
	channel := strconv.Itoa(f.Channel)
	if f.Channel == models.ChannelUnknown {
		channel = l.UnknownChannel
	}

	var b strings.Builder
	line := func(label, format string, args ...any) {
		b.WriteString(label)
		b.WriteString(": ")
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}

	line(l.SSID, "%s", f.SSID)
	line(l.BSSID, "%s", f.BSSID)
	line(l.LinkSpeed, "%d Mbps", f.LinkSpeedMbps)
	line(l.Frequency, "%dGHz", f.FrequencyGHz)
	line(l.Channel, "%s", channel)
	line(l.RSSI, "%d dBm", f.RSSIDBm)
	line(l.Encryption, "%s", l.EncryptionLabel(f.Encryption))
	line(l.IPAddress, "%s", f.IPAddress)
	line(l.Gateway, "%s", f.Gateway)
	line(l.Netmask, "%s", f.Netmask)
	line(l.DNS1, "%s", f.DNS1)
	line(l.DNS2, "%s", f.DNS2)
	line(l.DHCPLease, "%d s", f.DHCPLeaseSeconds)
	line(l.ExternalIP, "%s", f.ExternalIP)
	line(l.Hidden, "%s", l.YesNo(f.Hidden))

	return b.String()
}
