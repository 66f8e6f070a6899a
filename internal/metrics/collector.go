// Package metrics exports WiFi facts as Prometheus metrics.
package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/HerbHall/wifilens/internal/version"
	"github.com/HerbHall/wifilens/pkg/models"
)

// Collector holds the gauges updated from each extraction.
type Collector struct {
	gatherer prometheus.Gatherer

	RSSI        prometheus.Gauge
	LinkSpeed   prometheus.Gauge
	Frequency   prometheus.Gauge
	Channel     prometheus.Gauge
	LeaseTime   prometheus.Gauge
	Hidden      prometheus.Gauge
	NetworkInfo *prometheus.GaugeVec
	Extractions *prometheus.CounterVec
	BuildInfo   *prometheus.GaugeVec
}

// NewCollector registers the wifilens metrics against reg, defaulting to the
// global Prometheus registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	c := &Collector{
		gatherer: gatherer,
		RSSI: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wifilens_rssi_dbm",
			Help: "Received signal strength of the current connection in dBm.",
		}),
		LinkSpeed: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wifilens_link_speed_mbps",
			Help: "Link speed of the current connection in Mbps.",
		}),
		Frequency: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wifilens_frequency_mhz",
			Help: "Center frequency of the current connection in MHz.",
		}),
		Channel: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wifilens_channel",
			Help: "802.11 channel of the current connection, -1 when unknown.",
		}),
		LeaseTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wifilens_dhcp_lease_seconds",
			Help: "DHCP lease duration of the current connection.",
		}),
		Hidden: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wifilens_hidden",
			Help: "1 when the connected access point hides its SSID.",
		}),
		NetworkInfo: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "wifilens_network_info",
			Help: "Identity of the current connection; always 1.",
		}, []string{"ssid", "bssid", "encryption"}),
		Extractions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wifilens_extractions_total",
			Help: "Number of fact extractions, labeled by result.",
		}, []string{"result"}),
		BuildInfo: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "wifilens_build_info",
			Help: "Build information of the running binary; always 1.",
		}, []string{"version", "git_commit", "go_version"}),
	}

	for name, col := range map[string]prometheus.Collector{
		"wifilens_rssi_dbm":           c.RSSI,
		"wifilens_link_speed_mbps":    c.LinkSpeed,
		"wifilens_frequency_mhz":      c.Frequency,
		"wifilens_channel":            c.Channel,
		"wifilens_dhcp_lease_seconds": c.LeaseTime,
		"wifilens_hidden":             c.Hidden,
		"wifilens_network_info":       c.NetworkInfo,
		"wifilens_extractions_total":  c.Extractions,
		"wifilens_build_info":         c.BuildInfo,
	} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("register %s: %w", name, err)
		}
	}

	v := version.Map()
	c.BuildInfo.WithLabelValues(v["version"], v["git_commit"], v["go_version"]).Set(1)
	return c, nil
}

// Observe records a successful extraction.
func (c *Collector) Observe(f models.NetworkFacts) {
	if c == nil {
		return
	}
	c.RSSI.Set(float64(f.RSSIDBm))
	c.LinkSpeed.Set(float64(f.LinkSpeedMbps))
	c.Frequency.Set(float64(f.FrequencyMHz))
	c.Channel.Set(float64(f.Channel))
	c.LeaseTime.Set(float64(f.DHCPLeaseSeconds))
	if f.Hidden {
		c.Hidden.Set(1)
	} else {
		c.Hidden.Set(0)
	}
	// Only the current network is reported.
	c.NetworkInfo.Reset()
	c.NetworkInfo.WithLabelValues(f.SSID, f.BSSID, string(f.Encryption)).Set(1)
	c.Extractions.WithLabelValues("ok").Inc()
}

// Failed records an extraction that could not read the source.
func (c *Collector) Failed() {
	if c == nil {
		return
	}
	c.Extractions.WithLabelValues("error").Inc()
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
