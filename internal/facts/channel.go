package facts

import "github.com/HerbHall/wifilens/pkg/models"

// 802.11 band edges in MHz, inclusive.
const (
	band24Low  = 2412
	band24High = 2472
	band24Base = 2407

	band5Low  = 5180
	band5High = 5825
	band5Base = 5000
)

// ChannelFromFrequency converts a center frequency in MHz to an 802.11
// channel number. Frequencies outside the 2.4 GHz (channels 1-13) and
// 5 GHz (channels 36-165) ranges return models.ChannelUnknown.
func ChannelFromFrequency(freqMHz int) int {
	switch {
	case freqMHz >= band24Low && freqMHz <= band24High:
		return (freqMHz - band24Base) / 5
	case freqMHz >= band5Low && freqMHz <= band5High:
		return (freqMHz - band5Base) / 5
	}
	return models.ChannelUnknown
}
