package facts

import "github.com/HerbHall/wifilens/pkg/models"

// ClassifyEncryption reports a connection as open when it is not associated
// with a configured network, and as secured otherwise.
//
// This is an approximation: the network ID alone cannot distinguish WEP,
// WPA, WPA2 or WPA3, so every configured network is labelled WPA/WPA2.
func ClassifyEncryption(networkID int) models.Encryption {
	if networkID == models.NetworkIDNone {
		return models.EncryptionOpen
	}
	return models.EncryptionSecured
}
