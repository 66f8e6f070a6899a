package platform

import "testing"

func TestHostInterfaces(t *testing.T) {
	ifaces, err := HostInterfaces{}.Interfaces()
	if err != nil {
		t.Fatalf("Interfaces: %v", err)
	}

	// Containers may expose nothing but lo.
	if len(ifaces) == 0 {
		t.Log("No interfaces found (may be expected in some environments)")
		return
	}

	for i := range ifaces {
		ifi := &ifaces[i]
		if ifi.Name == "" {
			t.Errorf("Interface %d has empty name", i)
		}
		if ifi.MACAddress != "" && len(ifi.MACAddress) != 17 {
			t.Logf("Interface %q has non-Ethernet MAC %q", ifi.Name, ifi.MACAddress)
		}
		for _, a := range ifi.Addresses {
			if a == "" {
				t.Errorf("Interface %q has empty address", ifi.Name)
			}
		}
	}
}
