package facts

import (
	"net/netip"
	"strconv"
)

// DecodeIPv4 renders a packed IPv4 address as a dotted quad. The first
// octet is taken from the least-significant byte, matching how the
// platform hands DHCP addresses over.
func DecodeIPv4(v uint32) string {
	b := make([]byte, 0, len("255.255.255.255"))
	for i := 0; i < 4; i++ {
		if i > 0 {
			b = append(b, '.')
		}
		b = strconv.AppendUint(b, uint64((v>>(8*i))&0xFF), 10)
	}
	return string(b)
}

// EncodeIPv4 packs an IPv4 address into the layout DecodeIPv4 expects.
// Non-IPv4 addresses encode as zero.
func EncodeIPv4(addr netip.Addr) uint32 {
	addr = addr.Unmap()
	if !addr.Is4() {
		return 0
	}
	a := addr.As4()
	return uint32(a[0]) | uint32(a[1])<<8 | uint32(a[2])<<16 | uint32(a[3])<<24
}
