package platform

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"net/netip"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/miekg/dns"
	"go.uber.org/zap"

	"github.com/HerbHall/wifilens/internal/facts"
	"github.com/HerbHall/wifilens/pkg/models"
)

// dhcpReader assembles a DHCPInfo from the interface address, the kernel
// routing table, resolv.conf and the DHCP client's lease dump.
type dhcpReader struct {
	leaseCommand string
	resolvConf   string
	routeTable   string
	logger       *zap.Logger
}

func (r *dhcpReader) read(ctx context.Context, ifaceName string) (models.DHCPInfo, error) {
	var info models.DHCPInfo

	ifi, err := net.InterfaceByName(ifaceName)
	if err != nil {
		return info, fmt.Errorf("lookup interface %q: %w", ifaceName, err)
	}
	addrs, err := ifi.Addrs()
	if err != nil {
		return info, fmt.Errorf("read addresses of %q: %w", ifaceName, err)
	}
	for _, a := range addrs {
		ipn, ok := a.(*net.IPNet)
		if !ok || ipn.IP.To4() == nil {
			continue
		}
		addr, _ := netip.AddrFromSlice(ipn.IP.To4())
		ones, _ := ipn.Mask.Size()
		info.IPAddress = facts.EncodeIPv4(addr)
		info.Netmask = prefixMask(ones)
		break
	}

	if gw, ok := r.gateway(ifaceName); ok {
		info.Gateway = gw
	}

	servers := r.nameservers()
	if len(servers) > 0 {
		info.DNS1 = servers[0]
	}
	if len(servers) > 1 {
		info.DNS2 = servers[1]
	}

	info.LeaseDuration = r.leaseTime(ctx, ifaceName)
	return info, nil
}

func (r *dhcpReader) gateway(ifaceName string) (uint32, bool) {
	f, err := os.Open(r.routeTable)
	if err != nil {
		r.logger.Debug("route table unavailable", zap.String("path", r.routeTable), zap.Error(err))
		return 0, false
	}
	defer f.Close()
	return parseDefaultGateway(f, ifaceName)
}

func (r *dhcpReader) nameservers() []uint32 {
	cfg, err := dns.ClientConfigFromFile(r.resolvConf)
	if err != nil {
		r.logger.Debug("resolv.conf unavailable", zap.String("path", r.resolvConf), zap.Error(err))
		return nil
	}
	return ipv4Servers(cfg.Servers)
}

func (r *dhcpReader) leaseTime(ctx context.Context, ifaceName string) int {
	if r.leaseCommand == "" {
		return 0
	}
	out, err := exec.CommandContext(ctx, r.leaseCommand, "--dumplease", ifaceName).Output()
	if err != nil {
		r.logger.Debug("dhcp lease dump failed",
			zap.String("command", r.leaseCommand),
			zap.String("interface", ifaceName),
			zap.Error(err),
		)
		return 0
	}
	return parseLeaseTime(string(out))
}

// parseDefaultGateway finds the default route for ifaceName (any interface
// when empty) in /proc/net/route format. The kernel prints the gateway as
// the hex of its in-memory value, which on little-endian hosts is already
// the packed layout DecodeIPv4 expects.
func parseDefaultGateway(r io.Reader, ifaceName string) (uint32, bool) {
	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		if first {
			first = false
			continue // header
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) < 8 {
			continue
		}
		if ifaceName != "" && fields[0] != ifaceName {
			continue
		}
		if fields[1] != "00000000" || fields[7] != "00000000" {
			continue
		}
		gw, err := strconv.ParseUint(fields[2], 16, 32)
		if err != nil || gw == 0 {
			continue
		}
		return uint32(gw), true
	}
	return 0, false
}

// parseLeaseTime extracts dhcp_lease_time from a dhcpcd lease dump.
func parseLeaseTime(dump string) int {
	for _, line := range strings.Split(dump, "\n") {
		key, value, ok := strings.Cut(strings.TrimSpace(line), "=")
		if !ok || key != "dhcp_lease_time" {
			continue
		}
		n, err := strconv.Atoi(strings.Trim(value, `'"`))
		if err != nil || n < 0 {
			return 0
		}
		return n
	}
	return 0
}

// ipv4Servers packs the IPv4 entries of servers, skipping everything else.
func ipv4Servers(servers []string) []uint32 {
	var out []uint32
	for _, s := range servers {
		addr, err := netip.ParseAddr(s)
		if err != nil || !addr.Unmap().Is4() {
			continue
		}
		out = append(out, facts.EncodeIPv4(addr))
	}
	return out
}

// prefixMask returns the packed netmask for a prefix length.
func prefixMask(ones int) uint32 {
	if ones <= 0 {
		return 0
	}
	if ones > 32 {
		ones = 32
	}
	mask := net.CIDRMask(ones, 32)
	addr, _ := netip.AddrFromSlice(mask)
	return facts.EncodeIPv4(addr)
}
