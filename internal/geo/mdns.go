package geo

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/grandcat/zeroconf"
)

const (
	// GPSDServiceType is the mDNS service type gpsd advertises
	GPSDServiceType = "_gpsd._tcp"

	// ServiceDomain is the mDNS domain (typically "local.")
	ServiceDomain = "local."

	// DefaultGPSDPort is gpsd's IANA port
	DefaultGPSDPort = 2947

	// DefaultScanTimeout bounds one discovery attempt
	DefaultScanTimeout = 3 * time.Second
)

// Scanner finds a gpsd daemon on the local network over mDNS
type Scanner struct {
	// Timeout is the maximum time to wait for an advertisement
	Timeout time.Duration
}

// NewScanner creates a new mDNS scanner with default settings
func NewScanner() *Scanner {
	return &Scanner{
		Timeout: DefaultScanTimeout,
	}
}

// FindGPSD returns the host:port of the first gpsd daemon that answers
func (s *Scanner) FindGPSD(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	entries := make(chan *zeroconf.ServiceEntry)
	found := make(chan string, 1)

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return "", fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	go func() {
		for entry := range entries {
			if addr := addrFromEntry(entry); addr != "" {
				select {
				case found <- addr:
				default:
				}
				cancel()
				return
			}
		}
	}()

	if err := resolver.Browse(ctx, GPSDServiceType, ServiceDomain, entries); err != nil {
		return "", fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	select {
	case addr := <-found:
		return addr, nil
	case <-ctx.Done():
		// found may have been filled just before cancel()
		select {
		case addr := <-found:
			return addr, nil
		default:
		}
		return "", fmt.Errorf("no %s service found within %s", GPSDServiceType, s.Timeout)
	}
}

// addrFromEntry returns a dialable address, preferring IPv4.
// Returns "" if the entry carries no address.
func addrFromEntry(entry *zeroconf.ServiceEntry) string {
	var ip string
	for _, addr := range entry.AddrIPv4 {
		ip = addr.String()
		break
	}

	if ip == "" && len(entry.AddrIPv6) > 0 {
		ip = entry.AddrIPv6[0].String()
	}

	if ip == "" {
		return ""
	}

	port := entry.Port
	if port == 0 {
		port = DefaultGPSDPort
	}

	return net.JoinHostPort(ip, strconv.Itoa(port))
}
