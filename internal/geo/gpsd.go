package geo

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/ecotrip/internal/config"
	"github.com/muurk/ecotrip/internal/logging"
)

// watchCommand asks gpsd to stream JSON reports
const watchCommand = `?WATCH={"enable":true,"json":true};` + "\n"

// mode2D is the lowest gpsd fix mode that carries a position
const mode2D = 2

// report is the subset of a gpsd JSON object the locator reads
type report struct {
	Class string   `json:"class"`
	Mode  int      `json:"mode"`
	Lat   *float64 `json:"lat"`
	Lon   *float64 `json:"lon"`
}

// GPSD reads the position from a gpsd daemon
type GPSD struct {
	// Addr is the daemon's host:port. When empty, Discover is used.
	Addr string

	// Timeout bounds discovery plus the wait for a fix
	Timeout time.Duration

	// Discover finds a daemon when Addr is empty
	Discover func(ctx context.Context) (string, error)
}

// NewGPSD creates a gpsd locator. An empty addr enables mDNS discovery.
func NewGPSD(addr string, timeout time.Duration) *GPSD {
	if timeout <= 0 {
		timeout = config.DefaultGPSDTimeout
	}
	g := &GPSD{Addr: addr, Timeout: timeout}
	if addr == "" {
		g.Discover = NewScanner().FindGPSD
	}
	return g
}

func (g *GPSD) Name() string { return config.ProviderGPSD }

// Available reports whether a daemon address or a discovery method is set
func (g *GPSD) Available() bool {
	return g.Addr != "" || g.Discover != nil
}

// CurrentPosition waits for the first report with a 2D or 3D fix
func (g *GPSD) CurrentPosition(ctx context.Context) (Position, error) {
	ctx, cancel := context.WithTimeout(ctx, g.Timeout)
	defer cancel()

	addr := g.Addr
	if addr == "" {
		if g.Discover == nil {
			return Position{}, fmt.Errorf("no gpsd address configured")
		}
		found, err := g.Discover(ctx)
		if err != nil {
			return Position{}, fmt.Errorf("gpsd discovery failed: %w", err)
		}
		addr = found
		logging.Debug("Discovered gpsd", zap.String("addr", addr))
	}

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return Position{}, fmt.Errorf("failed to connect to gpsd at %s: %w", addr, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	// Unblock the read when the caller cancels
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetDeadline(time.Now())
	})
	defer stop()

	if _, err := conn.Write([]byte(watchCommand)); err != nil {
		return Position{}, fmt.Errorf("failed to send WATCH to gpsd: %w", err)
	}

	return readFix(bufio.NewScanner(conn))
}

// readFix scans gpsd reports until a TPV carries a usable fix
func readFix(scanner *bufio.Scanner) (Position, error) {
	for scanner.Scan() {
		var r report
		if err := json.Unmarshal(scanner.Bytes(), &r); err != nil {
			logging.Debug("Skipping unparsable gpsd line", zap.Error(err))
			continue
		}
		if r.Class != "TPV" {
			continue
		}
		if r.Mode < mode2D || r.Lat == nil || r.Lon == nil {
			logging.Debug("gpsd has no fix yet", zap.Int("mode", r.Mode))
			continue
		}
		return Position{Latitude: *r.Lat, Longitude: *r.Lon}, nil
	}

	if err := scanner.Err(); err != nil {
		return Position{}, fmt.Errorf("reading from gpsd: %w", err)
	}
	return Position{}, fmt.Errorf("gpsd closed the connection before reporting a fix")
}
