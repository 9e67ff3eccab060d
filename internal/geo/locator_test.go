package geo

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/grandcat/zeroconf"

	"github.com/muurk/ecotrip/internal/config"
)

func TestNewLocator(t *testing.T) {
	tests := []struct {
		name          string
		settings      config.LocationSettings
		wantName      string
		wantAvailable bool
		wantErr       bool
	}{
		{"default", config.LocationSettings{}, config.ProviderNone, false, false},
		{"none", config.LocationSettings{Provider: config.ProviderNone}, config.ProviderNone, false, false},
		{"static", config.LocationSettings{Provider: config.ProviderStatic, Latitude: 1, Longitude: 2}, config.ProviderStatic, true, false},
		{"gpsd with addr", config.LocationSettings{Provider: config.ProviderGPSD, GPSDAddr: "127.0.0.1:2947"}, config.ProviderGPSD, true, false},
		{"gpsd discovered", config.LocationSettings{Provider: config.ProviderGPSD}, config.ProviderGPSD, true, false},
		{"unknown", config.LocationSettings{Provider: "carrier-pigeon"}, "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locator, err := NewLocator(tt.settings)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewLocator() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if locator.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", locator.Name(), tt.wantName)
			}
			if locator.Available() != tt.wantAvailable {
				t.Errorf("Available() = %v, want %v", locator.Available(), tt.wantAvailable)
			}
		})
	}
}

func TestStatic_CurrentPosition(t *testing.T) {
	s := NewStatic(9.748, -83.753)
	pos, err := s.CurrentPosition(context.Background())
	if err != nil {
		t.Fatalf("CurrentPosition() error = %v", err)
	}
	if pos != (Position{Latitude: 9.748, Longitude: -83.753}) {
		t.Errorf("pos = %+v", pos)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.CurrentPosition(ctx); err == nil {
		t.Error("cancelled context should fail")
	}
}

func TestNewGPSD_DefaultTimeout(t *testing.T) {
	if g := NewGPSD("x:1", 0); g.Timeout != config.DefaultGPSDTimeout {
		t.Errorf("Timeout = %v, want %v", g.Timeout, config.DefaultGPSDTimeout)
	}
	if g := NewGPSD("x:1", time.Second); g.Discover != nil {
		t.Error("explicit addr should not enable discovery")
	}
}

func TestAddrFromEntry(t *testing.T) {
	tests := []struct {
		name  string
		entry *zeroconf.ServiceEntry
		want  string
	}{
		{
			name: "IPv4 with port",
			entry: &zeroconf.ServiceEntry{
				HostName: "pi.local.",
				Port:     2947,
				AddrIPv4: []net.IP{net.ParseIP("192.168.1.20")},
			},
			want: "192.168.1.20:2947",
		},
		{
			name: "default port",
			entry: &zeroconf.ServiceEntry{
				AddrIPv4: []net.IP{net.ParseIP("10.0.0.5")},
			},
			want: "10.0.0.5:2947",
		},
		{
			name: "IPv6 fallback",
			entry: &zeroconf.ServiceEntry{
				Port:     3000,
				AddrIPv6: []net.IP{net.ParseIP("fe80::1")},
			},
			want: "[fe80::1]:3000",
		},
		{
			name:  "no address",
			entry: &zeroconf.ServiceEntry{HostName: "ghost.local."},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := addrFromEntry(tt.entry); got != tt.want {
				t.Errorf("addrFromEntry() = %q, want %q", got, tt.want)
			}
		})
	}
}
