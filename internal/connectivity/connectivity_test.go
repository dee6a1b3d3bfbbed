package connectivity

import (
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drivenext/drivenext/internal/logging"
)

func fakeInterfaces(ifaces []net.Interface, addrs map[string][]net.Addr, listErr error) *Interfaces {
	return &Interfaces{
		logger: logging.Discard(),
		interfaces: func() ([]net.Interface, error) {
			return ifaces, listErr
		},
		addrs: func(iface *net.Interface) ([]net.Addr, error) {
			a, ok := addrs[iface.Name]
			if !ok {
				return nil, errors.New("no such interface")
			}
			return a, nil
		},
	}
}

func ipNet(s string) *net.IPNet {
	ip, n, _ := net.ParseCIDR(s)
	n.IP = ip
	return n
}

func TestInterfaces(t *testing.T) {
	up := net.FlagUp | net.FlagRunning

	tests := []struct {
		name    string
		ifaces  []net.Interface
		addrs   map[string][]net.Addr
		listErr error
		want    bool
	}{
		{
			name: "wifi with address",
			ifaces: []net.Interface{
				{Name: "lo", Flags: up | net.FlagLoopback},
				{Name: "wlan0", Flags: up},
			},
			addrs: map[string][]net.Addr{
				"lo":    {ipNet("127.0.0.1/8")},
				"wlan0": {ipNet("192.168.1.20/24")},
			},
			want: true,
		},
		{
			name:   "loopback only",
			ifaces: []net.Interface{{Name: "lo", Flags: up | net.FlagLoopback}},
			addrs:  map[string][]net.Addr{"lo": {ipNet("127.0.0.1/8")}},
			want:   false,
		},
		{
			name:   "interface down",
			ifaces: []net.Interface{{Name: "eth0", Flags: net.FlagUp}},
			addrs:  map[string][]net.Addr{"eth0": {ipNet("10.0.0.2/8")}},
			want:   false,
		},
		{
			name:   "link-local address only",
			ifaces: []net.Interface{{Name: "eth0", Flags: up}},
			addrs:  map[string][]net.Addr{"eth0": {ipNet("fe80::1/64")}},
			want:   false,
		},
		{
			name:   "address lookup fails",
			ifaces: []net.Interface{{Name: "rmnet0", Flags: up}},
			addrs:  map[string][]net.Addr{},
			want:   false,
		},
		{
			name:   "cellular ipv6",
			ifaces: []net.Interface{{Name: "rmnet0", Flags: up}},
			addrs:  map[string][]net.Addr{"rmnet0": {&net.IPAddr{IP: net.ParseIP("2001:db8::5")}}},
			want:   true,
		},
		{
			name:    "listing fails closed",
			listErr: errors.New("permission denied"),
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := fakeInterfaces(tt.ifaces, tt.addrs, tt.listErr)
			assert.Equal(t, tt.want, c.IsAvailable())
		})
	}
}

func TestToggle(t *testing.T) {
	toggle := NewToggle(false)
	assert.False(t, toggle.IsAvailable())

	toggle.Set(true)
	assert.True(t, toggle.IsAvailable())
}

func TestFailClosed(t *testing.T) {
	panicking := CheckerFunc(func() bool { panic("capability query crashed") })

	checker := FailClosed(panicking, logging.Discard())
	assert.False(t, checker.IsAvailable())

	assert.True(t, FailClosed(NewToggle(true), logging.Discard()).IsAvailable())
}
