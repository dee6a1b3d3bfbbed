// Package connectivity answers "can the device reach a network right now"
// from local interface state. It never performs a network round trip.
package connectivity

import (
	"log/slog"
	"net"

	"go.uber.org/atomic"
)

// Checker is a fast, side-effect free capability query.
type Checker interface {
	IsAvailable() bool
}

// CheckerFunc adapts a function to Checker.
type CheckerFunc func() bool

func (f CheckerFunc) IsAvailable() bool { return f() }

// Interfaces reports connectivity when at least one non-loopback interface is
// up, running and holds a global unicast address (wifi, cellular or ethernet
// alike).
type Interfaces struct {
	logger     *slog.Logger
	interfaces func() ([]net.Interface, error)
	addrs      func(iface *net.Interface) ([]net.Addr, error)
}

// NewInterfaces returns a Checker backed by the host's network interfaces.
func NewInterfaces(logger *slog.Logger) *Interfaces {
	return &Interfaces{
		logger:     logger,
		interfaces: net.Interfaces,
		addrs:      (*net.Interface).Addrs,
	}
}

func (c *Interfaces) IsAvailable() bool {
	ifaces, err := c.interfaces()
	if err != nil {
		c.logger.Warn("Failed to list network interfaces", "error", err)
		return false
	}

	for i := range ifaces {
		iface := &ifaces[i]
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagRunning == 0 {
			continue
		}

		addrs, err := c.addrs(iface)
		if err != nil {
			c.logger.Debug("Failed to read interface addresses", "interface", iface.Name, "error", err)
			continue
		}
		for _, addr := range addrs {
			if ip := addrIP(addr); ip != nil && ip.IsGlobalUnicast() {
				return true
			}
		}
	}
	return false
}

func addrIP(addr net.Addr) net.IP {
	switch a := addr.(type) {
	case *net.IPNet:
		return a.IP
	case *net.IPAddr:
		return a.IP
	default:
		return nil
	}
}

// Toggle is a Checker whose answer is set explicitly. It backs --offline and
// tests, and may be flipped from any goroutine.
type Toggle struct {
	available *atomic.Bool
}

func NewToggle(available bool) *Toggle {
	return &Toggle{available: atomic.NewBool(available)}
}

func (t *Toggle) IsAvailable() bool { return t.available.Load() }

// Set changes the reported availability.
func (t *Toggle) Set(available bool) { t.available.Store(available) }

// FailClosed wraps c so that a check that cannot run (a panic in a platform
// query) reports "unavailable" instead of crashing or failing open.
func FailClosed(c Checker, logger *slog.Logger) Checker {
	return CheckerFunc(func() (available bool) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Connectivity check failed", "panic", r)
				available = false
			}
		}()
		return c.IsAvailable()
	})
}
