package preflight

import (
	"context"
	"sort"

	"github.com/shirou/gopsutil/v3/net"
)

// PortProbe lists TCP ports something is listening on.
type PortProbe interface {
	ListeningPorts(ctx context.Context) (map[int]bool, error)
}

// SystemPortProbe reads the socket table through gopsutil.
type SystemPortProbe struct{}

// ListeningPorts returns the local ports of every TCP socket in LISTEN state.
func (SystemPortProbe) ListeningPorts(ctx context.Context) (map[int]bool, error) {
	conns, err := net.ConnectionsWithContext(ctx, "tcp")
	if err != nil {
		return nil, err
	}
	ports := make(map[int]bool)
	for _, c := range conns {
		if c.Status == "LISTEN" {
			ports[int(c.Laddr.Port)] = true
		}
	}
	return ports, nil
}

// PortConflicts returns the subset of wanted ports already being listened on,
// sorted ascending.
func PortConflicts(ctx context.Context, probe PortProbe, wanted []int) ([]int, error) {
	listening, err := probe.ListeningPorts(ctx)
	if err != nil {
		return nil, err
	}
	var busy []int
	seen := make(map[int]bool)
	for _, p := range wanted {
		if listening[p] && !seen[p] {
			busy = append(busy, p)
			seen[p] = true
		}
	}
	sort.Ints(busy)
	return busy, nil
}

// StaticPortProbe is a fixed PortProbe for tests.
type StaticPortProbe struct {
	Ports []int
	Err   error
}

func (s StaticPortProbe) ListeningPorts(context.Context) (map[int]bool, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	ports := make(map[int]bool, len(s.Ports))
	for _, p := range s.Ports {
		ports[p] = true
	}
	return ports, nil
}
