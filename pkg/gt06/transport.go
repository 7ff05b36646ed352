package gt06

import (
	"context"
	"net"
	"time"
)

// Transport dials the server the Session should connect to. Production
// code uses TCPTransport; tests substitute a net.Pipe-backed fake so the
// session's state machine can be exercised without a real socket.
type Transport interface {
	Dial(ctx context.Context) (net.Conn, error)
}

// TCPTransport dials a fixed TCP address, inverting the reference TCP
// server's net.Listen/net.Conn usage to the client side.
type TCPTransport struct {
	Address string
	Dialer  net.Dialer
}

// NewTCPTransport returns a TCPTransport for address ("host:port").
func NewTCPTransport(address string) *TCPTransport {
	return &TCPTransport{Address: address, Dialer: net.Dialer{Timeout: 10 * time.Second}}
}

// Dial connects to t.Address, honoring ctx's deadline/cancellation.
func (t *TCPTransport) Dial(ctx context.Context) (net.Conn, error) {
	return t.Dialer.DialContext(ctx, "tcp", t.Address)
}
