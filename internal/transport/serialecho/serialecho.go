// Package serialecho provides an in-memory stand-in for the TCP/serial
// connections dialed elsewhere in the corpus with net.Dial (see
// kissutil.go, nettnc.go): a loopback net.Conn pair built on net.Pipe, so a
// frame can be protected on one end and checked on the other without any
// real hardware or network socket.
package serialecho

import "net"

// Pair is a connected loopback link: bytes written to Local are read from
// Remote and vice versa.
type Pair struct {
	Local, Remote net.Conn
}

// New returns a freshly connected in-memory Pair.
func New() Pair {
	local, remote := net.Pipe()
	return Pair{Local: local, Remote: remote}
}

// Close closes both ends of the pair.
func (p Pair) Close() error {
	err := p.Local.Close()
	if rerr := p.Remote.Close(); err == nil {
		err = rerr
	}
	return err
}

// SendFrame writes buf to Local in full, for the peer to read off Remote.
func (p Pair) SendFrame(buf []byte) error {
	_, err := p.Local.Write(buf)
	return err
}

// ReceiveFrame reads exactly len(buf) bytes from Remote into buf.
func (p Pair) ReceiveFrame(buf []byte) error {
	_, err := readFull(p.Remote, buf)
	return err
}

func readFull(conn net.Conn, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := conn.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
