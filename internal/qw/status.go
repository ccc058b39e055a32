package qw

import (
	"bytes"
	"fmt"
	"net"
	"time"
)

// statusRequest is the out-of-band status query. The 23 asks for the compact
// variant that includes the server's info string.
var statusRequest = []byte("\xff\xff\xff\xffstatus 23\n")

// maxUDPPayload is the largest payload a UDP datagram can carry.
const maxUDPPayload = 65507

// QueryHostname asks a QW server for its hostname over UDP. The returned
// hostname has QW control characters escaped. The connected socket discards
// datagrams from other origins, so a stray reply cannot be mistaken for the
// server's.
func QueryHostname(address string, timeout time.Duration) (string, error) {
	conn, err := net.DialTimeout("udp", address, timeout)
	if err != nil {
		return "", fmt.Errorf("QueryHostname: unable to dial '%s': %w", address, err)
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
		return "", fmt.Errorf("QueryHostname: unable to set deadline: %w", err)
	}
	if _, err := conn.Write(statusRequest); err != nil {
		return "", fmt.Errorf("QueryHostname: unable to send status request to '%s': %w", address, err)
	}

	buf := make([]byte, maxUDPPayload)
	n, err := conn.Read(buf)
	if err != nil {
		return "", fmt.Errorf("QueryHostname: no status reply from '%s': %w", address, err)
	}
	return parseHostname(buf[:n])
}

// parseHostname extracts the hostname value from a status reply's info string.
// Info strings are backslash-delimited key-value pairs; the last value may be
// newline-terminated instead.
func parseHostname(data []byte) (string, error) {
	const key = `hostname\`
	i := bytes.Index(data, []byte(key))
	if i < 0 {
		return "", fmt.Errorf("parseHostname: missing hostname key")
	}
	i += len(key)
	j := bytes.IndexByte(data[i:], '\\')
	if j < 0 {
		j = bytes.IndexByte(data[i:], '\n')
		if j < 0 {
			return "", fmt.Errorf("parseHostname: missing hostname value")
		}
	}
	return Escape(data[i : i+j]), nil
}
