// Package serialdev binds the reg.Stream contract to serial ports.
package serialdev

import (
	"go.bug.st/serial"
)

// Port is an open serial port.
type Port struct {
	port serial.Port
}

// Open opens the serial device at path with the given baud rate,
// 8 data bits, no parity, 1 stop bit.
func Open(path string, baud int) (*Port, error) {
	port, err := serial.Open(path, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, err
	}
	return &Port{port: port}, nil
}

// Read implements reg.Stream.
func (p *Port) Read(b []byte) (int, error) {
	return p.port.Read(b)
}

// Write implements reg.Stream.
func (p *Port) Write(b []byte) (int, error) {
	return p.port.Write(b)
}

// Flush implements reg.Stream by draining the transmit buffer.
func (p *Port) Flush() error {
	return p.port.Drain()
}

// Close implements io.Closer.
func (p *Port) Close() error {
	return p.port.Close()
}
