package reg

import "io"

// Bus is the addressed-bus primitive (e.g. an I2C master). Tx performs
// one transaction against addr: write w, then read len(r) bytes if r
// is non-empty. A plain write passes a nil r.
//
// The signature matches periph.io's i2c.Bus so OS-level buses satisfy
// it directly.
type Bus interface {
	Tx(addr uint16, w, r []byte) error
}

// Stream is the byte-stream primitive (e.g. a serial port). Writes may
// be buffered by the transport; Flush forces buffered bytes out.
// Responses are read with io.ReadFull semantics.
type Stream interface {
	io.ReadWriter
	Flush() error
}

// RegisterWriter provides write access to the frontend.
type RegisterWriter interface {
	// WriteRegister writes one byte to a register.
	WriteRegister(r Register, value byte) error
	// WriteRaw sends a single payload byte with no command framing.
	WriteRaw(payload byte) error
}

// RegisterReader provides read access to the frontend.
type RegisterReader interface {
	// ReadRegister reads one byte from a register.
	ReadRegister(r Register) (byte, error)
	// ReadSample reads the accumulated 24-bit conversion result.
	ReadSample() (uint32, error)
}

// Conn is full access to the frontend over either link.
type Conn interface {
	RegisterWriter
	RegisterReader
}
