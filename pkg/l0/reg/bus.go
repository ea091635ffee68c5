package reg

// BusConn accesses the frontend over an addressed bus. It owns the bus
// handle and the target address for its lifetime and keeps no other
// state: every operation is a single bus transaction.
type BusConn struct {
	bus  Bus
	addr uint16
}

// NewBusConn creates a BusConn talking to the device at addr.
func NewBusConn(bus Bus, addr uint16) *BusConn {
	return &BusConn{bus: bus, addr: addr}
}

// WriteRegister implements RegisterWriter.
func (c *BusConn) WriteRegister(r Register, value byte) error {
	if err := c.bus.Tx(c.addr, []byte{CmdWriteReg.Pack(r), value}, nil); err != nil {
		return &CommError{Err: err}
	}
	return nil
}

// WriteRaw implements RegisterWriter.
func (c *BusConn) WriteRaw(payload byte) error {
	if err := c.bus.Tx(c.addr, []byte{payload}, nil); err != nil {
		return &CommError{Err: err}
	}
	return nil
}

// ReadRegister implements RegisterReader.
func (c *BusConn) ReadRegister(r Register) (byte, error) {
	var buf [1]byte
	if err := c.bus.Tx(c.addr, []byte{CmdReadReg.Pack(r)}, buf[:]); err != nil {
		return 0, &CommError{Err: err}
	}
	return buf[0], nil
}

// ReadSample implements RegisterReader. The register field of the
// command byte is unused and stays zero.
func (c *BusConn) ReadSample() (uint32, error) {
	var buf [3]byte
	if err := c.bus.Tx(c.addr, []byte{byte(CmdReadData)}, buf[:]); err != nil {
		return 0, &CommError{Err: err}
	}
	return DecodeSample(buf[0], buf[1], buf[2]), nil
}
