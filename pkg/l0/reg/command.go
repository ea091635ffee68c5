package reg

// Command is a 2-bit opcode understood by the frontend.
type Command byte

const (
	// CmdWriteReg writes one register.
	CmdWriteReg Command = 0x01
	// CmdReadReg reads one register.
	CmdReadReg Command = 0x02
	// CmdReadData reads the 24-bit conversion result.
	CmdReadData Command = 0x03
)

// Register is a 6-bit register address.
type Register byte

// IsValid checks if it's a valid register address.
func (r Register) IsValid() bool {
	return r < 0x40
}

// Pack combines the opcode and a register address into the command
// byte sent on the wire: opcode in bits 0-1, address in bits 2-7.
func (c Command) Pack(r Register) byte {
	return byte(c) | byte(r)<<2
}
