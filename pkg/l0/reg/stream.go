package reg

import "io"

// FrameSync prefixes every frame on the stream link. The stream has no
// framing of its own, so the firmware scans for this marker to find
// the start of a command.
const FrameSync byte = 0x55

// StreamConn accesses the frontend over a byte stream. It owns the
// stream handle for its lifetime and keeps no other state. Every
// outgoing frame is written in full and flushed before the call
// returns or a response is read; without the flush the frame could sit
// in a transport buffer and never reach the device.
type StreamConn struct {
	s Stream
}

// NewStreamConn creates a StreamConn over s.
func NewStreamConn(s Stream) *StreamConn {
	return &StreamConn{s: s}
}

// WriteRegister implements RegisterWriter.
func (c *StreamConn) WriteRegister(r Register, value byte) error {
	return c.send(CmdWriteReg.Pack(r), value)
}

// WriteRaw implements RegisterWriter.
func (c *StreamConn) WriteRaw(payload byte) error {
	return c.send(payload)
}

// ReadRegister implements RegisterReader.
func (c *StreamConn) ReadRegister(r Register) (byte, error) {
	if err := c.send(CmdReadReg.Pack(r)); err != nil {
		return 0, err
	}
	var buf [1]byte
	if _, err := io.ReadFull(c.s, buf[:]); err != nil {
		return 0, &CommError{Err: err}
	}
	return buf[0], nil
}

// ReadSample implements RegisterReader.
func (c *StreamConn) ReadSample() (uint32, error) {
	if err := c.send(byte(CmdReadData)); err != nil {
		return 0, err
	}
	var buf [3]byte
	if _, err := io.ReadFull(c.s, buf[:]); err != nil {
		return 0, &CommError{Err: err}
	}
	return DecodeSample(buf[0], buf[1], buf[2]), nil
}

func (c *StreamConn) send(b ...byte) error {
	frame := append([]byte{FrameSync}, b...)
	if _, err := c.s.Write(frame); err != nil {
		return &CommError{Err: err}
	}
	if err := c.s.Flush(); err != nil {
		return &CommError{Err: err}
	}
	return nil
}
