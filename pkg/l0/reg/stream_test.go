package reg

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeStream records writes, flushes and reads in order, plays back
// scripted response bytes, and can fail any step.
type fakeStream struct {
	ops      []string
	response []byte
	writeErr error
	flushErr error
	readErr  error
}

func (s *fakeStream) Write(p []byte) (int, error) {
	s.ops = append(s.ops, fmt.Sprintf("write %x", p))
	if s.writeErr != nil {
		return 0, s.writeErr
	}
	return len(p), nil
}

func (s *fakeStream) Flush() error {
	s.ops = append(s.ops, "flush")
	return s.flushErr
}

func (s *fakeStream) Read(p []byte) (int, error) {
	s.ops = append(s.ops, fmt.Sprintf("read %d", len(p)))
	if s.readErr != nil {
		return 0, s.readErr
	}
	if len(s.response) == 0 {
		return 0, io.EOF
	}
	n := copy(p, s.response)
	s.response = s.response[n:]
	return n, nil
}

func TestStreamConnWriteRegister(t *testing.T) {
	s := &fakeStream{}
	conn := NewStreamConn(s)
	require.NoError(t, conn.WriteRegister(5, 0x42))
	require.Equal(t, []string{
		fmt.Sprintf("write %x", []byte{FrameSync, CmdWriteReg.Pack(5), 0x42}),
		"flush",
	}, s.ops)
}

func TestStreamConnWriteRaw(t *testing.T) {
	s := &fakeStream{}
	conn := NewStreamConn(s)
	require.NoError(t, conn.WriteRaw(0xa5))
	require.Equal(t, []string{
		fmt.Sprintf("write %x", []byte{FrameSync, 0xa5}),
		"flush",
	}, s.ops)
}

func TestStreamConnReadRegister(t *testing.T) {
	s := &fakeStream{response: []byte{0x7e}}
	conn := NewStreamConn(s)
	v, err := conn.ReadRegister(7)
	require.NoError(t, err)
	require.Equal(t, byte(0x7e), v)
	require.Equal(t, []string{
		fmt.Sprintf("write %x", []byte{FrameSync, CmdReadReg.Pack(7)}),
		"flush",
		"read 1",
	}, s.ops)
}

func TestStreamConnReadSample(t *testing.T) {
	s := &fakeStream{response: []byte{0xff, 0xff, 0xff}}
	conn := NewStreamConn(s)
	v, err := conn.ReadSample()
	require.NoError(t, err)
	require.Equal(t, uint32(0x00ffffff), v)
	require.Equal(t, []string{
		fmt.Sprintf("write %x", []byte{FrameSync, byte(CmdReadData)}),
		"flush",
		"read 3",
	}, s.ops)
}

func TestStreamConnErrors(t *testing.T) {
	streamErr := errors.New("io failure")

	testCases := []struct {
		name   string
		setup  func(*fakeStream)
		lastOp string
		op     func(*StreamConn) error
	}{
		{
			"write register fails on write",
			func(s *fakeStream) { s.writeErr = streamErr },
			"write",
			func(c *StreamConn) error { return c.WriteRegister(1, 2) },
		},
		{
			"write register fails on flush",
			func(s *fakeStream) { s.flushErr = streamErr },
			"flush",
			func(c *StreamConn) error { return c.WriteRegister(1, 2) },
		},
		{
			"write raw fails on flush",
			func(s *fakeStream) { s.flushErr = streamErr },
			"flush",
			func(c *StreamConn) error { return c.WriteRaw(3) },
		},
		{
			"read register fails on write",
			func(s *fakeStream) { s.writeErr = streamErr },
			"write",
			func(c *StreamConn) error { _, err := c.ReadRegister(1); return err },
		},
		{
			"read register fails on read",
			func(s *fakeStream) { s.readErr = streamErr },
			"read",
			func(c *StreamConn) error { _, err := c.ReadRegister(1); return err },
		},
		{
			"read sample fails on flush",
			func(s *fakeStream) { s.flushErr = streamErr },
			"flush",
			func(c *StreamConn) error { _, err := c.ReadSample(); return err },
		},
		{
			"read sample fails on read",
			func(s *fakeStream) { s.readErr = streamErr },
			"read",
			func(c *StreamConn) error { _, err := c.ReadSample(); return err },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := &fakeStream{}
			tc.setup(s)
			err := tc.op(NewStreamConn(s))
			require.Error(t, err)
			var commErr *CommError
			require.True(t, errors.As(err, &commErr))
			require.Equal(t, streamErr, commErr.Unwrap())
			// the failing step is the last I/O attempted
			require.NotEmpty(t, s.ops)
			require.Contains(t, s.ops[len(s.ops)-1], tc.lastOp)
		})
	}
}

func TestStreamConnShortRead(t *testing.T) {
	// transport reports success with fewer bytes than requested;
	// io.ReadFull semantics turn that into an error
	s := &fakeStream{response: []byte{0x01}}
	conn := NewStreamConn(s)
	_, err := conn.ReadSample()
	require.Error(t, err)
	var commErr *CommError
	require.True(t, errors.As(err, &commErr))
}
