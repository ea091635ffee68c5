package reg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type busTx struct {
	addr    uint16
	w       []byte
	readLen int
}

// fakeBus records transactions and plays back scripted responses.
type fakeBus struct {
	txs      []busTx
	response []byte
	err      error
}

func (b *fakeBus) Tx(addr uint16, w, r []byte) error {
	tx := busTx{addr: addr, w: append([]byte(nil), w...), readLen: len(r)}
	b.txs = append(b.txs, tx)
	if b.err != nil {
		return b.err
	}
	copy(r, b.response)
	return nil
}

func TestBusConnWriteRegister(t *testing.T) {
	bus := &fakeBus{}
	conn := NewBusConn(bus, 0x40)
	require.NoError(t, conn.WriteRegister(5, 0x42))
	require.Equal(t, []busTx{{addr: 0x40, w: []byte{CmdWriteReg.Pack(5), 0x42}}}, bus.txs)
}

func TestBusConnWriteRaw(t *testing.T) {
	bus := &fakeBus{}
	conn := NewBusConn(bus, 0x40)
	require.NoError(t, conn.WriteRaw(0xa5))
	require.Equal(t, []busTx{{addr: 0x40, w: []byte{0xa5}}}, bus.txs)
}

func TestBusConnReadRegister(t *testing.T) {
	bus := &fakeBus{response: []byte{0x7e}}
	conn := NewBusConn(bus, 0x40)
	v, err := conn.ReadRegister(7)
	require.NoError(t, err)
	require.Equal(t, byte(0x7e), v)
	require.Equal(t, []busTx{{addr: 0x40, w: []byte{CmdReadReg.Pack(7)}, readLen: 1}}, bus.txs)
}

func TestBusConnReadSample(t *testing.T) {
	bus := &fakeBus{response: []byte{0x01, 0x02, 0x03}}
	conn := NewBusConn(bus, 0x40)
	v, err := conn.ReadSample()
	require.NoError(t, err)
	require.Equal(t, uint32(0x010203), v)
	require.Equal(t, []busTx{{addr: 0x40, w: []byte{byte(CmdReadData)}, readLen: 3}}, bus.txs)
}

func TestBusConnErrors(t *testing.T) {
	busErr := errors.New("nack")
	bus := &fakeBus{err: busErr}
	conn := NewBusConn(bus, 0x40)

	testCases := []struct {
		name string
		op   func() error
	}{
		{"write register", func() error { return conn.WriteRegister(1, 2) }},
		{"write raw", func() error { return conn.WriteRaw(3) }},
		{"read register", func() error { _, err := conn.ReadRegister(1); return err }},
		{"read sample", func() error { _, err := conn.ReadSample(); return err }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bus.txs = nil
			err := tc.op()
			require.Error(t, err)
			var commErr *CommError
			require.True(t, errors.As(err, &commErr))
			require.Equal(t, busErr, commErr.Unwrap())
			// one failed transaction, nothing after it
			require.Len(t, bus.txs, 1)
		})
	}
}
