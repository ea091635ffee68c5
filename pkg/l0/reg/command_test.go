package reg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterIsValid(t *testing.T) {
	for r := 0; r < 0x40; r++ {
		require.True(t, Register(r).IsValid())
	}
	for r := 0x40; r <= 0xff; r++ {
		require.False(t, Register(r).IsValid())
	}
}

func TestCommandPack(t *testing.T) {
	testCases := []struct {
		name   string
		cmd    Command
		reg    Register
		expect byte
	}{
		{"write reg 0", CmdWriteReg, 0, 0x01},
		{"write reg 5", CmdWriteReg, 5, 0x15},
		{"write reg max", CmdWriteReg, 0x3f, 0xfd},
		{"read reg 0", CmdReadReg, 0, 0x02},
		{"read reg 7", CmdReadReg, 7, 0x1e},
		{"read reg max", CmdReadReg, 0x3f, 0xfe},
		{"read data", CmdReadData, 0, 0x03},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, tc.cmd.Pack(tc.reg))
		})
	}
}

func TestCommandPackLayout(t *testing.T) {
	for _, cmd := range []Command{CmdWriteReg, CmdReadReg, CmdReadData} {
		for r := Register(0); r.IsValid(); r++ {
			require.Equal(t, byte(cmd)|byte(r)<<2, cmd.Pack(r))
		}
	}
}

func TestCommandPackInjective(t *testing.T) {
	for _, cmd := range []Command{CmdWriteReg, CmdReadReg, CmdReadData} {
		seen := make(map[byte]Register)
		for r := Register(0); r.IsValid(); r++ {
			b := cmd.Pack(r)
			prev, dup := seen[b]
			require.False(t, dup, "command %#x: registers %d and %d collide on %#x", cmd, prev, r, b)
			seen[b] = r
		}
	}
}
