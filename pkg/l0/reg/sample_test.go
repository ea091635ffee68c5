package reg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeSample(t *testing.T) {
	testCases := []struct {
		name          string
		msb, csb, lsb byte
		expect        uint32
	}{
		{"zero", 0, 0, 0, 0},
		{"one", 0x00, 0x00, 0x01, 1},
		{"ordered", 0x01, 0x02, 0x03, 0x010203},
		{"full scale", 0xff, 0xff, 0xff, 0x00ffffff},
		{"msb only", 0x80, 0x00, 0x00, 0x800000},
		{"csb only", 0x00, 0x80, 0x00, 0x8000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := DecodeSample(tc.msb, tc.csb, tc.lsb)
			require.Equal(t, tc.expect, v)
			require.Zero(t, v>>24)
		})
	}
}
