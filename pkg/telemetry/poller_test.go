package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/sense.go/pkg/l0/reg"
)

// fakeReader plays back a scripted sequence of sample results.
type fakeReader struct {
	values []uint32
	errs   []error
	pos    int
}

func (r *fakeReader) ReadRegister(reg.Register) (byte, error) {
	return 0, errors.New("not used")
}

func (r *fakeReader) ReadSample() (uint32, error) {
	if r.pos >= len(r.values) {
		return r.values[len(r.values)-1], nil
	}
	v, err := r.values[r.pos], r.errs[r.pos]
	r.pos++
	return v, err
}

func TestPoller(t *testing.T) {
	reader := &fakeReader{
		values: []uint32{0x010203, 0, 0x00ffffff},
		errs:   []error{nil, errors.New("nack"), nil},
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	got := make([]Sample, 0, 2)
	done := make(chan struct{})
	p := &Poller{
		Device:   "dev1",
		Reader:   reader,
		Interval: time.Millisecond,
	}
	p.AddSinks(SinkFunc(func(s Sample) {
		got = append(got, s)
		if len(got) == 2 {
			close(done)
			cancel()
		}
	}))

	err := p.Run(ctx)
	require.Equal(t, context.Canceled, err)

	select {
	case <-done:
	default:
		t.Fatal("poller stopped before delivering samples")
	}
	// the failed read is skipped, not delivered
	require.Equal(t, "dev1", got[0].Device)
	require.Equal(t, uint32(0x010203), got[0].Value)
	require.Equal(t, uint32(0x00ffffff), got[1].Value)
	require.False(t, got[0].Time.IsZero())
}
