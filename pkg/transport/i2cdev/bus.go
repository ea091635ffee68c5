// Package i2cdev binds the reg.Bus contract to periph.io I2C buses.
package i2cdev

import (
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// Bus is an open I2C bus.
type Bus struct {
	bus i2c.BusCloser
}

// Open opens a named I2C bus. An empty name selects the first bus
// available on the host.
func Open(name string) (*Bus, error) {
	if _, err := host.Init(); err != nil {
		return nil, err
	}
	bus, err := i2creg.Open(name)
	if err != nil {
		return nil, err
	}
	return &Bus{bus: bus}, nil
}

// Tx implements reg.Bus.
func (b *Bus) Tx(addr uint16, w, r []byte) error {
	return b.bus.Tx(addr, w, r)
}

// Close implements io.Closer.
func (b *Bus) Close() error {
	return b.bus.Close()
}
