// Package env provides runtime configuration for sense tools.
package env

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/robotalks/sense.go/pkg/l0/reg"
	"github.com/robotalks/sense.go/pkg/transport/i2cdev"
	"github.com/robotalks/sense.go/pkg/transport/serialdev"
)

// Config provides common options to set up the frontend link.
type Config struct {
	// DeviceID identifies the device in telemetry topics.
	// Empty falls back to the machine ID.
	DeviceID string

	// BrokerURL specifies the URL of the MQTT broker.
	// e.g. mqtt://host:port/topic-prefix
	BrokerURL string

	// Link selects the physical link: i2c or serial.
	Link string

	I2CBus  string
	I2CAddr uint

	SerialPort string
	SerialBaud int

	// Interval is the telemetry sampling interval.
	Interval time.Duration

	// WSListen is the listen address of the websocket feed,
	// empty to disable.
	WSListen string
}

var defaultConfig = Config{
	BrokerURL:  "mqtt://localhost:1883/sense/",
	Link:       "i2c",
	I2CAddr:    0x40,
	SerialBaud: 115200,
	Interval:   time.Second,
}

func init() {
	if val := os.Getenv("SENSE_ID"); val != "" {
		defaultConfig.DeviceID = val
	}
	if val := os.Getenv("SENSE_BROKER_URL"); val != "" {
		defaultConfig.BrokerURL = val
	}
	if val := os.Getenv("SENSE_LINK"); val != "" {
		defaultConfig.Link = val
	}
	if val := os.Getenv("SENSE_I2C_BUS"); val != "" {
		defaultConfig.I2CBus = val
	}
	if val := os.Getenv("SENSE_I2C_ADDR"); val != "" {
		if addr, err := strconv.ParseUint(val, 0, 16); err == nil {
			defaultConfig.I2CAddr = uint(addr)
		}
	}
	if val := os.Getenv("SENSE_SERIAL_PORT"); val != "" {
		defaultConfig.SerialPort = val
	}
	if val := os.Getenv("SENSE_SERIAL_BAUD"); val != "" {
		if baud, err := strconv.Atoi(val); err == nil {
			defaultConfig.SerialBaud = baud
		}
	}
}

// SetupFlags sets up command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.DeviceID, "device-id", defaultConfig.DeviceID, "Device ID for telemetry.")
	flag.StringVar(&defaultConfig.BrokerURL, "broker", defaultConfig.BrokerURL, "MQTT broker URL.")
	flag.StringVar(&defaultConfig.Link, "link", defaultConfig.Link, "Physical link: i2c or serial.")
	flag.StringVar(&defaultConfig.I2CBus, "i2c-bus", defaultConfig.I2CBus, "I2C bus name, empty for first available.")
	flag.UintVar(&defaultConfig.I2CAddr, "i2c-addr", defaultConfig.I2CAddr, "I2C device address.")
	flag.StringVar(&defaultConfig.SerialPort, "serial-port", defaultConfig.SerialPort, "Serial device path.")
	flag.IntVar(&defaultConfig.SerialBaud, "serial-baud", defaultConfig.SerialBaud, "Serial baud rate.")
	flag.DurationVar(&defaultConfig.Interval, "interval", defaultConfig.Interval, "Sampling interval.")
	flag.StringVar(&defaultConfig.WSListen, "ws-listen", defaultConfig.WSListen, "Websocket feed listen address, empty to disable.")
}

// Default gets the default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// ID returns the configured device ID, falling back to machine ID.
func (c *Config) ID() string {
	if c.DeviceID != "" {
		return c.DeviceID
	}
	return MachineID()
}

// NewConn opens the configured link to the frontend. The returned
// closer releases the underlying transport.
func (c *Config) NewConn() (reg.Conn, io.Closer, error) {
	switch c.Link {
	case "i2c":
		bus, err := i2cdev.Open(c.I2CBus)
		if err != nil {
			return nil, nil, err
		}
		return reg.NewBusConn(bus, uint16(c.I2CAddr)), bus, nil
	case "serial":
		if c.SerialPort == "" {
			return nil, nil, fmt.Errorf("serial port not specified")
		}
		port, err := serialdev.Open(c.SerialPort, c.SerialBaud)
		if err != nil {
			return nil, nil, err
		}
		return reg.NewStreamConn(port), port, nil
	}
	return nil, nil, fmt.Errorf("unknown link type %q", c.Link)
}
