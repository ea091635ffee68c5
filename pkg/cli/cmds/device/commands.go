// Package device provides register access commands for the shell.
package device

import (
	"fmt"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/sense.go/pkg/cli/sh"
)

var (
	// ReadRegCmd reads one register.
	ReadRegCmd = ishell.Cmd{
		Name:    "rreg",
		Aliases: []string{"r"},
		Help:    "ADDR",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("ADDR required"))
				return
			}
			r, err := sh.ParseRegisterArg(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			s := sh.ShellFrom(c)
			v, err := s.Conn.ReadRegister(r)
			if err != nil {
				c.Err(err)
				return
			}
			s.PrintValue(c, "value", uint32(v), 2)
		}),
	}

	// WriteRegCmd writes one register.
	WriteRegCmd = ishell.Cmd{
		Name:    "wreg",
		Aliases: []string{"w"},
		Help:    "ADDR VALUE",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			if len(c.Args) < 2 {
				c.Err(fmt.Errorf("ADDR and VALUE required"))
				return
			}
			r, err := sh.ParseRegisterArg(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			value, err := sh.ParseByteArg(c.Args[1])
			if err != nil {
				c.Err(err)
				return
			}
			s := sh.ShellFrom(c)
			if err = s.Conn.WriteRegister(r, value); err != nil {
				c.Err(err)
				return
			}
			s.PrintOK(c)
		}),
	}

	// WriteRawCmd sends a raw payload byte.
	WriteRawCmd = ishell.Cmd{
		Name: "wraw",
		Help: "BYTE",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("BYTE required"))
				return
			}
			payload, err := sh.ParseByteArg(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			s := sh.ShellFrom(c)
			if err = s.Conn.WriteRaw(payload); err != nil {
				c.Err(err)
				return
			}
			s.PrintOK(c)
		}),
	}

	// SampleCmd reads conversion results.
	SampleCmd = ishell.Cmd{
		Name:    "sample",
		Aliases: []string{"s"},
		Help:    "[COUNT]",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			count := 1
			if len(c.Args) > 0 {
				val, err := strconv.Atoi(c.Args[0])
				if err != nil || val < 1 {
					c.Err(fmt.Errorf("invalid COUNT %q", c.Args[0]))
					return
				}
				count = val
			}
			s := sh.ShellFrom(c)
			for i := 0; i < count; i++ {
				v, err := s.Conn.ReadSample()
				if err != nil {
					c.Err(err)
					return
				}
				s.PrintValue(c, "sample", v, 6)
			}
		}),
	}
)

func init() {
	sh.AddCmds(
		&ReadRegCmd,
		&WriteRegCmd,
		&WriteRawCmd,
		&SampleCmd,
	)
}
