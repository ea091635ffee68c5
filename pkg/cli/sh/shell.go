// Package sh provides the interactive register shell.
package sh

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/sense.go/pkg/env"
	"github.com/robotalks/sense.go/pkg/l0/reg"
)

// Shell provides ishell backed interactive shell.
type Shell struct {
	Interactive bool
	OutputJSON  bool

	Shell  *ishell.Shell
	Config *env.Config

	// Conn is the open frontend link, nil when closed.
	Conn reg.Conn

	closer io.Closer
}

const (
	shellKey       = "$shell"
	unopenedPrompt = "[none] > "
)

var (
	// flags

	evalOnly   bool
	outputJSON bool

	// commands
	commands = []*ishell.Cmd{
		&OpenCmd,
		&CloseCmd,
	}
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print output in JSON.")
}

// AddCmds is used by other commands providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a new shell.
func New(conf *env.Config) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		OutputJSON:  outputJSON,

		Shell:  ishell.New(),
		Config: conf,
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(unopenedPrompt)
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// MustBeOpen wraps command funcs requiring an open link.
func MustBeOpen(fn func(c *ishell.Context)) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		if ShellFrom(c).Conn == nil {
			c.Err(fmt.Errorf("link not open"))
			return
		}
		fn(c)
	}
}

// ParseByteArg parses a numeric argument as a byte. 0x and 0 prefixes
// are honored.
func ParseByteArg(arg string) (byte, error) {
	v, err := strconv.ParseUint(arg, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid byte value %q", arg)
	}
	return byte(v), nil
}

// ParseRegisterArg parses a register address argument.
func ParseRegisterArg(arg string) (reg.Register, error) {
	v, err := strconv.ParseUint(arg, 0, 8)
	if err != nil || !reg.Register(v).IsValid() {
		return 0, fmt.Errorf("invalid register address %q", arg)
	}
	return reg.Register(v), nil
}

// Open opens a link to the frontend. A non-empty link overrides the
// configured one.
func (s *Shell) Open(link string) error {
	if link != "" {
		s.Config.Link = link
	}
	conn, closer, err := s.Config.NewConn()
	if err != nil {
		return err
	}
	s.Close()
	s.Conn, s.closer = conn, closer
	s.Shell.SetPrompt(fmt.Sprintf("%s > ", s.Config.Link))
	return nil
}

// Close closes the current link.
func (s *Shell) Close() {
	if s.closer != nil {
		s.closer.Close()
	}
	s.Conn, s.closer = nil, nil
	s.Shell.SetPrompt(unopenedPrompt)
}

// PrintOK reports command success.
func (s *Shell) PrintOK(c *ishell.Context) {
	if s.OutputJSON {
		c.Println(`{"ok":true}`)
		return
	}
	c.Println("OK")
}

// PrintValue prints a named numeric result, hex-formatted to width
// digits unless -json is set.
func (s *Shell) PrintValue(c *ishell.Context, name string, value uint32, width int) {
	if s.OutputJSON {
		out, err := json.Marshal(map[string]uint32{name: value})
		if err != nil {
			c.Err(err)
			return
		}
		c.Println(string(out))
		return
	}
	c.Printf("0x%0*x (%d)\n", width, value, value)
}

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	defer s.Close()
	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			log.Fatalln(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	log.Fatalln("command expected")
}

// Main is the entry of the register shell binary.
func Main() {
	flag.Parse()
	New(env.NewConfig()).Run(flag.Args()...)
}

var (
	// OpenCmd opens a link to the frontend.
	OpenCmd = ishell.Cmd{
		Name:    "open",
		Aliases: []string{"o"},
		Help:    "[i2c|serial]",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			var link string
			if len(c.Args) > 0 {
				link = c.Args[0]
			}
			if err := s.Open(link); err != nil {
				c.Err(err)
				return
			}
			s.PrintOK(c)
		},
	}

	// CloseCmd closes the current link.
	CloseCmd = ishell.Cmd{
		Name: "close",
		Help: "",
		Func: func(c *ishell.Context) {
			ShellFrom(c).Close()
		},
	}
)
