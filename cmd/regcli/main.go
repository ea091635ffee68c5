package main

import (
	"github.com/robotalks/sense.go/pkg/cli/sh"
	"github.com/robotalks/sense.go/pkg/env"

	_ "github.com/robotalks/sense.go/pkg/cli/cmds/device"
)

//go-build: CGO_ENABLED=0

func init() {
	env.SetupFlags()
}

func main() {
	sh.Main()
}
