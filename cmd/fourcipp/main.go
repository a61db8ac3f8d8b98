package main

import (
	"github.com/acorn-io/cmd"
	"github.com/gilrrei/fourcipp/cli/pkg/cmds"
)

func main() {
	cmd.Main(cmds.New())
}
