// Command fincalc runs the personal finance calculators from the terminal.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
)

var commands = []subcommands.Command{
	&sipCmd{},
	&emiCmd{},
	&retirementCmd{},
	&educationCmd{},
}

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	for _, c := range commands {
		commander.Register(c, "calculators")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
