package main

import (
	"context"
	"fmt"
	"os"

	budgetcmd "github.com/signalsfoundry/link-engineering/cmd/linkeng/budget"
	passcmd "github.com/signalsfoundry/link-engineering/cmd/linkeng/pass"
	safetycmd "github.com/signalsfoundry/link-engineering/cmd/linkeng/safety"
	"github.com/urfave/cli/v3"
)

func rootCommand() *cli.Command {
	return &cli.Command{
		Name:  "linkeng",
		Usage: "satellite link engineering calculator",
		Commands: []*cli.Command{
			budgetcmd.GetCommand(),
			safetycmd.GetCommand(),
			passcmd.GetCommand(),
		},
	}
}

func main() {
	if err := rootCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
