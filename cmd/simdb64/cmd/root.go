// Package cmd implements the simdb64 command line tool.
package cmd

import (
	"context"
	"log"
	"os"

	"github.com/spf13/cobra"
)

type runFunction func(cmd *Command, args []string) error

func mkRunE(c *Command, f runFunction) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		c.Command = cmd
		return f(c, args)
	}
}

// newRootCmd creates the base command when called without any subcommands
func newRootCmd() *Command {
	cmd := &cobra.Command{
		Use:   "simdb64",
		Short: "simdb64 encodes and decodes standard base64 with a 16-lane vector kernel.",
		Long: `simdb64 converts files to and from padded standard base64
(A-Z a-z 0-9 + / with '=' padding, no line wrapping).

With no file arguments it reads stdin and writes stdout. With file
arguments every file is converted independently and concurrently;
results are written next to the input unless --stdout or --outdir
is given.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	c := &Command{Command: cmd, root: cmd}

	subCommands := []*cobra.Command{
		newEncodeCmd(c),
		newDecodeCmd(c),
		newKernelCmd(c),
	}

	addGlobalFlags(cmd.PersistentFlags())

	for _, sub := range subCommands {
		cmd.AddCommand(sub)
	}

	return c
}

// Main runs the simdb64 tool and returns the code for passing to os.Exit.
func Main() int {
	log.SetFlags(0)
	log.SetPrefix("simdb64: ")

	if err := mainErr(context.Background(), os.Args[1:]); err != nil {
		log.Print(err)
		return 1
	}
	return 0
}

func mainErr(ctx context.Context, args []string) error {
	return New(args).Run(ctx)
}

type Command struct {
	// The currently active command.
	*cobra.Command

	root *cobra.Command
}

// New creates the command tree for the given arguments.
func New(args []string) *Command {
	cmd := newRootCmd()
	cmd.root.SetArgs(args)
	return cmd
}

func (c *Command) Run(ctx context.Context) error {
	return c.root.ExecuteContext(ctx)
}
