package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mnightingale/simdb64"
)

func newKernelCmd(c *Command) *cobra.Command {
	return &cobra.Command{
		Use:   "kernel",
		Short: "print the active encode and decode kernels",
		Long: `Kernel prints the chunk kernels selected for this machine and the
library version. Set SIMDB64_KERNEL=scalar or SIMDB64_KERNEL=lanes to
override the selection.`,
		Args: cobra.NoArgs,
		RunE: mkRunE(c, runKernel),
	}
}

func runKernel(cmd *Command, args []string) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "encode: %s\ndecode: %s\nversion: %s\n",
		simdb64.EncodeKernel(), simdb64.DecodeKernel(), simdb64.Version())
	return err
}
