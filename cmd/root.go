package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	CommitSHA = "none"
	BuildDate = "unknown"
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "fermento",
		Short: "Pizzeria website + reservation tooling backed by the remote Fermento API",
	}

	root.AddCommand(newVersionCmd())
	root.AddCommand(newKeysCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newPingCmd())
	root.AddCommand(newReserveCmd())
	root.AddCommand(newShiftsCmd())
	root.AddCommand(newWatchCmd())

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
