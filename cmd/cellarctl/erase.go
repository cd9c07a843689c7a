package main

import (
	"github.com/spf13/cobra"

	"github.com/cellardb/cellar/cellar"
)

func init() {
	rootCmd.AddCommand(newEraseCmd())
}

func newEraseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "erase <data-file> <key>",
		Short: "Remove a key from a container",
		Long: `The erase command removes a key from the index. The value's bytes
stay in the data region until the container is cleared.

Example:
  cellarctl erase store.db hello`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runErase(args)
		},
	}
}

func runErase(args []string) error {
	err := withStore(args[0], func(st *cellar.Store) error {
		return st.Erase(args[1])
	})
	if err != nil {
		return err
	}
	printInfo("Item was successfully erased from KV-Storage\n")
	return nil
}
