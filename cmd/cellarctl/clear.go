package main

import (
	"github.com/spf13/cobra"

	"github.com/cellardb/cellar/cellar"
)

func init() {
	rootCmd.AddCommand(newClearCmd())
}

func newClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear <data-file>",
		Short: "Wipe the contents of a container",
		Long: `The clear command resets an existing container to its freshly
initialized state. The file keeps its size; all keys and data are dropped.

Example:
  cellarctl clear store.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClear(args)
		},
	}
}

func runClear(args []string) error {
	err := withStore(args[0], func(st *cellar.Store) error {
		return st.Clear()
	})
	if err != nil {
		return err
	}
	printInfo("Data file was successfully cleared\n")
	return nil
}
