package main

import (
	"github.com/spf13/cobra"

	"github.com/cellardb/cellar/cellar"
)

func init() {
	rootCmd.AddCommand(newInitCmd())
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init <data-file>",
		Short: "Create a fresh container image",
		Long: `The init command writes a fresh container image at the given path,
creating the file when it does not exist. Re-running init wipes all stored
data.

Example:
  cellarctl init store.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(args)
		},
	}
}

func runInit(args []string) error {
	printVerbose("Initializing container: %s\n", args[0])
	err := withStore(args[0], func(st *cellar.Store) error {
		return st.Init()
	})
	if err != nil {
		return err
	}
	printInfo("Data file was successfully initialized\n")
	return nil
}
