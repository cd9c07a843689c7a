package main

import (
	"github.com/spf13/cobra"

	"github.com/cellardb/cellar/cellar"
)

func init() {
	rootCmd.AddCommand(newContainsCmd())
}

func newContainsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contains <data-file> <key>",
		Short: "Report whether a key is present",
		Long: `The contains command checks for a key without reading its value.

Example:
  cellarctl contains store.db hello`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContains(args)
		},
	}
}

func runContains(args []string) error {
	var found bool
	err := withStore(args[0], func(st *cellar.Store) error {
		var err error
		found, err = st.Contains(args[1])
		return err
	})
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(map[string]interface{}{"key": args[1], "present": found})
	}
	if found {
		printInfo("Data file contains item with such key\n")
	} else {
		printInfo("Data file doesn't contains item with such key\n")
	}
	return nil
}
