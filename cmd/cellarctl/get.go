package main

import (
	"github.com/spf13/cobra"

	"github.com/cellardb/cellar/cellar"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <data-file> <key>",
		Short: "Print the value stored under a key",
		Long: `The get command looks a key up and prints its value: integers in
decimal, strings and file contents as text.

Example:
  cellarctl get store.db hello
  cellarctl get store.db 1 --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
}

func runGet(args []string) error {
	var value cellar.Value
	err := withStore(args[0], func(st *cellar.Store) error {
		var err error
		value, err = st.Get(args[1])
		return err
	})
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(map[string]interface{}{
			"key":   args[1],
			"type":  value.Kind,
			"value": value.String(),
		})
	}
	printInfo("%s\n", value)
	return nil
}
