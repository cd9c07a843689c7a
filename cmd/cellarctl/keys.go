package main

import (
	"github.com/spf13/cobra"

	"github.com/cellardb/cellar/cellar"
)

func init() {
	rootCmd.AddCommand(newKeysCmd())
}

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get_all_keys <data-file>",
		Short: "List every key in a container",
		Long: `The get_all_keys command prints all stored keys, one per line, in
the index traversal order.

Example:
  cellarctl get_all_keys store.db
  cellarctl get_all_keys store.db --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(args)
		},
	}
}

func runKeys(args []string) error {
	var keys []cellar.Key
	err := withStore(args[0], func(st *cellar.Store) error {
		var err error
		keys, err = st.Keys()
		return err
	})
	if err != nil {
		return err
	}
	if jsonOut {
		out := make([]string, len(keys))
		for i, k := range keys {
			out[i] = k.String()
		}
		return printJSON(map[string]interface{}{"file": args[0], "keys": out})
	}
	for _, k := range keys {
		printInfo("%s\n", k)
	}
	return nil
}
