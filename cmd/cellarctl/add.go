package main

import (
	"github.com/spf13/cobra"

	"github.com/cellardb/cellar/cellar"
)

func init() {
	rootCmd.AddCommand(newAddCmd())
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <data-file> <key> <value>",
		Short: "Add a key/value item to a container",
		Long: `The add command stores a value under a key. Tokens that parse as
32-bit integers are stored as integers; quote a token ('42') to force a
string key. Adding an existing key fails.

Example:
  cellarctl add store.db hello world
  cellarctl add store.db 1 2
  cellarctl add store.db "'42'" forty-two`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(args)
		},
	}
}

func runAdd(args []string) error {
	err := withStore(args[0], func(st *cellar.Store) error {
		return st.Add(args[1], args[2])
	})
	if err != nil {
		return err
	}
	printInfo("Item was successfully added to KV-Storage\n")
	return nil
}
