package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cellardb/cellar/cellar"
)

func init() {
	rootCmd.AddCommand(newChangeCmd())
}

func newChangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "change <data-file> <key> <value-type> <value>",
		Short: "Replace the value stored under a key",
		Long: `The change command replaces an existing key's value. The value type
must be "data" (scalar, re-normalized like add) or "file" (the value
argument's bytes stored verbatim). When the new value fits in the old
cell it is overwritten in place without consuming container space.

Example:
  cellarctl change store.db hello data goodbye
  cellarctl change store.db report file "new content"`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChange(args)
		},
	}
}

func runChange(args []string) error {
	valueType := args[2]
	if valueType != cellar.TypeData && valueType != cellar.TypeFile {
		return fmt.Errorf("value type must be %q or %q, got %q", cellar.TypeFile, cellar.TypeData, valueType)
	}
	err := withStore(args[0], func(st *cellar.Store) error {
		return st.Change(args[1], valueType, args[3])
	})
	if err != nil {
		return err
	}
	printInfo("Value of item with the key '%s' was successfully changed\n", args[1])
	return nil
}
