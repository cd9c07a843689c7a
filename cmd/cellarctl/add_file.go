package main

import (
	"github.com/spf13/cobra"

	"github.com/cellardb/cellar/cellar"
)

func init() {
	rootCmd.AddCommand(newAddFileCmd())
}

func newAddFileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add_file <data-file> <key> <path>",
		Short: "Add the contents of a file under a key",
		Long: `The add_file command reads an external file and stores its bytes
under a key with value type "file". The file must fit the container's
residual capacity.

Example:
  cellarctl add_file store.db report ./report.pdf`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddFile(args)
		},
	}
}

func runAddFile(args []string) error {
	err := withStore(args[0], func(st *cellar.Store) error {
		return st.AddFile(args[1], args[2])
	})
	if err != nil {
		return err
	}
	printInfo("Content of file was successfully added to KV-Storage\n")
	return nil
}
