package main

import (
	"github.com/spf13/cobra"

	"github.com/cellardb/cellar/cellar"
)

func init() {
	rootCmd.AddCommand(newGetFileCmd())
}

func newGetFileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get_file <data-file> <key> <output-path>",
		Short: "Write the value stored under a key to a file",
		Long: `The get_file command writes a value's raw bytes to the output path,
creating the file when it does not exist. Integers become 4 big-endian
bytes, strings UTF-8 text, file values their original content.

Example:
  cellarctl get_file store.db report ./restored.pdf`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGetFile(args)
		},
	}
}

func runGetFile(args []string) error {
	err := withStore(args[0], func(st *cellar.Store) error {
		return st.GetFile(args[1], args[2])
	})
	if err != nil {
		return err
	}
	printInfo("Value of item with key %s was successfully stored in output file %s\n", args[1], args[2])
	return nil
}
