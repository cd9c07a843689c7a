package main

import (
	"github.com/spf13/cobra"

	"github.com/cellardb/cellar/cellar"
)

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "check_validity_of_file <data-file>",
		Aliases: []string{"cvf"},
		Short:   "Check whether a file is a valid container",
		Long: `The check_validity_of_file command (alias: cvf) verifies the
free-pointer, every index link, and all level checksums. It reports the
verdict and always exits 0 when the check itself could run.

Example:
  cellarctl cvf store.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
}

func runValidate(args []string) error {
	var valid bool
	err := withStore(args[0], func(st *cellar.Store) error {
		valid = st.Validate()
		return nil
	})
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(map[string]interface{}{"file": args[0], "valid": valid})
	}
	if valid {
		printInfo("It is data file\n")
	} else {
		printInfo("It is not data file\n")
	}
	return nil
}
