package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cellardb/cellar/cellar"
)

var addPackageCSV string

func init() {
	cmd := newAddPackageCmd()
	cmd.Flags().StringVarP(&addPackageCSV, "file", "f", "", "Read rows from a CSV file instead of stdin")
	rootCmd.AddCommand(cmd)
}

func newAddPackageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add_package <data-file>",
		Short: "Add a batch of items from CSV or stdin",
		Long: `The add_package command ingests rows of the form

  kind,key,value

where kind is "data" (value is a scalar) or "file" (value is a path to an
external file). With -f the rows come from a CSV file and any malformed
row aborts the batch before anything is written; without -f rows are read
from standard input and malformed lines are skipped silently. A row that
fails to add (duplicate key, missing file, ...) is reported and the batch
continues.

Example:
  cellarctl add_package store.db -f rows.csv
  printf 'data,a,1\ndata,b,2\n' | cellarctl add_package store.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddPackage(args)
		},
	}
}

func runAddPackage(args []string) error {
	var rows []cellar.Row
	var err error
	if addPackageCSV != "" {
		rows, err = cellar.ReadRowsCSV(addPackageCSV)
	} else {
		rows, err = cellar.ReadRows(os.Stdin)
	}
	if err != nil {
		return err
	}
	err = withStore(args[0], func(st *cellar.Store) error {
		return st.AddPackage(rows, func(i int, row cellar.Row) {
			fmt.Fprintf(os.Stderr, "row %d (%s,%s,%s) was not added\n", i, row.Kind, row.Key, row.Value)
		})
	})
	if err != nil {
		return err
	}
	printInfo("All correct queries were executed\n")
	return nil
}
