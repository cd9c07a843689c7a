package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cellardb/cellar/cellar"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "cellarctl",
	Short: "Manage single-file cellar key-value containers",
	Long: `cellarctl stores and retrieves key/value data in fixed-size container
files. Keys and values are integers or strings; values can also hold the
contents of external files. Every command takes the container path first.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

func main() {
	execute()
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps the storage error kinds onto the documented process exit
// codes. Anything unrecognized exits 100.
func exitCode(err error) int {
	var (
		notDataFile *cellar.NotDataFileError
		fileExists  *cellar.DataFileExistsError
		fileMissing *cellar.MissingFileError
		usedKey     *cellar.UsedKeyError
		treeFull    *cellar.TreeFullError
		noMemory    *cellar.NoMemoryError
		tooBig      *cellar.TooBigDataError
		noSuchKey   *cellar.NoSuchKeyError
		invalidCSV  *cellar.InvalidCSVError
	)
	switch {
	case errors.As(err, &notDataFile):
		return 1
	case errors.As(err, &fileExists):
		return 2
	case errors.As(err, &fileMissing):
		return 3
	case errors.As(err, &usedKey):
		return 4
	case errors.As(err, &treeFull):
		return 5
	case errors.As(err, &noMemory):
		return 6
	case errors.As(err, &tooBig):
		return 7
	case errors.As(err, &noSuchKey):
		return 8
	case errors.As(err, &invalidCSV):
		return 9
	default:
		return 100
	}
}

// Helper functions for output

// printInfo prints a success message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// withStore opens the container, runs fn, and closes the handle on every
// path. The close error is surfaced only when fn itself succeeded.
func withStore(path string, fn func(*cellar.Store) error) error {
	st, err := cellar.Open(path)
	if err != nil {
		return err
	}
	runErr := fn(st)
	closeErr := st.Close()
	if runErr != nil {
		return runErr
	}
	return closeErr
}
