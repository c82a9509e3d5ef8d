// Package main is the entry point for the file2json CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/file2json"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	outputPath string
	typeName   string
	compact    bool
)

// rootCmd is the base command for the file2json CLI.
var rootCmd = &cobra.Command{
	Use:   "file2json <file>",
	Short: "Convert spreadsheet, delimited, Parquet, JSON, and text files to JSON",
	Long: `file2json converts tabular and semi-structured files into normalized JSON.

Supported inputs: Excel workbooks (multi-sheet), CSV, TSV, Parquet, JSON,
and plain text, optionally gzip/bzip2/xz/zstd compressed. The file type is
detected from the extension, with content sniffing as fallback; use --type
to force it.

The result is written next to the input with a .json extension unless
--output is given.`,
	Args:          cobra.ExactArgs(1),
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := file2json.NewConvertOptions()

		if typeName != "" {
			fileType, err := file2json.ParseFileType(typeName)
			if err != nil {
				return err
			}
			opts = opts.WithFileType(fileType)
		}
		if outputPath != "" {
			opts = opts.WithOutputPath(outputPath)
		}
		if compact {
			opts = opts.WithCompact()
		}

		savedPath, err := file2json.ConvertToFile(args[0], opts)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "JSON saved to %s\n", savedPath)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output JSON file path (defaults to input filename with .json extension)")
	rootCmd.Flags().StringVarP(&typeName, "type", "t", "", "force file type instead of auto-detection: excel, csv, tsv, parquet, json, or text")
	rootCmd.Flags().BoolVar(&compact, "compact", false, "emit compact JSON instead of pretty-printed")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
