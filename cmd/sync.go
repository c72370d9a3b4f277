package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/fitpulse/internal/storage"
	"github.com/misterclayt0n/fitpulse/internal/utils"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export [output-file]",
	Short: "Export all stored data to a TOML or YAML file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outputFile := "fitpulse_dump." + exportFormat // Default filename.
		if len(args) == 1 {
			outputFile = args[0]
		}

		st, err := openStorage(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		dump, err := st.Export(cmd.Context())
		if err != nil {
			return fmt.Errorf("error exporting database: %w", err)
		}

		if exportFormat == "yaml" || utils.IsYAMLPath(outputFile) {
			err = utils.WriteYAML(outputFile, dump)
		} else {
			err = utils.WriteTOML(outputFile, dump)
		}
		if err != nil {
			return fmt.Errorf("error writing %s: %w", outputFile, err)
		}

		fmt.Printf("✅ Data exported successfully to %s\n", outputFile)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import [dump-file]",
	Short: "Replace all stored data with the contents of a TOML or YAML dump",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dumpFile := args[0]

		var dump storage.Dump
		var err error
		if utils.IsYAMLPath(dumpFile) {
			err = utils.ReadYAML(dumpFile, &dump)
		} else {
			err = utils.ReadTOML(dumpFile, &dump)
		}
		if err != nil {
			return err
		}

		st, err := openStorage(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Import(cmd.Context(), &dump); err != nil {
			return fmt.Errorf("Failed to import data: %w", err)
		}
		fmt.Println("✅ Data imported successfully.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "toml", "Output format: toml or yaml")
}
