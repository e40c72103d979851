// Package export handles the movement export command.
package export

import (
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	"fjacquet/camt-import/cmd/root"
	"fjacquet/camt-import/internal/fileutils"
	"fjacquet/camt-import/internal/store"
)

var (
	// IBAN selects the account whose movements are exported.
	IBAN string
	// Output is the CSV file to write.
	Output string

	// Cmd represents the export command.
	Cmd = &cobra.Command{
		Use:   "export",
		Short: "Export the stored movements of one account to CSV",
		Run:   exportFunc,
	}
)

// Init initializes the export command flags.
func Init() {
	Cmd.Flags().StringVarP(&IBAN, "iban", "i", "", "IBAN of the account to export")
	Cmd.Flags().StringVarP(&Output, "output", "o", "", "Output CSV file")
	_ = Cmd.MarkFlagRequired("iban")
	_ = Cmd.MarkFlagRequired("output")
}

func exportFunc(cmd *cobra.Command, args []string) {
	s, err := store.Open(root.DatabasePath())
	if err != nil {
		root.Log.Fatalf("Error opening database: %v", err)
	}

	movements, err := s.MovementsForAccount(IBAN)
	if err != nil {
		root.Log.Fatalf("Error loading movements for %s: %v", IBAN, err)
	}

	if err := fileutils.EnsureDirectoryExists(filepath.Dir(Output)); err != nil {
		root.Log.Fatalf("Error creating output directory: %v", err)
	}
	f, err := os.Create(Output)
	if err != nil {
		root.Log.Fatalf("Error creating output file: %v", err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&movements, f); err != nil {
		root.Log.Fatalf("Error writing CSV: %v", err)
	}
	root.Log.WithField("count", len(movements)).Infof("Exported movements of %s to %s", IBAN, Output)
}
