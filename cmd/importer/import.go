// Package importer handles the statement import command.
package importer

import (
	"github.com/spf13/cobra"

	"fjacquet/camt-import/cmd/root"
	"fjacquet/camt-import/internal/camtparser"
	"fjacquet/camt-import/internal/logging"
	"fjacquet/camt-import/internal/reconcile"
	"fjacquet/camt-import/internal/store"
)

var (
	// Directory overrides import.directory from the configuration.
	Directory string
	// DeleteAfterImport overrides import.delete_after_import.
	DeleteAfterImport bool

	// Cmd represents the import command.
	Cmd = &cobra.Command{
		Use:   "import",
		Short: "Import CAMT.053 XML files from the configured directory",
		Long: `Scan the import directory for CAMT.053 XML files and reconcile every
statement they contain against the database. Files whose statements all
imported cleanly can be deleted afterwards.`,
		Run: importFunc,
	}
)

// Init initializes the import command flags.
func Init() {
	Cmd.Flags().StringVarP(&Directory, "directory", "d", "", "Directory to scan for XML files (overrides configuration)")
	Cmd.Flags().BoolVar(&DeleteAfterImport, "delete", false, "Delete files after successful import")
}

func importFunc(cmd *cobra.Command, args []string) {
	directory := root.Cfg.Import.Directory
	if Directory != "" {
		directory = Directory
	}
	deleteAfter := root.Cfg.Import.DeleteAfterImport
	if cmd.Flags().Changed("delete") {
		deleteAfter = DeleteAfterImport
	}

	s, err := store.Open(root.DatabasePath())
	if err != nil {
		root.Log.Fatalf("Error opening database: %v", err)
	}

	log := logging.NewLogrusAdapter(root.Log)
	runner := &reconcile.Runner{
		Directory:         directory,
		DeleteAfterImport: deleteAfter,
		Parser:            camtparser.New(root.Log),
		Engine:            reconcile.NewEngine(s, log),
		Log:               log,
	}

	summary, err := runner.Run()
	if err != nil {
		root.Log.Fatalf("Import run failed: %v", err)
	}
	root.Log.Infof("%s (%d failed)", summary, summary.FailedStatements)
}
