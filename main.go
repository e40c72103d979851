package main

import (
	"os"

	"fjacquet/camt-import/cmd/account"
	"fjacquet/camt-import/cmd/export"
	"fjacquet/camt-import/cmd/importer"
	"fjacquet/camt-import/cmd/root"
)

func init() {
	root.Init()
	importer.Init()
	export.Init()

	root.Cmd.AddCommand(importer.Cmd)
	root.Cmd.AddCommand(account.Cmd)
	root.Cmd.AddCommand(export.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
