package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "inquiry-desk",
		Short: "Draft inquiry emails and track prospective student interest",
		Long: `inquiry-desk serves the staff API for the program inquiry form.
It drafts the student reply and the advisor notice, stores each inquiry
and reports on them by campus and program.`,
		SilenceUsage: true,
	}

	root.AddCommand(newServeCmd(), newMigrateCmd(), newDraftCmd())
	return root
}
