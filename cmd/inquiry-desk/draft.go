package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noah-isme/inquiry-desk/internal/catalog"
	"github.com/noah-isme/inquiry-desk/internal/drafts"
	"github.com/noah-isme/inquiry-desk/internal/models"
)

func newDraftCmd() *cobra.Command {
	var (
		name, program, campus, creditType, catalogFile string
	)

	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Print the student and advisor emails for one inquiry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat := catalog.Default()
			if catalogFile != "" {
				loaded, err := catalog.LoadFile(catalogFile)
				if err != nil {
					return err
				}
				cat = loaded
			}

			in := drafts.Normalize(name, program, campus, models.CreditType(creditType))
			d := drafts.NewEngine(cat).Render(in)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "=== Student email ===")
			fmt.Fprintln(out, d.Student)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "=== Advisor email ===")
			fmt.Fprintln(out, d.Advisor)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "student name")
	cmd.Flags().StringVar(&program, "program", "", "program or pathway")
	cmd.Flags().StringVar(&campus, "campus", "", "preferred campus")
	cmd.Flags().StringVar(&creditType, "credit-type", string(models.CreditTypeCredit), "Credit or Non-Credit")
	cmd.Flags().StringVar(&catalogFile, "catalog", "", "YAML catalog overriding the built-in one")
	return cmd
}
