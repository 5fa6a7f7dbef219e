package cli

import (
	"fmt"

	"github.com/alexanderramin/skilltrade/internal/cli/formatter"
	"github.com/alexanderramin/skilltrade/internal/domain"
	"github.com/spf13/cobra"
)

func newCertificateCmd(app *App) *cobra.Command {
	var candidate string

	cmd := &cobra.Command{
		Use:     "certificates",
		Aliases: []string{"certificate", "certs"},
		Short:   "Completion certificates",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List issued certificates",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				certs []*domain.Certificate
				err   error
			)
			if candidate != "" {
				certs, err = app.Certificates.ListByCandidate(cmd.Context(), candidate)
			} else {
				certs, err = app.Certificates.List(cmd.Context())
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCertificateList(certs))
			return nil
		},
	}
	list.Flags().StringVar(&candidate, "candidate", "", "Only certificates held by this candidate")
	cmd.AddCommand(list)

	return cmd
}

func newEscrowCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "escrow",
		Short: "Escrow transactions",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List escrow transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				txs []*domain.EscrowTransaction
				err error
			)
			if project != "" {
				txs, err = app.Escrow.ListByProject(cmd.Context(), project)
			} else {
				txs, err = app.Escrow.List(cmd.Context())
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatEscrowList(txs))
			return nil
		},
	}
	list.Flags().StringVar(&project, "project", "", "Only transactions for this project")
	cmd.AddCommand(list)

	return cmd
}
