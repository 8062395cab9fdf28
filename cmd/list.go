package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"sitecheck/internal/bootstrap"
	"sitecheck/internal/bootstrap/logging"
	domainassessment "sitecheck/internal/domain/assessment"
	"sitecheck/internal/errs"
	"sitecheck/internal/ports"
	assessmentuc "sitecheck/internal/usecase/assessment"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the owner's assessments, most recent first",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *assessmentuc.Service, _ ports.TokenVerifier) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		owner, _ := cmd.Flags().GetString("owner")

		items, err := svc.List(ctx, owner)
		if err != nil {
			return errs.Wrap(err, "list assessments")
		}

		for _, item := range items {
			state := "draft"
			if item.Completed {
				state = "completed"
			} else if domainassessment.CountUnanswered(item) == 0 {
				state = "ready"
			}

			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %-9s  %q\n",
				item.ID, item.Date, state, item.Subject); err != nil {
				return errs.Wrap(err, "write list output")
			}
		}
		return nil
	}),
}

func init() {
	assessmentCmd.AddCommand(listCmd)
}
