package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"sitecheck/internal/bootstrap"
	"sitecheck/internal/bootstrap/logging"
	"sitecheck/internal/errs"
	"sitecheck/internal/ports"
	assessmentuc "sitecheck/internal/usecase/assessment"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new assessment from the question template",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *assessmentuc.Service, _ ports.TokenVerifier) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		owner, _ := cmd.Flags().GetString("owner")
		subject, _ := cmd.Flags().GetString("subject")

		created, err := svc.Create(ctx, assessmentuc.CreateInput{
			OwnerID: owner,
			Subject: subject,
		})
		if err != nil {
			return errs.Wrap(err, "create assessment")
		}

		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "assessment created id=%s subject=%q questions=%d\n",
			created.ID, created.Subject, len(created.Questions)); err != nil {
			return errs.Wrap(err, "write create output")
		}
		return nil
	}),
}

func init() {
	assessmentCmd.AddCommand(createCmd)

	createCmd.Flags().String("subject", "", "Subject label, e.g. a site or store name")
	_ = createCmd.MarkFlagRequired("subject")
}
