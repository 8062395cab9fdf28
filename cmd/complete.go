package cmd

import (
	"errors"
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

var completeCmd = &cobra.Command{
	Use:   "complete <assessment-id>",
	Short: "Mark an assessment completed once every question is answered",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *assessmentuc.Service, _ ports.TokenVerifier) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		owner, _ := cmd.Flags().GetString("owner")
		assessmentID := cmd.Flags().Arg(0)

		if err := svc.Complete(ctx, owner, assessmentID); err != nil {
			var incomplete *domainassessment.IncompleteError
			if errors.As(err, &incomplete) {
				return fmt.Errorf("cannot complete: %d questions still unanswered", incomplete.Remaining)
			}
			return errs.Wrap(err, "complete assessment")
		}

		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "assessment %s completed\n", assessmentID); err != nil {
			return errs.Wrap(err, "write complete output")
		}
		return nil
	}),
}

func init() {
	assessmentCmd.AddCommand(completeCmd)
}
