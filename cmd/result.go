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

var resultCmd = &cobra.Command{
	Use:   "result <assessment-id>",
	Short: "Compute the compliance score of an assessment",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *assessmentuc.Service, _ ports.TokenVerifier) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		owner, _ := cmd.Flags().GetString("owner")

		result, err := svc.Result(ctx, owner, cmd.Flags().Arg(0))
		if err != nil {
			return errs.Wrap(err, "compute result")
		}

		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "total=%d applicable=%d yes=%d score=%d%%\n",
			result.TotalQuestions, result.ApplicableQuestions, result.YesAnswers, result.Percentage); err != nil {
			return errs.Wrap(err, "write result output")
		}
		return nil
	}),
}

func init() {
	assessmentCmd.AddCommand(resultCmd)
}
