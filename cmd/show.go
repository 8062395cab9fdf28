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

var showCmd = &cobra.Command{
	Use:   "show <assessment-id>",
	Short: "Show an assessment with its questions and evidence",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *assessmentuc.Service, _ ports.TokenVerifier) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		owner, _ := cmd.Flags().GetString("owner")

		loaded, err := svc.Get(ctx, owner, cmd.Flags().Arg(0))
		if err != nil {
			return errs.Wrap(err, "load assessment")
		}

		out := cmd.OutOrStdout()
		if _, err := fmt.Fprintf(out, "assessment %s  subject=%q  date=%s  completed=%t\n",
			loaded.ID, loaded.Subject, loaded.Date, loaded.Completed); err != nil {
			return errs.Wrap(err, "write show output")
		}

		for _, q := range loaded.Questions {
			answer := string(q.Answer)
			if answer == "" {
				answer = "-"
			}
			comment := ""
			if q.Comment != nil {
				comment = "  # " + *q.Comment
			}
			if _, err := fmt.Fprintf(out, "%3d. [%-3s] %s%s\n", q.Ordinal, answer, q.Prompt, comment); err != nil {
				return errs.Wrap(err, "write show output")
			}
			for _, url := range q.Images {
				if _, err := fmt.Fprintf(out, "       evidence: %s\n", url); err != nil {
					return errs.Wrap(err, "write show output")
				}
			}
		}
		return nil
	}),
}

func init() {
	assessmentCmd.AddCommand(showCmd)
}
