package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"sitecheck/internal/bootstrap"
	"sitecheck/internal/bootstrap/logging"
	"sitecheck/internal/errs"
	"sitecheck/internal/ports"
	assessmentuc "sitecheck/internal/usecase/assessment"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <assessment-id> <question-id> <image-file>",
	Short: "Attach a photo as evidence for one question",
	Args:  cobra.ExactArgs(3),
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *assessmentuc.Service, _ ports.TokenVerifier) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		owner, _ := cmd.Flags().GetString("owner")

		data, err := os.ReadFile(cmd.Flags().Arg(2))
		if err != nil {
			return errs.Wrap(err, "read image file")
		}

		url, err := svc.UploadEvidence(ctx, assessmentuc.UploadEvidenceInput{
			OwnerID:      owner,
			AssessmentID: cmd.Flags().Arg(0),
			QuestionID:   cmd.Flags().Arg(1),
			Data:         data,
		})
		if err != nil {
			return errs.Wrap(err, "upload evidence")
		}

		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "evidence stored: %s\n", url); err != nil {
			return errs.Wrap(err, "write upload output")
		}
		return nil
	}),
}

func init() {
	assessmentCmd.AddCommand(uploadCmd)
}
