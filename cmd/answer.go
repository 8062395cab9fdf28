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

var answerCmd = &cobra.Command{
	Use:   "answer <assessment-id> <question-id>",
	Short: "Record the answer for one question",
	Args:  cobra.ExactArgs(2),
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *assessmentuc.Service, _ ports.TokenVerifier) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		owner, _ := cmd.Flags().GetString("owner")
		rawAnswer, _ := cmd.Flags().GetString("answer")
		comment, _ := cmd.Flags().GetString("comment")

		answer, err := domainassessment.ParseAnswer(rawAnswer)
		if err != nil {
			return err
		}

		input := assessmentuc.UpdateAnswerInput{
			OwnerID:      owner,
			AssessmentID: cmd.Flags().Arg(0),
			QuestionID:   cmd.Flags().Arg(1),
			Answer:       answer,
		}
		if cmd.Flags().Changed("comment") {
			input.Comment = &comment
		}

		// Keep the existing evidence list; this command only touches the
		// answer and comment.
		current, err := svc.Get(ctx, owner, input.AssessmentID)
		if err != nil {
			return errs.Wrap(err, "load assessment")
		}
		for _, q := range current.Questions {
			if q.ID == input.QuestionID {
				input.Images = q.Images
				if input.Comment == nil {
					input.Comment = q.Comment
				}
			}
		}

		updated, err := svc.UpdateAnswer(ctx, input)
		if err != nil {
			return errs.Wrap(err, "update answer")
		}

		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "question %d answered %q\n", updated.Ordinal, string(updated.Answer)); err != nil {
			return errs.Wrap(err, "write answer output")
		}
		return nil
	}),
}

func init() {
	assessmentCmd.AddCommand(answerCmd)

	answerCmd.Flags().String("answer", "", "Answer value: yes, no or n/a (empty clears)")
	answerCmd.Flags().String("comment", "", "Free-text comment")
}
