package cmd

import (
	"github.com/spf13/cobra"
)

var assessmentCmd = &cobra.Command{
	Use:   "assessment",
	Short: "Manage inspection assessments",
}

func init() {
	rootCmd.AddCommand(assessmentCmd)

	assessmentCmd.PersistentFlags().String("owner", "", "Acting user identifier")
	_ = assessmentCmd.MarkPersistentFlagRequired("owner")
}
