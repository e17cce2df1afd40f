package cmd

import (
	"github.com/spf13/cobra"

	"github.com/minkyu-lab/site-factory/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "버전 정보 표시",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("site-factory 버전: %s\n", version.GetVersion())

		if version.GetBuildDate() != "unknown" {
			cmd.Printf("빌드 날짜: %s\n", version.GetBuildDate())
		}
		if version.GetGitCommit() != "unknown" {
			cmd.Printf("Git 커밋: %s\n", version.GetGitCommit())
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
