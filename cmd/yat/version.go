package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deduu/Youtube-audio-transcription/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the yat version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("yat", version.Get().String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
