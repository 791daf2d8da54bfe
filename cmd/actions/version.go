package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Allorak/actions"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of actions",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("actions version %s\n", strings.TrimSpace(actions.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
