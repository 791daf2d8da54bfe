package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Allorak/actions/internal/wiring"
)

var validateCmd = &cobra.Command{
	Use:   "validate <manifest>",
	Short: "Check a wiring manifest for signature mismatches",
	Long:  `Resolves the declared argument and parameter types in a YAML wiring manifest and reports every handler that could not be connected under the error safety level.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(args[0]); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Wiring is compatible! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(path string) error {
	manifest, err := wiring.LoadFile(path)
	if err != nil {
		return err
	}
	return manifest.Check()
}
