package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cubescript",
	Short: "A Rubik's-cube-notation esoteric language",
	Long: `cubescript compiles and runs programs written entirely in Rubik's
cube move notation. Every value the language manipulates is a 3x3x3
cube; bytecode opcodes are decoded from the arithmetic sum of a cube's
U face at each commit.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(disasmCmd)
	rootCmd.AddCommand(serveCmd)
}
