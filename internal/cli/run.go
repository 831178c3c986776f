package cli

import (
	"fmt"

	"github.com/aeldan/cubescript/internal/lang/compiler"
	"github.com/aeldan/cubescript/internal/vm"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Compile and execute a cubescript source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prog, err := compiler.CompileFile(args[0])
		if err != nil {
			return fmt.Errorf("compiling %s: %w", args[0], err)
		}

		result, err := vm.New().Run(prog)
		if err != nil {
			return fmt.Errorf("running %s: %w", args[0], err)
		}

		fmt.Printf("halted: stack depth %d, memory cells used %d\n", result.StackDepth, result.MemoryUsed)
		return nil
	},
}
