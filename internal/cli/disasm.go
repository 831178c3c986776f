package cli

import (
	"fmt"

	"github.com/aeldan/cubescript/internal/lang/codegen"
	"github.com/aeldan/cubescript/internal/lang/compiler"
	"github.com/spf13/cobra"
)

var disasmCmd = &cobra.Command{
	Use:   "disasm <file>",
	Short: "Compile a cubescript source file and print its bytecode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prog, err := compiler.CompileFile(args[0])
		if err != nil {
			return fmt.Errorf("compiling %s: %w", args[0], err)
		}
		for i, word := range prog.Words {
			fmt.Printf("%4d  0x%04X  %s\n", i, word, mnemonic(word))
		}
		return nil
	},
}

// primitiveMnemonic names bytecode words 0-26, in the order fixed by
// spec.md 3.
var primitiveMnemonic = [...]string{
	"U", "U'", "U2", "F", "F'", "F2", "R", "R'", "R2",
	"B", "B'", "B2", "L", "L'", "L2", "D", "D'", "D2",
	"X", "X'", "X2", "Y", "Y'", "Y2", "Z", "Z'", "Z2",
}

func mnemonic(word uint16) string {
	if int(word) < len(primitiveMnemonic) {
		return primitiveMnemonic[word]
	}
	switch word {
	case codegen.WordSOF:
		return "SOF"
	case codegen.WordAsterisk:
		return "*"
	case codegen.WordComma:
		return ","
	case codegen.WordSemicolon:
		return ";"
	case codegen.WordJump:
		return "jmp"
	case codegen.WordCondJump:
		return "jnz"
	default:
		return ""
	}
}
