// Package compiler turns cubescript source text into a compiled
// bytecode Program, owning the one piece of I/O the lexer and code
// generator don't: reading lines from a file.
package compiler

import (
	"bufio"
	"fmt"
	"os"

	"github.com/aeldan/cubescript/internal/lang/codegen"
	"github.com/aeldan/cubescript/internal/lang/token"
)

// Compile lexes and generates bytecode for lines already held in
// memory. Shared by CompileFile and anything (tests, the HTTP
// handler) that has source text without a backing file.
func Compile(lines []string) (codegen.Program, error) {
	return codegen.Generate(token.Lex(lines))
}

// CompileFile reads path line by line and compiles it.
func CompileFile(path string) (codegen.Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return codegen.Program{}, fmt.Errorf("compiler: opening %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return codegen.Program{}, fmt.Errorf("compiler: reading %s: %w", path, err)
	}

	return Compile(lines)
}
