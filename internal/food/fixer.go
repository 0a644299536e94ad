package food

import (
	"fmt"
	"os"
	"strings"
)

// Result summarizes one fixer pass.
type Result struct {
	Lines     int // input lines seen
	Rewritten int // candidate lines converted to the merged-serving format
	Skipped   int // candidate lines that failed the shape check, passed through
}

// Fix rewrites every legacy 13-column tuple line in input to the 12-column
// merged-serving format. Every other line, including candidates that fail to
// parse, passes through byte-identical. Skipped candidates are counted so the
// caller can surface them.
func Fix(input string) (string, Result) {
	var out strings.Builder
	var res Result

	for _, line := range splitLines(input) {
		res.Lines++
		fixed, rewrote, candidate := fixLine(line)
		if candidate && !rewrote {
			res.Skipped++
		}
		if rewrote {
			res.Rewritten++
		}
		out.WriteString(fixed)
	}

	return out.String(), res
}

// FixFile runs Fix on inputPath and writes the result to outputPath.
func FixFile(inputPath, outputPath string) (Result, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read %s: %w", inputPath, err)
	}

	fixed, res := Fix(string(data))

	if err := os.WriteFile(outputPath, []byte(fixed), 0644); err != nil {
		return Result{}, fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	return res, nil
}

// fixLine converts one line. A line is a candidate only if its stripped form
// starts with ('. Rewritten lines get two leading spaces, the original
// trailing comma or semicolon, and a newline.
func fixLine(line string) (out string, rewrote, candidate bool) {
	if !strings.HasPrefix(strings.TrimSpace(line), "('") {
		return line, false, false
	}

	tuple, ok := ParseTuple(line)
	if !ok {
		return line, false, true
	}

	desc := FormatServing(tuple.ServingSize, tuple.ServingUnit)
	fixed := fmt.Sprintf("  ('%s', '%s', '%s', %s, %s, %s, %s, %s, %s, '%s', '%s', '%s')",
		tuple.Name, tuple.Brand, desc,
		tuple.Calories, tuple.Protein, tuple.Carbs, tuple.Fat, tuple.Fiber, tuple.Sugar,
		tuple.Category, tuple.Source, tuple.Status)

	trimmed := strings.TrimRight(line, " \t\r\n")
	if strings.HasSuffix(trimmed, ",") {
		fixed += ","
	} else if strings.HasSuffix(trimmed, ";") {
		fixed += ";"
	}

	return fixed + "\n", true, true
}

// splitLines splits after each newline, keeping terminators, like reading a
// file line by line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
