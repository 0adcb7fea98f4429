package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	ansiReset  = "\x1b[0m"
	ansiYellow = "\x1b[33m"
)

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func warnLine(message string, colorize bool) string {
	line := "warning: " + message
	if colorize {
		return ansiYellow + line + ansiReset
	}
	return line
}

// typeLabel turns a hyphenated clip type into a display label, e.g.
// "visual-asset" becomes "Visual Asset".
func typeLabel(clipType string) string {
	spaced := strings.ReplaceAll(strings.TrimSpace(clipType), "-", " ")
	return cases.Title(language.Und).String(spaced)
}

func formatSeconds(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64) + "s"
}

func formatPixels(value float64) string {
	return fmt.Sprintf("%.1fpx", value)
}

// writeJSON renders v as indented JSON on the command's stdout, shared by
// every subcommand's --json mode.
func writeJSON(cmd *cobra.Command, v any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
