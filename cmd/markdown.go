package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown to the terminal, falling back to the raw
// source when the renderer cannot run (e.g. output is not a terminal).
func printMarkdown(source string) {
	out, err := glamour.Render(source, "dark")
	if err != nil {
		fmt.Print(source)
		return
	}
	fmt.Print(out)
}
