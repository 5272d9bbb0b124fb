// Package terminal provides small terminal manipulation helpers.
package terminal

import (
	"fmt"
	"math"
	"os"

	"golang.org/x/term"
)

// ClearPreviousLines erases text that was just printed, e.g. a prompt plus
// the user's submitted input, so it can be re-rendered in a formatted form.
// textLength is the total number of characters on screen (prompt + input);
// line wrapping is computed from the current terminal width.
func ClearPreviousLines(textLength int) {
	termWidth := 80 // fallback when not a tty
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		termWidth = width
	}

	totalLines := int(math.Ceil(float64(textLength) / float64(termWidth)))
	if totalLines < 1 {
		totalLines = 1
	}

	// After Enter the cursor sits on a fresh line below the input; clear that
	// one too.
	linesToClear := totalLines + 1
	for i := 0; i < linesToClear; i++ {
		fmt.Print("\r\x1b[2K")
		if i < linesToClear-1 {
			fmt.Print("\x1b[1A")
		}
	}
}
