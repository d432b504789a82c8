package outwriter

import (
	"os"

	"golang.org/x/term"
)

// getMaxTableNameWidth calculates the maximum width for entity names in table
// output based on the detected terminal width.
func getMaxTableNameWidth() int {
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || termWidth <= 0 {
		// Fallback to conservative default if terminal size can't be detected
		termWidth = 80 // Conservative default for narrow terminals and CI
	}

	// Reserve space for rank, type/version, count columns with borders/padding
	baseWidth := 35

	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable name width
		return 15
	}
	if available > 60 {
		// Maximum name width to prevent overly wide tables
		return 60
	}
	return available
}
