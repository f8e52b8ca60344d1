package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// PrintErrorMessage prints a standard Go error to the console.
func PrintErrorMessage(tag string, err error) {
	ErrorStyleBG.Print(tag)
	ErrorColorFG.Println(" " + err.Error())
}

// PrintWarningMessage prints a warning message to the console.
func PrintWarningMessage(tag, msg string) {
	WarnStyleBG.Print(tag)
	WarnColorFG.Println(" " + msg)
}

// PrintInfoMessage prints an informational message to the user.
func PrintInfoMessage(tag, msg string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + msg)
}

// -----------------------------------------------------------------------------

const icePostlude = `This error is a bug in the compiler.
Please open an issue on Github: github.com/ComedicChimera/rowan`

// displayICE displays an internal compiler error message.
func displayICE(message string) {
	fmt.Print("\n")
	ErrorStyleBG.Print("Internal Compiler Error")
	ErrorColorFG.Println(" " + message)
	InfoColorFG.Println(icePostlude)
}

// displayFatal displays a fatal error message.
func displayFatal(message string) {
	fmt.Print("\n")
	ErrorStyleBG.Print("Fatal Error")
	ErrorColorFG.Println(" " + message)
}

// displayModuleMessage displays an error or warning related to a module.
func displayModuleMessage(isError bool, modName, message string) {
	if isError {
		ErrorStyleBG.Print("Module Error")
		ErrorColorFG.Println(fmt.Sprintf(" [%s] %s", modName, message))
	} else {
		WarnStyleBG.Print("Module Warning")
		WarnColorFG.Println(fmt.Sprintf(" [%s] %s", modName, message))
	}
}

// displaySourceMessage displays an error or warning in a piece of source text.
// The label is the string to prefix the message with: eg. if we want to
// display an error, the label is "error".
func displaySourceMessage(label, src, reprPath string, span *TextSpan, message string) {
	if span == nil {
		fmt.Printf("%s: %s: %s\n\n", reprPath, label, message)
		return
	}

	fmt.Printf("%s:%d:%d: ", reprPath, span.StartLine+1, span.StartCol+1)

	if label == "error" {
		ErrorColorFG.Print(label)
	} else {
		WarnColorFG.Print(label)
	}

	fmt.Printf(": %s\n\n", message)

	displaySourceText(src, span)
}

// displaySourceText displays the segment of the given source text defined by a
// text span, underlining the spanned region with carets.
func displaySourceText(src string, span *TextSpan) {
	// Collect all the source lines containing the given source text.
	var lines []string
	for ln, line := range strings.Split(src, "\n") {
		if span.StartLine <= ln && ln <= span.EndLine {
			lines = append(lines, strings.ReplaceAll(line, "\t", "    "))
		}
	}

	// Calculate the minimum line indentation.
	minIndent := -1
	for _, line := range lines {
		lineIndent := 0
		for _, c := range line {
			if c == ' ' {
				lineIndent++
			} else {
				break
			}
		}

		if minIndent == -1 || lineIndent < minIndent {
			minIndent = lineIndent
		}
	}

	// Calculate the maximum line number length and use it to generate the
	// format string for the line number gutter.
	maxLineNumLen := len(strconv.Itoa(span.EndLine + 1))
	lineNumFmtStr := "%-" + strconv.Itoa(maxLineNumLen) + "v | "

	for i, line := range lines {
		// Print the line number and separator bar followed by the source text
		// with the leading indent trimmed off.
		InfoColorFG.Print(fmt.Sprintf(lineNumFmtStr, i+span.StartLine+1))
		fmt.Println(line[minIndent:])

		fmt.Print(strings.Repeat(" ", maxLineNumLen), " | ")

		// Calculate the number of spaces before caret underlining begins.  For
		// any line which is not the starting line, this is always zero since
		// the underlining is always continuing from the previous line.
		var caretPrefixCount int
		if i == 0 {
			caretPrefixCount = span.StartCol - minIndent
		}

		// Calculate the number of characters at the end of the source line
		// that should not be underlined.  This is only ever nonzero on the
		// last line: underlining on all other lines continues to the line end.
		var caretSuffixCount int
		if i == len(lines)-1 {
			caretSuffixCount = len(line) - 1 - span.EndCol
		}

		fmt.Print(strings.Repeat(" ", caretPrefixCount))
		ErrorColorFG.Println(strings.Repeat("^", len(line)-caretSuffixCount-caretPrefixCount-minIndent))
	}

	fmt.Println()
}
