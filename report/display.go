package report

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

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

// ReportCompileError reports a diagnostic produced against a known source
// file.
func ReportCompileError(path string, diag *Diagnostic) {
	if rep == nil || rep.logLevel <= LogLevelSilent {
		return
	}

	rep.m.Lock()
	defer rep.m.Unlock()
	rep.isErr = true

	displayBanner("Error", path)
	fmt.Println(diag.Chain())

	if diag.Span != nil {
		displaySourceText(path, diag.Span)
	}
}

// ReportCompileWarning reports a non-fatal diagnostic.
func ReportCompileWarning(path string, diag *Diagnostic) {
	if rep == nil || rep.logLevel < LogLevelWarn {
		return
	}

	rep.m.Lock()
	defer rep.m.Unlock()

	displayBanner("Warning", path)
	fmt.Println(diag.Chain())

	if diag.Span != nil {
		displaySourceText(path, diag.Span)
	}
}

// ReportStdError reports a non-diagnostic Go error (I/O, config, etc.)
// encountered while processing path.
func ReportStdError(path string, err error) {
	if rep == nil || rep.logLevel <= LogLevelSilent {
		return
	}

	rep.m.Lock()
	defer rep.m.Unlock()
	rep.isErr = true

	ErrorStyleBG.Print(" Error ")
	ErrorColorFG.Printf(" %s: %s\n", path, err.Error())
}

// ReportFatal reports a fatal, toolchain-level error and exits.
func ReportFatal(msg string, args ...interface{}) {
	if rep != nil {
		rep.isErr = true
	}

	ErrorStyleBG.Print(" Fatal ")
	ErrorColorFG.Println(" " + fmt.Sprintf(msg, args...))
	os.Exit(1)
}

// DisplayInfoMessage prints a tagged informational message.
func DisplayInfoMessage(tag, msg string) {
	InfoStyleBG.Print(" " + tag + " ")
	InfoColorFG.Println(" " + msg)
}

// -----------------------------------------------------------------------------

func displayBanner(label, path string) {
	fmt.Print("\n-- ")
	if label == "Error" {
		ErrorStyleBG.Print(label)
	} else {
		WarnStyleBG.Print(label)
	}

	bannerLen := pterm.GetTerminalWidth() / 2
	if bannerLen > 50 {
		bannerLen = 50
	}
	dashCount := bannerLen - len(path) - len(label) - 2
	if dashCount < 1 {
		dashCount = 1
	}

	fmt.Print(" " + strings.Repeat("-", dashCount) + " ")
	InfoColorFG.Println(path)
}

// displaySourceText prints the source lines spanned by span, underlined with
// carets, in the teacher's line-number-gutter style.
func displaySourceText(path string, span *TextSpan) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for ln := 0; sc.Scan(); ln++ {
		if span.StartLine <= ln && ln <= span.EndLine {
			lines = append(lines, strings.ReplaceAll(sc.Text(), "\t", "    "))
		}
	}

	if len(lines) == 0 {
		return
	}

	maxLineNumLen := len(strconv.Itoa(span.EndLine + 1))
	lineNumFmtStr := "%-" + strconv.Itoa(maxLineNumLen) + "v | "

	for i, line := range lines {
		fmt.Printf(lineNumFmtStr, i+span.StartLine+1)
		fmt.Println(line)

		fmt.Print(strings.Repeat(" ", maxLineNumLen), " | ")

		var prefix int
		if i == 0 {
			prefix = span.StartCol
		}

		var caretLen int
		if i == len(lines)-1 {
			caretLen = span.EndCol - prefix
		} else {
			caretLen = len(line) - prefix
		}
		if caretLen < 1 {
			caretLen = 1
		}

		fmt.Print(strings.Repeat(" ", prefix))
		ErrorColorFG.Println(strings.Repeat("^", caretLen))
	}

	fmt.Println()
}

// -----------------------------------------------------------------------------
// Phase spinners, used by the cmd package to narrate preprocess/parse/
// evaluate progress.

var (
	phaseSpinner   *pterm.SpinnerPrinter
	currentPhase   string
	phaseStartTime time.Time
)

const maxPhaseLength = len("Preprocessing")

// BeginPhase displays the start of a toolchain phase (e.g. "parsing main").
// Phase text longer than maxPhaseLength+2 is printed without padding.
func BeginPhase(phase string) {
	if rep == nil || rep.logLevel < LogLevelVerbose {
		return
	}

	currentPhase = phase
	pad := maxPhaseLength - len(phase) + 2
	if pad < 0 {
		pad = 0
	}
	text := phase + "..." + strings.Repeat(" ", pad)
	phaseSpinner = pterm.DefaultSpinner.WithStyle(pterm.NewStyle(InfoColorFG))
	phaseSpinner.SuccessPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix:       pterm.Prefix{Style: SuccessStyleBG, Text: "Done"},
	}
	phaseSpinner.FailPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix:       pterm.Prefix{Style: ErrorStyleBG, Text: "Fail"},
	}

	phaseSpinner.Start(text)
	phaseStartTime = time.Now()
}

// EndPhase displays the end of the current toolchain phase.
func EndPhase(success bool) {
	if phaseSpinner == nil {
		return
	}

	pad := maxPhaseLength - len(currentPhase) + 2
	if pad < 0 {
		pad = 0
	}
	label := currentPhase + strings.Repeat(" ", pad)
	if success {
		phaseSpinner.Success(label, fmt.Sprintf("(%.3fs)", time.Since(phaseStartTime).Seconds()))
	} else {
		phaseSpinner.Fail(label)
	}

	phaseSpinner = nil
}
