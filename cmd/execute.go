package cmd

import (
	"fmt"
	"os"

	"github.com/ComedicChimera/olive"

	"github.com/ayzg/candi/ast"
	"github.com/ayzg/candi/common"
	"github.com/ayzg/candi/eval"
	"github.com/ayzg/candi/mod"
	"github.com/ayzg/candi/parser"
	"github.com/ayzg/candi/report"
	"github.com/ayzg/candi/token"
)

// Execute is the main entry point for the `candic` CLI utility.
func Execute() {
	cli := olive.NewCLI("candic", "candic is a tool for running and inspecting Candi source", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the toolchain log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	runCmd := cli.AddSubcommand("run", "evaluate a Candi file or module", true)
	runCmd.AddPrimaryArg("path", "the path to a source file or module directory", true)

	tokensCmd := cli.AddSubcommand("tokens", "print the token stream for a file", true)
	tokensCmd.AddPrimaryArg("file", "the path to a source file", true)

	astCmd := cli.AddSubcommand("ast", "print the parsed AST for a file", true)
	astCmd.AddPrimaryArg("file", "the path to a source file", true)

	modCmd := cli.AddSubcommand("mod", "manage Candi modules", true)
	modInitCmd := modCmd.AddSubcommand("init", "initialize a module", true)
	modInitCmd.AddPrimaryArg("name", "the name of the new module", true)

	cli.AddSubcommand("version", "print the Candi toolchain version", false)

	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.ReportFatal(err.Error())
		return
	}

	report.InitReporter(logLevelFromArg(result.Arguments["loglevel"]))

	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "run":
		execRunCommand(subResult)
	case "tokens":
		execTokensCommand(subResult)
	case "ast":
		execAstCommand(subResult)
	case "mod":
		execModCommand(subResult)
	case "version":
		report.DisplayInfoMessage("Candi Version", common.CandiVersion)
	}
}

func logLevelFromArg(v interface{}) int {
	s, _ := v.(string)
	switch s {
	case "silent":
		return report.LogLevelSilent
	case "error":
		return report.LogLevelError
	case "warn":
		return report.LogLevelWarn
	default:
		return report.LogLevelVerbose
	}
}

// execRunCommand loads the target module, runs the lex/preprocess/parse
// pipeline over its entry file, and evaluates the resulting AST, printing the
// final runtime value (§6 `candic run`).
func execRunCommand(result *olive.ArgParseResult) {
	path, _ := result.PrimaryArg()

	m, err := loadModuleOrDefault(path)
	if err != nil {
		report.ReportStdError(path, err)
		return
	}

	report.BeginPhase("preprocessing " + m.Name)
	toks, err := preprocessedTokens(m)
	report.EndPhase(err == nil)
	if err != nil {
		report.ReportStdError(m.EntryPath(), err)
		return
	}

	report.BeginPhase("parsing " + m.Name)
	root, err := parser.Parse(toks)
	report.EndPhase(err == nil)
	if err != nil {
		if diag, ok := err.(*report.Diagnostic); ok {
			report.ReportCompileError(m.EntryPath(), diag)
		} else {
			report.ReportStdError(m.EntryPath(), err)
		}
		return
	}

	report.BeginPhase("evaluating " + m.Name)
	result2, err := eval.NewEvaluator().Run(root)
	report.EndPhase(err == nil)
	if err != nil {
		if diag, ok := err.(*report.Diagnostic); ok {
			report.ReportCompileError(m.EntryPath(), diag)
		} else {
			report.ReportStdError(m.EntryPath(), err)
		}
		return
	}

	report.DisplayInfoMessage("Result", result2.String())
}

// execTokensCommand dumps the raw (pre-preprocessing) token stream of a
// single file (§6 `candic tokens`).
func execTokensCommand(result *olive.ArgParseResult) {
	path, _ := result.PrimaryArg()
	toks, err := tokenizeFile(path)
	if err != nil {
		report.ReportStdError(path, err)
		return
	}
	for _, t := range toks {
		fmt.Printf("%-20s %q\n", token.KindName(t.Kind), t.Literal)
	}
}

// execAstCommand parses a single file's entry-point module (no #include
// resolution across other files) and prints its AST depth-first (§6
// `candic ast`).
func execAstCommand(result *olive.ArgParseResult) {
	path, _ := result.PrimaryArg()
	toks, err := tokenizeFile(path)
	if err != nil {
		report.ReportStdError(path, err)
		return
	}

	root, err := parser.Parse(toks)
	if err != nil {
		if diag, ok := err.(*report.Diagnostic); ok {
			report.ReportCompileError(path, diag)
		} else {
			report.ReportStdError(path, err)
		}
		return
	}
	printAstNode(root, 0)
}

// printAstNode renders an AST depth-first with indentation, one line per
// node (§6 `candic ast` tooling surface).
func printAstNode(n *ast.Node, depth int) {
	if n == nil {
		return
	}
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	if n.Literal != "" {
		fmt.Printf("%s%s %q\n", indent, n.Kind, n.Literal)
	} else {
		fmt.Printf("%s%s\n", indent, n.Kind)
	}
	for _, c := range n.Children {
		printAstNode(c, depth+1)
	}
}

// execModCommand executes the `mod` subcommand and its subcommands.
func execModCommand(result *olive.ArgParseResult) {
	subcmdName, subResult, _ := result.Subcommand()
	workDir, err := os.Getwd()
	if err != nil {
		report.ReportStdError("", err)
		return
	}

	switch subcmdName {
	case "init":
		name, _ := subResult.PrimaryArg()
		if err := mod.Init(name, workDir); err != nil {
			report.ReportStdError(workDir, err)
		}
	}
}
