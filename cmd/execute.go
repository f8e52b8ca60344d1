// Package cmd is the top-level driver package for the `rowanc` tool: it
// parses command-line arguments and runs the requested compiler phases.
package cmd

import (
	"os"
	"path/filepath"

	"rowanc/common"
	"rowanc/depm"
	"rowanc/report"

	"github.com/ComedicChimera/olive"
)

// logLevels maps selector argument values to reporter log levels.
var logLevels = map[string]int{
	"silent":  report.LogLevelSilent,
	"error":   report.LogLevelError,
	"warn":    report.LogLevelWarn,
	"verbose": report.LogLevelVerbose,
}

// Execute runs the main `rowanc` application
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("rowanc", "rowanc is a tool for managing Rowan modules and code", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	lookupCmd := cli.AddSubcommand("lookup", "resolve a member access", true)
	lookupCmd.AddPrimaryArg("query", "the member access to resolve, written `recv.member`", true)
	lookupCmd.AddStringArg("mod-path", "m", "the path to the module to resolve within", false)
	lookupCmd.AddFlag("static", "s", "access the member through the type itself rather than an instance")
	lookupCmd.AddFlag("byref", "r", "access the member through a mutable reference")

	modCmd := cli.AddSubcommand("mod", "manage modules", true)
	modInitCmd := modCmd.AddSubcommand("init", "initialize a module", true)
	modInitCmd.AddStringArg("name", "n", "the name of the new module", false)
	modInitCmd.AddPrimaryArg("module-path", "the path to the module directory", true)

	cli.AddSubcommand("version", "print the Rowan version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.PrintErrorMessage("CLI Usage Error", err)
		return
	}

	report.InitReporter(logLevels[result.Arguments["loglevel"].(string)])

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "lookup":
		execLookupCommand(subResult)
	case "mod":
		execModCommand(subResult)
	case "version":
		report.PrintInfoMessage("Rowan Version", common.RowanVersion)
	}

	if report.AnyErrors() {
		os.Exit(1)
	}
}

// execModCommand executes the `mod` subcommand and its subcommands.  It
// handles all errors related to this command.
func execModCommand(result *olive.ArgParseResult) {
	subcmdName, subResult, _ := result.Subcommand()

	switch subcmdName {
	case "init":
		modRelPath, _ := subResult.PrimaryArg()

		modPath, err := filepath.Abs(modRelPath)
		if err != nil {
			report.PrintErrorMessage("Path Error", err)
			return
		}

		// the module is named after its directory unless a name is given
		modName := filepath.Base(modPath)
		if nameArgVal, ok := subResult.Arguments["name"]; ok {
			modName = nameArgVal.(string)
		}

		if err := depm.InitModule(modName, modPath); err != nil {
			report.PrintErrorMessage("Module Init Error", err)
			return
		}

		report.PrintInfoMessage("Module Created", modName)
	}
}
