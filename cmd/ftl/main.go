/*
Command ftl is the FortyTwo-Lang front-end driver: `fmt`, `compile`, and
`run` subcommands over a source file, plus a `check` subcommand that
drops into an interactive parse+typecheck session (spec.md §6,
SPEC_FULL.md §6).

Usage:

	ftl fmt FILE       parse + check FILE, print canonical FTL to stdout
	ftl compile FILE   as above, then emit FILE.c and invoke cc on it
	ftl run FILE       as compile, then exec the produced binary
	ftl check          start an interactive checking session
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/ftlang/ftl/replcheck"
)

var (
	redColor   = color.New(color.FgRed)
	greenColor = color.New(color.FgGreen)
	cyanColor  = color.New(color.FgCyan)
)

const (
	replBanner  = "FortyTwo-Lang (FTL) interactive checker"
	replVersion = "v1.0.0"
	replAuthor  = "ftlang"
	replLicense = "MIT"
	replLine    = "----------------------------------------------------------------"
	replPrompt  = "ftl check >>> "
)

func main() {
	flag.Usage = showHelp
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		showHelp()
		os.Exit(1)
	}

	var err error
	switch args[0] {
	case "fmt":
		err = requireFile(args, runFmt)
	case "compile":
		err = requireFile(args, runCompile)
	case "run":
		err = requireFile(args, runRun)
	case "check":
		err = runCheck()
	case "-h", "--help", "help":
		showHelp()
		return
	default:
		redColor.Fprintf(os.Stderr, "ftl: unknown subcommand %q\n", args[0])
		showHelp()
		os.Exit(1)
	}

	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func requireFile(args []string, run func(path string) error) error {
	if len(args) < 2 {
		return fmt.Errorf("ftl %s: missing FILE argument", args[0])
	}
	return run(args[1])
}

func runCheck() error {
	r := replcheck.New(replBanner, replVersion, replAuthor, replLine, replLicense, replPrompt)
	return r.Start(os.Stdout)
}

func showHelp() {
	cyanColor.Println("ftl - the FortyTwo-Lang front-end toolchain")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	fmt.Println("  ftl fmt FILE        parse + check FILE, print canonical FTL to stdout")
	fmt.Println("  ftl compile FILE    as above, then emit FILE.c and invoke cc")
	fmt.Println("  ftl run FILE        as compile, then exec the produced binary")
	fmt.Println("  ftl check           start an interactive parse+typecheck session")
	fmt.Println("  ftl --help          show this help message")
}
