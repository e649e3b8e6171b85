package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/labstack/gommon/color"
	"github.com/spf13/cobra"

	"jlox/internal"
)

// sysexits-style codes used by the driver
const (
	exitOK       = 0
	exitUsage    = 64
	exitDataErr  = 65
	exitSoftware = 70
)

var (
	cfgPath   string
	debugMode bool
	printAST  bool

	exitCode = exitOK
)

var rootCmd = &cobra.Command{
	Use:           "jlox [script]",
	Short:         "jlox — a tree-walking interpreter for the Lox language",
	Long:          "jlox runs a Lox script, or starts an interactive prompt when no script is given.",
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cfgPath)
		if debugMode || cfg.Debug {
			internal.EnableDebug()
		}
		if !cfg.Color {
			color.Disable()
		}

		switch {
		case len(args) > 1:
			fmt.Println("Usage: jlox [script]")
			exitCode = exitUsage
		case len(args) == 1:
			exitCode = runFile(args[0])
		default:
			runPrompt(cfg)
		}
	},
}

// Execute runs the driver and returns the process exit code
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("Usage: jlox [script]")
		return exitUsage
	}
	return exitCode
}

func init() {
	rootCmd.Flags().StringVar(&cfgPath, "config", "", "path to a config file (default ./"+configName+", $HOME/"+configName+")")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "enable pipeline debug tracing")
	rootCmd.Flags().BoolVar(&printAST, "ast", false, "print the parsed tree instead of executing")
}

// stdPrinter writes program output to the real streams,
// coloring diagnostics on stderr
type stdPrinter struct{}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func (s stdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	if w == os.Stderr {
		return fmt.Fprint(w, color.Red(fmt.Sprintf(format, a...)))
	}
	return fmt.Fprintf(w, format, a...)
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	if w == os.Stderr {
		return fmt.Fprintln(w, color.Red(fmt.Sprint(a...)))
	}
	return fmt.Fprintln(w, a...)
}

func runFile(path string) int {
	b, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not read file %s: %v\n", path, err)
		return exitDataErr
	}
	source := string(b)

	if printAST {
		if !internal.PrintSourceTree(source, stdPrinter{}) {
			return exitDataErr
		}
		return exitOK
	}

	hadError, hadRuntimeError := internal.RunSourceWithPrinter(source, stdPrinter{})
	if hadError {
		return exitDataErr
	}
	if hadRuntimeError {
		return exitSoftware
	}
	return exitOK
}

func runPrompt(cfg *config) {
	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(color.Green(cfg.Prompt))
		if !in.Scan() {
			fmt.Println()
			return
		}
		// A fresh run per line: one bad line must not poison
		// the lines that follow it
		internal.RunSourceWithPrinter(in.Text(), stdPrinter{})
	}
}
