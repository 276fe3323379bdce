package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌┬┐┬┌─┐┌┬┐┌┬┐┌─┐┬─┐┬┌─
   ││││   │ │││├─┤├┬┘├┴┐
  ─┴┘┴└─┘ ┴ ┴ ┴┴ ┴┴└─┴ ┴
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "dictmark",
		Short: "Render dictionary entries to display markup",
		Long: `Dictmark renders dictionary entry XML into display markup driven by
a declarative display profile.

A profile is an ordered rule list: per node type it sets output order,
wrapper and class, decorations, visibility, grouping and filtering, an
optional forced language and an extraction aspect. Rendering is tolerant:
malformed entries degrade to recovered text instead of failing.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		renderCmd(),
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
