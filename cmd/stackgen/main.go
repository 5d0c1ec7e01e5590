package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/stackgen-dev/stackgen/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╔═╗┌┬┐┌─┐┌─┐┬┌─┌─┐┌─┐┌┐┌
  ╚═╗ │ ├─┤│  ├┴┐│ ┬├┤ │││
  ╚═╝ ┴ ┴ ┴└─┘┴ ┴└─┘└─┘┘└┘
`

func main() {
	rootCmd := newRootCmd()
	rootCmd.AddCommand(
		planCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var rootDir string

	cmd := &cobra.Command{
		Use:   "stackgen",
		Short: "Scaffold a Dash + FastAPI project workspace",
		Long: `stackgen materializes a fixed project skeleton in the current directory:
a Dash Mantine frontend and a FastAPI + SQLModel backend template.

Runs are idempotent and non-destructive. Existing directories coexist
silently and existing files are never overwritten, so re-running after
you have started editing the generated code is always safe.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScaffold(rootDir)
		},
	}

	cmd.Flags().StringVar(&rootDir, "root", ".", "Target directory to scaffold into")

	return cmd
}

// printBanner prints the stackgen ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}

// errorMsg prints an error message.
func errorMsg(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %s\n", fmt.Sprintf(format, args...))
}
