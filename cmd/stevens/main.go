package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"codeberg.org/snonux/stevens/internal/cli"
	"codeberg.org/snonux/stevens/internal/models"
	"codeberg.org/snonux/stevens/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		if flags.Verbose {
			log.SetLevel(log.DebugLevel)
		}
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Execute command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	cli.ApplyConfig(cmd, flags)
	logger := cli.NewLogger(os.Stderr, flags.Verbose)
	ctx := cmd.Context()

	// Handle --archive flag
	if flags.Archive {
		return processor.ArchiveDatabase(flags.DBPath, logger)
	}

	// Handle --list-languages flag
	if flags.ListLanguages {
		processor.ListLanguages(os.Stdout)
		return nil
	}

	// Handle --list-models flag
	if flags.ListModels {
		creds, err := cli.LoadCredentials()
		if err != nil {
			return err
		}
		lister := models.NewLister(creds.OpenAIKey, creds.OpenAIBaseURL)
		return lister.ListAvailableModels(ctx, os.Stdout, flags.OpenAIModel)
	}

	// Create processor
	proc, err := processor.NewProcessor(flags, processor.WithLogger(logger))
	if err != nil {
		return err
	}
	defer proc.Close()

	// Handle --list-runs flag
	if flags.ListRuns {
		return proc.ListRuns(os.Stdout)
	}

	switch {
	case flags.BatchFile != "":
		err = proc.ProcessBatch(ctx)
	case len(args) > 0:
		err = proc.ProcessText(ctx, strings.Join(args, " "))
	case !isatty.IsTerminal(os.Stdin.Fd()):
		err = proc.ProcessReader(ctx, os.Stdin)
	case flags.ExportCSV == "":
		return fmt.Errorf("no text given: pass it as arguments, with --batch or on standard input")
	}
	if err != nil {
		return err
	}

	// Export the store if requested
	if flags.ExportCSV != "" {
		return proc.ExportCSV(flags.ExportCSV)
	}
	return nil
}
