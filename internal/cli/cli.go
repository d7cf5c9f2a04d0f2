package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

const (
	ExitSuccess  = 0
	ExitError    = 1
	ExitNewItems = 2
)

// ErrNewItems is returned by `list --new` when items were added since the
// previous run. Execute maps it to ExitNewItems.
var ErrNewItems = errors.New("new items found")

type rootOptions struct {
	configPath string
	verbose    bool
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "lostfound",
		Short: "Browse the campus lost-and-found sheet",
		Long: `A CLI tool to search the campus lost-and-found listings published in a
public Google Sheet. Items can be filtered by term, pickup date, campus,
location and keyword, printed as text, JSON or HTML cards, or served over HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file (default $LOSTFOUND_CONFIG)")
	cmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(
		newListCmd(opts),
		newFacetsCmd(opts),
		newBrowseCmd(opts),
		newServeCmd(opts),
	)

	return cmd
}

// Execute runs the CLI
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()

	switch {
	case err == nil:
		os.Exit(ExitSuccess)
	case errors.Is(err, ErrNewItems):
		os.Exit(ExitNewItems)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
