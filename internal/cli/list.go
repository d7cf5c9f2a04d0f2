package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lostfound-tw/lostfound/internal/filter"
	"github.com/lostfound-tw/lostfound/internal/item"
	"github.com/lostfound-tw/lostfound/internal/logger"
	"github.com/lostfound-tw/lostfound/internal/render"
)

type listOptions struct {
	period   string
	campus   string
	location string
	from     string
	to       string
	keyword  string
	format   string
	offline  bool
	newOnly  bool
}

func newListCmd(root *rootOptions) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List items matching the given filters",
		Long: `Fetch the sheet and print the items matching every given filter.

With --new only items that were not in the previous run's snapshot are
printed, and the command exits with status 2 when there are any.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd.Context(), root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runList(cmd.Context(), a, opts, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.period, "period", "", "Academic term, e.g. 113-1 (default all)")
	flags.StringVar(&opts.campus, "campus", "", "Campus name (default all)")
	flags.StringVar(&opts.location, "location", "", "Location within --campus, or _other_ for unlisted ones")
	flags.StringVar(&opts.from, "from", "", "Earliest pickup date (YYYY-MM-DD)")
	flags.StringVar(&opts.to, "to", "", "Latest pickup date (YYYY-MM-DD)")
	flags.StringVar(&opts.keyword, "keyword", "", "Match item name or description")
	flags.StringVar(&opts.format, "format", "text", "Output format: text, json or html")
	flags.BoolVar(&opts.offline, "offline", false, "Use the last saved snapshot instead of fetching")
	flags.BoolVar(&opts.newOnly, "new", false, "Only show items added since the previous run")

	return cmd
}

// criteria builds filter criteria from flag values. Unparseable dates are
// rejected rather than ignored.
func (o *listOptions) criteria(a *app) (filter.Criteria, error) {
	c := filter.NewCriteria()
	if v := strings.TrimSpace(o.period); v != "" {
		c.Period = v
	}
	if v := strings.TrimSpace(o.campus); v != "" {
		c.Campus = v
	}
	if v := strings.TrimSpace(o.location); v != "" {
		c.Location = v
	}
	c.Keyword = o.keyword

	var err error
	if c.StartDate, err = parseBound("--from", o.from, a); err != nil {
		return c, err
	}
	if c.EndDate, err = parseBound("--to", o.to, a); err != nil {
		return c, err
	}
	return c, nil
}

func parseBound(flag, value string, a *app) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t := filter.ParseBound(value, a.cfg.Location())
	if t == nil {
		return nil, fmt.Errorf("invalid %s date %q (want YYYY-MM-DD)", flag, value)
	}
	return t, nil
}

func runList(ctx context.Context, a *app, opts *listOptions, w io.Writer) error {
	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	c, err := opts.criteria(a)
	if err != nil {
		return err
	}

	var previous *item.Snapshot
	if opts.newOnly {
		if previous, err = a.previous(); err != nil {
			return err
		}
	}

	if opts.offline {
		err = a.restore()
	} else {
		err = a.fetch(ctx)
	}
	if err != nil {
		if werr := render.WriteMessage(w, render.FailureMessage, format); werr != nil {
			return werr
		}
		return err
	}

	records := a.store.Records()
	if opts.newOnly {
		records = item.Diff(previous, records)
		a.log.Debug("Computed new items", logger.Fields{"new": len(records)})
	}

	matched := a.evaluate(records, c)

	result := render.NewResult(matched, c.String(), a.store.Snapshot().FetchedAt)
	if err := render.WriteItems(w, result, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if opts.newOnly && len(matched) > 0 {
		return ErrNewItems
	}
	return nil
}
