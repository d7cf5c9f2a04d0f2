package cli

import (
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lostfound-tw/lostfound/internal/facet"
	"github.com/lostfound-tw/lostfound/internal/render"
)

type facetsOptions struct {
	campus  string
	format  string
	offline bool
}

func newFacetsCmd(root *rootOptions) *cobra.Command {
	opts := &facetsOptions{}

	cmd := &cobra.Command{
		Use:   "facets",
		Short: "Print the available terms, campuses and locations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd.Context(), root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runFacets(cmd.Context(), a, opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.campus, "campus", "", "Only list locations of this campus")
	cmd.Flags().StringVar(&opts.format, "format", "text", "Output format: text, json or html")
	cmd.Flags().BoolVar(&opts.offline, "offline", false, "Use the last saved snapshot instead of fetching")

	return cmd
}

func runFacets(ctx context.Context, a *app, opts *facetsOptions, w io.Writer) error {
	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return err
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

	f := facet.Index(a.store.Records(), a.categories)
	campus := strings.TrimSpace(opts.campus)
	if campus != "" {
		if _, ok := f.Locations[campus]; !ok {
			f.Locations[campus] = a.categories.LocationsFor(campus)
		}
	}
	return render.WriteFacets(w, f, campus, format)
}
