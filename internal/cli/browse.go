package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/lostfound-tw/lostfound/internal/facet"
	"github.com/lostfound-tw/lostfound/internal/filter"
	"github.com/lostfound-tw/lostfound/internal/logger"
	"github.com/lostfound-tw/lostfound/internal/render"
	"github.com/lostfound-tw/lostfound/internal/store"
)

const browseHelp = `Commands:
  period <term>       filter by academic term (全部 for all)
  campus <name>       filter by campus; resets the location
  location <name>     filter by location (_other_ for unlisted ones)
  from <YYYY-MM-DD>   earliest pickup date (empty to clear)
  to <YYYY-MM-DD>     latest pickup date (empty to clear)
  keyword <text>      match name or description (empty to clear)
  reset               clear every filter
  refresh             fetch the sheet again
  quit                exit`

func newBrowseCmd(root *rootOptions) *cobra.Command {
	var offline bool

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Filter items interactively",
		Long: `Read filter edits from stdin, one per line, and print the matching items
once input has been quiet for the configured debounce window.

` + browseHelp,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd.Context(), root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runBrowse(cmd.Context(), a, offline, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&offline, "offline", false, "Use the last saved snapshot instead of fetching")

	return cmd
}

// syncWriter serializes writes from the input loop and debounced renders.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// session is one interactive browse: the criteria being edited and the
// debouncer that renders them.
type session struct {
	app      *app
	out      io.Writer
	criteria filter.Criteria
	render   *filter.Debouncer[filter.Criteria]
}

func newSession(a *app, out io.Writer, window time.Duration) *session {
	s := &session{
		app:      a,
		out:      out,
		criteria: filter.NewCriteria(),
	}
	s.render = filter.NewDebouncer(window, s.show)
	return s
}

func (s *session) show(c filter.Criteria) {
	if status, _ := s.app.store.State(); status == store.StatusFailed {
		render.WriteMessage(s.out, render.FailureMessage, render.FormatText)
		return
	}

	matched := s.app.evaluate(s.app.store.Records(), c)
	result := render.NewResult(matched, c.String(), s.app.store.Snapshot().FetchedAt)

	var b strings.Builder
	b.WriteString("\n")
	if err := render.WriteItems(&b, result, render.FormatText); err != nil {
		s.app.log.Error("Rendering items failed", nil, err)
		return
	}
	io.WriteString(s.out, b.String())
}

// apply executes one input line. It reports false when the session should end.
func (s *session) apply(ctx context.Context, line string) bool {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)
	loc := s.app.cfg.Location()

	switch strings.ToLower(cmd) {
	case "":
		return true
	case "quit", "exit":
		return false
	case "help", "?":
		fmt.Fprintln(s.out, browseHelp)
		return true
	case "period":
		s.criteria.Period = orAll(arg, facet.All)
	case "campus":
		s.criteria.Campus = orAll(arg, facet.All)
		s.criteria.Location = facet.AllLocations
	case "location":
		s.criteria.Location = orAll(arg, facet.AllLocations)
	case "from", "to":
		var bound *time.Time
		if arg != "" {
			if bound = filter.ParseBound(arg, loc); bound == nil {
				fmt.Fprintf(s.out, "invalid date %q (want YYYY-MM-DD)\n", arg)
				return true
			}
		}
		if cmd == "from" {
			s.criteria.StartDate = bound
		} else {
			s.criteria.EndDate = bound
		}
	case "keyword":
		s.criteria.Keyword = arg
	case "reset":
		s.criteria = filter.NewCriteria()
	case "refresh":
		s.render.Cancel()
		fmt.Fprintln(s.out, render.LoadingMessage)
		if err := s.app.fetch(ctx); err != nil {
			s.app.log.Debug("Browse refresh failed", logger.Fields{"error": err.Error()})
		}
	default:
		fmt.Fprintf(s.out, "unknown command %q\n%s\n", cmd, browseHelp)
		return true
	}

	s.render.Trigger(s.criteria.Clone())
	return true
}

func orAll(v, all string) string {
	if v == "" {
		return all
	}
	return v
}

func runBrowse(ctx context.Context, a *app, offline bool, in io.Reader, out io.Writer) error {
	w := &syncWriter{w: out}
	s := newSession(a, w, a.cfg.Debounce)
	defer s.render.Stop()

	fmt.Fprintln(w, render.LoadingMessage)
	var err error
	if offline {
		err = a.restore()
	} else {
		err = a.fetch(ctx)
	}
	if err != nil {
		render.WriteMessage(w, render.FailureMessage, render.FormatText)
		return err
	}
	fmt.Fprintln(w, browseHelp)
	s.render.Trigger(s.criteria.Clone())

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			break
		}
		if !s.apply(ctx, scanner.Text()) {
			break
		}
	}
	s.render.Flush()

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}
