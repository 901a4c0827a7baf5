package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/wisdomwellbeing/resourcectl/internal/config"
	"github.com/wisdomwellbeing/resourcectl/internal/loader"
	"github.com/wisdomwellbeing/resourcectl/internal/resource"
	"github.com/wisdomwellbeing/resourcectl/internal/source"
	"github.com/wisdomwellbeing/resourcectl/internal/tui"
	"github.com/wisdomwellbeing/resourcectl/internal/view"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds the diagnostic logger from the log section of the config.
func newLogger(lc config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}

	var zc zap.Config
	switch lc.Format {
	case "json":
		zc = zap.NewProductionConfig()
	case "", "console":
		zc = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("log.format: unknown format %q (want console or json)", lc.Format)
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return l, nil
}

// newSource returns the configured catalog source. Simulated latency only
// applies to the asynchronous surfaces (browser and server).
func newSource(withLatency bool) source.Source {
	var src source.Source
	if cfg.Source.UsesBuiltin() {
		src = source.Builtin()
	} else {
		src = source.Files(cfg.Source.Catalogs...)
	}
	if withLatency {
		src = source.WithLatency(src, cfg.Source.Latency)
	}
	return src
}

// loadResources fetches the catalog synchronously for the text commands.
func loadResources(ctx context.Context) ([]resource.Resource, error) {
	st := loader.New(newSource(false)).Load(ctx)
	if st.Failed() {
		return nil, errors.New(st.Err)
	}
	return st.Resources, nil
}

// viewFlags are the filter/sort flags shared by browse, search and index.
type viewFlags struct {
	search   string
	category string
	sort     string
}

func (f *viewFlags) register(cmd *cobra.Command, withSearch bool) {
	if withSearch {
		cmd.Flags().StringVar(&f.search, "search", "", "Only resources whose title or tags contain this text")
	}
	cmd.Flags().StringVar(&f.category, "category", "", "Category: All, "+joinCategories(", "))
	cmd.Flags().StringVar(&f.sort, "sort", "", "Sort: "+joinSorts(", "))

	_ = cmd.RegisterFlagCompletionFunc("category", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		out := make([]string, 0, 7)
		for _, c := range resource.Selections() {
			out = append(out, c.String())
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("sort", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		out := make([]string, 0, 5)
		for _, o := range resource.SortOptions() {
			out = append(out, string(o))
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	})
}

// options merges the flags over the configured defaults.
func (f viewFlags) options(defaults view.Options) (view.Options, error) {
	opts := defaults
	opts.Query = f.search
	if f.category != "" {
		c, err := resource.ParseSelection(f.category)
		if err != nil {
			return view.Options{}, fmt.Errorf("--category: %w", err)
		}
		opts.Category = c
	}
	if f.sort != "" {
		s, err := resource.ParseSortOption(f.sort)
		if err != nil {
			return view.Options{}, fmt.Errorf("--sort: %w", err)
		}
		opts.Sort = s
	}
	return opts, nil
}

func runBrowser(cmd *cobra.Command, opts view.Options) error {
	ld := loader.New(newSource(true))
	return tui.RunBrowser(cmd.Context(), ld, opts)
}

// writeListing prints a composed view as text: category sections when
// grouped, a flat list otherwise.
func writeListing(w io.Writer, m view.Model) {
	if m.Empty() {
		fmt.Fprintln(w, view.EmptyMessage)
		return
	}
	if m.Grouped {
		for i, g := range m.Groups {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintln(w, color.CyanString("── %s  (%d)", g.Category, len(g.Resources)))
			for _, r := range g.Resources {
				writeRow(w, r, false)
			}
		}
	} else {
		for _, r := range m.Items {
			writeRow(w, r, true)
		}
	}
	fmt.Fprintf(w, "\n%d resource(s)\n", len(m.Items))
}

func writeRow(w io.Writer, r resource.Resource, withCategory bool) {
	cat := ""
	if withCategory {
		cat = color.YellowString("%-12s", r.Category) + " "
	}
	tagStr := ""
	if tags := r.SummaryTags(); len(tags) > 0 {
		tagStr = " " + color.CyanString("["+strings.Join(tags, ",")+"]")
	}
	fmt.Fprintf(w, "  %-8s  %s%s  %s%s\n",
		color.WhiteString(r.ID),
		cat,
		r.Title,
		color.HiBlackString(view.DurationShort(r.Duration)),
		tagStr,
	)
}

// openInBrowser opens a file or URL with the platform's default handler.
func openInBrowser(target string) error {
	var c *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		c = exec.Command("open", target)
	case "windows":
		c = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		c = exec.Command("xdg-open", target)
	}
	return c.Start()
}

func joinCategories(sep string) string {
	names := make([]string, 0, 6)
	for _, c := range resource.Categories() {
		names = append(names, c.String())
	}
	return strings.Join(names, sep)
}

func joinSorts(sep string) string {
	names := make([]string, 0, 5)
	for _, o := range resource.SortOptions() {
		names = append(names, string(o))
	}
	return strings.Join(names, sep)
}
