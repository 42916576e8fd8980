package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/navcheck/pkg/lint"
)

// WatchOptions holds options for the watch command.
type WatchOptions struct {
	Format   string
	Severity string
	Debounce time.Duration
}

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	opts := &WatchOptions{}
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-run the check whenever content or navigation changes",
		Long: `Run the check, then watch the content directory and the navigation
file and run it again after every change. Changes arriving in quick
succession are batched into one run. Stop with Ctrl+C.`,
		Example: `  # Watch the default site
  navcheck watch

  # Wait one second after the last change before checking
  navcheck watch --debounce 1s`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWatch(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().StringVar(&opts.Severity, "severity", "warning", "Minimum severity reported: error, warning, info, hint")
	cmd.Flags().DurationVar(&opts.Debounce, "debounce", 0, "Quiet period before a re-check (default from config, 200ms)")

	return cmd
}

func runWatch(cmd *cobra.Command, opts *WatchOptions) error {
	cmdCtx := NewCommandContext(cmd, opts.Format)
	cfg := cmdCtx.Cfg
	logger := cmdCtx.Logger

	threshold, ok := lint.ParseSeverity(opts.Severity)
	if !ok {
		return fmt.Errorf("invalid severity %q: expected error, warning, info or hint", opts.Severity)
	}
	if err := cfg.ValidateDirectories(); err != nil {
		return err
	}

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = cfg.GetWatchConfig().Debounce
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sw, err := newSiteWatcher(cfg.ContentDir, cfg.NavFile, cfg.Extension, debounce, logger)
	if err != nil {
		return err
	}
	defer func() { _ = sw.Close() }()

	check := func() {
		if err := recheck(cmdCtx, threshold); err != nil {
			cmdCtx.Renderer.Error(err.Error())
		}
		cmdCtx.Renderer.Muted(fmt.Sprintf("Watching %s for changes...", cfg.ContentDir))
	}

	check()

	trigger := make(chan struct{}, 1)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sw.Run(gctx, trigger)
	})
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-trigger:
				logger.Debug("change detected, re-checking")
				check()
			}
		}
	})

	return g.Wait()
}

// recheck loads the site again and renders a fresh report.
func recheck(cmdCtx *CommandContext, threshold lint.Severity) error {
	site, err := cmdCtx.LoadSite()
	if err != nil {
		return err
	}
	report, err := checkSite(cmdCtx, site, buildLintConfig(cmdCtx.Cfg, nil, nil))
	if err != nil {
		return err
	}
	return renderCheckReport(cmdCtx.Renderer, report.Filter(threshold))
}

// siteWatcher turns file-system events below a content directory and on a
// navigation file into debounced check triggers.
type siteWatcher struct {
	w          *fsnotify.Watcher
	contentDir string
	navFile    string
	ext        string
	debounce   time.Duration
	logger     *slog.Logger
}

func newSiteWatcher(contentDir, navFile, ext string, debounce time.Duration, logger *slog.Logger) (*siteWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	sw := &siteWatcher{
		w:          w,
		contentDir: filepath.Clean(contentDir),
		navFile:    filepath.Clean(navFile),
		ext:        ext,
		debounce:   debounce,
		logger:     logger,
	}

	if err := sw.addTree(sw.contentDir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("failed to watch content dir: %w", err)
	}
	// The navigation file usually sits in a hidden directory the tree walk skips.
	// Watching its directory survives editors that replace the file on save.
	if err := w.Add(filepath.Dir(sw.navFile)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("failed to watch navigation file: %w", err)
	}
	return sw, nil
}

// addTree adds dir and every non-hidden directory below it.
func (sw *siteWatcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && path != dir {
				return nil
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return sw.w.Add(path)
	})
}

// relevant reports whether an event can change the check result.
func (sw *siteWatcher) relevant(ev fsnotify.Event) bool {
	name := filepath.Clean(ev.Name)
	if name == sw.navFile {
		return true
	}
	if !strings.HasPrefix(name, sw.contentDir+string(filepath.Separator)) {
		return false
	}
	rel := strings.TrimPrefix(name, sw.contentDir+string(filepath.Separator))
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if strings.HasPrefix(part, ".") {
			return false
		}
	}
	if strings.HasSuffix(name, sw.ext) {
		return true
	}
	// Directories appearing or vanishing change routes without a file event.
	return ev.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0
}

// Run forwards debounced triggers until ctx is done.
func (sw *siteWatcher) Run(ctx context.Context, trigger chan<- struct{}) error {
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-sw.w.Events:
			if !ok {
				return nil
			}
			if !sw.relevant(ev) {
				continue
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := sw.addTree(ev.Name); err != nil {
						sw.logger.Warn("failed to watch new directory", "dir", ev.Name, "error", err)
					}
				}
			}
			sw.logger.Debug("change", "path", ev.Name, "op", ev.Op.String())

			if timer == nil {
				timer = time.NewTimer(sw.debounce)
			} else {
				timer.Reset(sw.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			select {
			case trigger <- struct{}{}:
			default:
			}

		case err, ok := <-sw.w.Errors:
			if !ok {
				return nil
			}
			sw.logger.Warn("watcher error", "error", err)
		}
	}
}

// Close stops watching.
func (sw *siteWatcher) Close() error {
	return sw.w.Close()
}
