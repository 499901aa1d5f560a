package cmd

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kamal-hamza/skillsheet/pkg/manifest"
	"github.com/kamal-hamza/skillsheet/pkg/ui"
)

var watchQuiet bool

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Regenerate the manifest when records change",
	Long: `Watch a directory of character records and keep its manifest current.

Any *.json file that is created, written, removed or renamed triggers a
rebuild of <dir>/manifest.yaml after watch_debounce_ms of quiet. The
roster is then reloaded and its size reported.

Use --quiet to suppress rebuild notifications.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVarP(&watchQuiet, "quiet", "q", false, "Suppress rebuild notifications")
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := rosterDir()
	if len(args) > 0 {
		dir = args[0]
	}

	ctx, stop := signal.NotifyContext(getContext(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watchTree(watcher, dir); err != nil {
		return err
	}

	if !watchQuiet {
		fmt.Println(ui.FormatRocket("Watching roster records..."))
		fmt.Println(ui.FormatMuted("Directory: " + dir))
		fmt.Println(ui.FormatMuted("Press Ctrl+C to stop"))
		fmt.Println()
	}

	rebuild := func() {
		m, err := writeManifest(dir, filepath.Join(dir, manifest.FileName))
		if err != nil {
			appLogger.Error("manifest rebuild failed", zap.String("dir", dir), zap.Error(err))
			if !watchQuiet {
				fmt.Println(ui.FormatError("Rebuild failed: " + err.Error()))
			}
			return
		}
		if watchQuiet {
			return
		}

		msg := fmt.Sprintf("Manifest updated (%d records)", len(m.Files))
		if roster, err := rosterService.Load(ctx); err == nil && sourceLabel != "bundled" {
			msg += fmt.Sprintf(", %d characters loaded", roster.Total)
		}
		fmt.Println(ui.FormatSuccess(msg))
	}

	return watchLoop(ctx, watcher, time.Duration(appConfig.WatchDebounceMS)*time.Millisecond, rebuild)
}

// watchLoop calls rebuild once events on record files go quiet for the
// debounce duration. It returns when ctx is done or the watcher closes.
func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, debounce time.Duration, rebuild func()) error {
	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			// New subdirectories hold records too
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watchTree(watcher, event.Name); err != nil {
						appLogger.Warn("failed to watch new directory", zap.String("dir", event.Name), zap.Error(err))
					}
					continue
				}
			}

			if !isRecordEvent(event) {
				continue
			}

			appLogger.Debug("record changed", zap.String("file", event.Name), zap.String("op", event.Op.String()))

			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, rebuild)
			mu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			appLogger.Warn("watcher error", zap.Error(err))

		case <-ctx.Done():
			if !watchQuiet {
				fmt.Println()
				fmt.Println(ui.FormatMuted("Watcher stopped"))
			}
			return nil
		}
	}
}

// isRecordEvent reports whether an event touches a character record
func isRecordEvent(event fsnotify.Event) bool {
	if !strings.HasSuffix(event.Name, ".json") {
		return false
	}

	// Editor swap and backup files
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, ".") || strings.HasPrefix(base, "~") {
		return false
	}

	return event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Remove) ||
		event.Has(fsnotify.Rename)
}

// watchTree adds dir and every non-hidden subdirectory to the watcher
func watchTree(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", p, err)
		}
		if !d.IsDir() {
			return nil
		}
		if p != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := watcher.Add(p); err != nil {
			return fmt.Errorf("failed to watch %s: %w", p, err)
		}
		return nil
	})
}
