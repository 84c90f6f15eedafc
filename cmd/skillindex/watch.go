package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/foundrydocs/skillindex/pkg/logger"
	"github.com/foundrydocs/skillindex/pkg/presenter"
)

// WatchConfig holds configuration for the watch command
type WatchConfig struct {
	Generate     *GenerateConfig
	DebounceTime int
}

// NewWatchConfig creates a WatchConfig with default values
func NewWatchConfig() *WatchConfig {
	return &WatchConfig{
		Generate:     NewGenerateConfig(),
		DebounceTime: 500,
	}
}

// Validate validates the WatchConfig and returns an error if invalid
func (c *WatchConfig) Validate() error {
	if c.DebounceTime < 0 {
		return errors.Errorf("debounce time cannot be negative: %d", c.DebounceTime)
	}
	return nil
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate the skill index on filesystem changes",
	Long: `Continuously monitors the skill corpus and the symlink tree, regenerating
the JSON index whenever either changes. Useful while curating skills with
the documentation site dev server running.`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		config := getWatchConfigFromFlags(cmd)
		if err := config.Validate(); err != nil {
			presenter.Error(err, "Invalid configuration")
			os.Exit(1)
		}

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-sigCh
			presenter.Warning("Cancellation requested, shutting down...")
			cancel()
		}()

		if err := runWatchMode(ctx, config); err != nil {
			presenter.Error(err, "Watch mode failed")
			os.Exit(1)
		}
	},
}

func init() {
	defaults := NewWatchConfig()
	watchCmd.Flags().String("scan-root", defaults.Generate.ScanRoot, "Directory containing the skill directories")
	watchCmd.Flags().String("link-root", defaults.Generate.LinkRoot, "Root of the language/category symlink tree")
	watchCmd.Flags().StringP("output", "o", defaults.Generate.Output, "Path of the JSON index to write")
	watchCmd.Flags().IntP("debounce", "d", defaults.DebounceTime, "Debounce time in milliseconds for file change events")
}

// getWatchConfigFromFlags extracts watch configuration from command flags
func getWatchConfigFromFlags(cmd *cobra.Command) *WatchConfig {
	config := NewWatchConfig()
	config.Generate = getGenerateConfigFromFlags(cmd)

	if debounceTime, err := cmd.Flags().GetInt("debounce"); err == nil {
		config.DebounceTime = debounceTime
	}

	return config
}

func runWatchMode(ctx context.Context, config *WatchConfig) error {
	log := logger.G(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create file watcher")
	}
	defer watcher.Close()

	if err := watchTree(watcher, config.Generate.ScanRoot); err != nil {
		return err
	}
	if err := watchTree(watcher, config.Generate.LinkRoot); err != nil {
		return err
	}

	// Initial generation before waiting for changes
	if err := runGenerate(ctx, config.Generate); err != nil {
		return err
	}

	debounce := time.Duration(config.DebounceTime) * time.Millisecond
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			// Newly created skill directories need their own watch
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watcher.Add(event.Name)
				}
			}

			log.WithField("path", event.Name).Debug("change detected")
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("file watcher error")

		case <-timer.C:
			if err := runGenerate(ctx, config.Generate); err != nil {
				presenter.Error(err, "Failed to regenerate skill index")
			}
		}
	}
}

// watchTree registers root and every directory below it with the watcher
func watchTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return errors.Wrapf(err, "failed to walk %s", root)
		}
		if !info.IsDir() {
			return nil
		}
		return errors.Wrapf(watcher.Add(path), "failed to watch %s", path)
	})
}
