package main

import (
	"io"
	"os"
	"path/filepath"

	"imgsort/internal/config"
	"imgsort/internal/log"
	"imgsort/internal/organize"
	"imgsort/internal/sorter"
	"imgsort/internal/watch"

	"github.com/spf13/cobra"
)

// options holds the persistent flags and the config they resolve to.
type options struct {
	cfgFile string
	debug   bool
	logJSON bool
	logFile string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "imgsort [directory]",
		Short:   "Sort a folder of images with single-key shortcuts",
		Long:    `imgsort shows the images in a folder one at a time and sends each to one of fifteen shortcut targets with a single key press.`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Close()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts, args)
		},
	}

	helpTemplate := logo() + "\n\n" + rootCmd.UsageTemplate()
	rootCmd.SetUsageTemplate(helpTemplate)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default is "+config.DefaultPath()+")")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flags.BoolVar(&opts.logJSON, "log-json", false, "write log lines as JSON")
	flags.StringVar(&opts.logFile, "log-file", "", "append log lines to this file")

	rootCmd.AddCommand(newTUICmd(opts))
	rootCmd.AddCommand(newGUICmd(opts))
	rootCmd.AddCommand(newScanCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))

	return rootCmd
}

// load reads the config file and sets up logging for non-interactive use.
func (o *options) load() error {
	var (
		cfg *config.Config
		err error
	)
	if o.cfgFile != "" {
		cfg, err = config.LoadConfigFile(o.cfgFile)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return err
	}
	o.cfg = cfg
	usePalette(cfg.Theme.Name)

	o.configureLogging(os.Stderr, o.logFile)
	log.LogWithFields(log.F("config", o.configPath())).Debug("Configuration loaded")
	return nil
}

// configureLogging applies flags over the config's logging section.
// An empty file falls back to the configured one.
func (o *options) configureLogging(out io.Writer, file string) {
	log.SetDebug(o.debug || o.cfg.Logging.Debug)

	var logOpts []log.Option
	logOpts = append(logOpts, log.WithOutput(out))
	if o.logJSON || o.cfg.Logging.JSON {
		logOpts = append(logOpts, log.WithJSON())
	}
	if file == "" {
		file = o.cfg.Logging.File
	}
	if file != "" {
		logOpts = append(logOpts, log.WithFile(file))
	}
	log.Configure(logOpts...)
}

// interactiveLogging keeps log lines off the terminal while the TUI owns it.
func (o *options) interactiveLogging() {
	log.Close()
	file := o.logFile
	if file == "" && o.cfg.Logging.File == "" {
		file = config.DefaultLogPath()
	}
	o.configureLogging(io.Discard, file)
}

// sourceDir picks the positional directory over the configured source.
func (o *options) sourceDir(args []string) (string, error) {
	dir := o.cfg.Directories.Source
	if len(args) > 0 {
		dir = args[0]
	}
	if dir == "" {
		return "", nil
	}
	dir, err := filepath.Abs(config.ExpandHome(dir))
	if err != nil {
		return "", err
	}
	o.cfg.Directories.Source = dir
	return dir, nil
}

// newSession builds a session from the config and optionally a watcher.
// The caller stops the watcher.
func (o *options) newSession(args []string) (*sorter.Session, *watch.Watcher, error) {
	if _, err := o.sourceDir(args); err != nil {
		return nil, nil, err
	}

	session, err := sorter.NewWithConfig(o.cfg, organize.NewWithConfig(o.cfg))
	if err != nil {
		return nil, nil, err
	}

	if !o.cfg.Settings.WatchSource {
		return session, nil, nil
	}
	w, err := watch.New()
	if err != nil {
		log.LogWithError(err).Warn("File watching disabled")
		return session, nil, nil
	}
	if err := w.Start(); err != nil {
		log.LogWithError(err).Warn("File watching disabled")
		w.Stop()
		return session, nil, nil
	}
	return session, w, nil
}
