package main

import (
	"errors"
	"io/fs"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/scalecode-solutions/runesplit/internal/config"
	"github.com/scalecode-solutions/runesplit/internal/logger"
)

// app holds state shared by the subcommands once the root command has run
// its pre-run hook.
type app struct {
	configPath string
	debug      bool

	cfg *config.Config
	log *zap.SugaredLogger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "runesplit",
		Short: "Split text into tokens",
		Long: `runesplit splits text on a rune, a literal string, or runs of matching
characters, with optional trimming, empty-token omission and a token limit.
Splitters can be given with flags or as named profiles in a YAML file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to configuration file (default: "+config.DefaultConfigPath+" if present)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")

	root.AddCommand(newSplitCmd(a))
	root.AddCommand(newKVCmd(a))
	root.AddCommand(newProfilesCmd(a))
	return root
}

// init loads the configuration and sets up logging. A missing default
// configuration file is not an error; a missing explicit one is.
func (a *app) init(cmd *cobra.Command) error {
	path := a.configPath
	if path == "" {
		path = config.DefaultConfigPath
	}

	cfg, err := config.Load(path)
	switch {
	case err == nil:
	case a.configPath == "" && errors.Is(err, fs.ErrNotExist):
		cfg = config.Default()
	default:
		return err
	}
	if a.debug {
		cfg.Logging.Level = "debug"
	}

	log, err := logger.New(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	log.Debugw("configuration loaded", "path", path, "profiles", len(cfg.Profiles))

	a.cfg = cfg
	a.log = log
	cmd.SetContext(logger.WithContext(cmd.Context(), log))
	return nil
}

// profile returns the named profile, or an empty one if name is empty.
func (a *app) profile(name string) (config.Profile, error) {
	if name == "" {
		return config.Profile{}, nil
	}
	p, err := a.cfg.Profile(name)
	if err != nil {
		return p, err
	}
	a.log.Debugw("profile selected", "profile", name)
	return p, nil
}
