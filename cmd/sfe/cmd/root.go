package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/sfe/foundation/core/log"
	"github.com/msto63/sfe/internal/parserfunc"
	"github.com/msto63/sfe/pkg/core/config"
	"github.com/msto63/sfe/pkg/core/logging"
)

var (
	cfgFile string
	verbose bool
	langs   string
)

// app holds what PersistentPreRunE built for the running command
var app struct {
	cfg      *config.Config
	logger   *mdwlog.Logger
	registry *parserfunc.Registry
}

var rootCmd = &cobra.Command{
	Use:   "sfe",
	Short: "Escaped string functions",
	Long: `sfe evaluates the escaped string functions pos_e, rpos_e, pad_e,
replace_e, explode_e and stripnewlines from the command line.

Needles, delimiters, replacement texts and pad fills understand C-style
escapes such as \n, \t, \\ and \x41.

Configuration is read from --config, $SFE_CONFIG, ./configs/sfe.toml,
./sfe.toml or ~/.config/sfe/config.toml, in that order.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the command line and reports a failure on stderr before
// returning it.
func Execute() error {
	app.cfg, app.logger, app.registry = nil, nil, nil

	err := rootCmd.Execute()
	if err != nil {
		reportError(err)
	}
	return err
}

// reportError logs err at the level its severity calls for. Failures
// before setup built a logger use the default one. Errors below the
// configured level get a plain line instead.
func reportError(err error) {
	logger := app.logger
	if logger == nil {
		logger = logging.NewSimpleLogger("sfe").WithOutput(rootCmd.ErrOrStderr())
	}
	if logger.IsLevelEnabled(mdwlog.LevelFor(err)) {
		logger.LogError(err)
		return
	}
	rootCmd.PrintErrln("Error:", err)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every invocation")
	rootCmd.PersistentFlags().StringVar(&langs, "lang", "", "alias languages, comma separated (default: all)")
}

// setup loads the configuration and builds the logger and registry
func setup(cmd *cobra.Command, args []string) error {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	logger := logging.NewLogger(logging.LoggerConfig{
		Name:   "sfe",
		Level:  cfg.General.LogLevel,
		Format: cfg.General.LogFormat,
		Output: cmd.ErrOrStderr(),
	})
	if verbose && !logger.IsLevelEnabled(mdwlog.LevelDebug) {
		logger = logger.WithLevel(mdwlog.LevelDebug)
	}

	limits := cfg.Limits.StringLimits()
	registry, err := parserfunc.NewRegistry(parserfunc.Options{
		Logger:  logger,
		Limits:  &limits,
		Aliases: cfg.AliasesFor(splitLangs(langs)...),
	})
	if err != nil {
		return err
	}

	if cfg.Path() != "" {
		logger.Debug("configuration loaded", mdwlog.String("path", cfg.Path()))
	}

	app.cfg = cfg
	app.logger = logger
	app.registry = registry
	return nil
}

func splitLangs(s string) []string {
	var out []string
	for _, lang := range strings.Split(s, ",") {
		if lang = strings.TrimSpace(lang); lang != "" {
			out = append(out, lang)
		}
	}
	return out
}
