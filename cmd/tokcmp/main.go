// A command line tool to compare two texts on the level of tagged tokens
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/fractalqb/tokcmp"
	"github.com/fractalqb/tokcmp/internal/config"
	"github.com/fractalqb/tokcmp/internal/logging"
)

// Exit status
const (
	exitOK          = 0
	exitFileError   = 1
	exitNoAnnotator = 2
	exitError       = 3
)

var rootCmd = struct {
	cobra.Command
	cfgFile string
	verbose bool
	v       *viper.Viper
	cfg     *config.Config
	log     *zap.Logger
}{
	Command: cobra.Command{
		Use:   "tokcmp [text1 [text2]]",
		Short: "Compare two texts on the level of tagged tokens",
		Long: `tokcmp compares two texts, e.g. a draft and its revision, and writes a
report with

  - the token patterns shared by both texts (same words, same tags)
  - the words that are tagged differently in the two texts
  - a phrase analysis of the longest shared pattern

Without a sub-command tokcmp runs 'analyze' with the configured inputs.

Configuration is read from --config or ./tokcmp.yaml and from TOKCMP_*
environment variables, e.g. TOKCMP_ANNOTATOR_KIND=lexicon.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
	},
	v: config.New(),
}

func init() {
	rootCmd.PersistentPreRunE = setup
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runAnalyze(cmd.Context(), args)
	}
	pfs := rootCmd.PersistentFlags()
	pfs.StringVarP(&rootCmd.cfgFile, "config", "c", "",
		"Set configuration file")
	pfs.BoolVarP(&rootCmd.verbose, "verbose", "v", false,
		"Log debug messages")
	pfs.StringP("annotator", "a", "",
		"Select the annotator: spacy or lexicon (default spacy)")
	pfs.String("python", "",
		"Set the python interpreter for the spacy annotator (default python3)")
	pfs.String("model", "",
		"Set the spaCy model (default en_core_web_sm)")
	pfs.String("lexicon", "",
		"Set the lexicon file of the lexicon annotator (default built-in)")
	bindFlags(pfs, map[string]string{
		"annotator": "annotator.kind",
		"python":    "annotator.python",
		"model":     "annotator.model",
		"lexicon":   "annotator.lexicon",
	})
}

func bindFlags(fs *pflag.FlagSet, keys map[string]string) {
	for flag, key := range keys {
		if err := rootCmd.v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func setup(cmd *cobra.Command, args []string) (err error) {
	if rootCmd.cfg, err = config.Load(rootCmd.v, rootCmd.cfgFile); err != nil {
		return err
	}
	if rootCmd.log, err = logging.New(rootCmd.cfg.Log, rootCmd.verbose); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	return nil
}

func exitCode(err error) int {
	var ferr tokcmp.FileError
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, tokcmp.ErrAnnotatorUnavailable):
		return exitNoAnnotator
	case errors.As(err, &ferr):
		return exitFileError
	}
	return exitError
}

func logError(log *zap.Logger, err error) {
	if log == nil {
		fmt.Fprintln(os.Stderr, "tokcmp:", err)
		return
	}
	var (
		ferr tokcmp.FileError
		aerr tokcmp.AnnotatorError
	)
	switch {
	case errors.As(err, &aerr):
		log.Error("annotator unavailable, cannot analyze anything",
			zap.String("annotator", aerr.Annotator),
			zap.Error(err),
		)
	case errors.As(err, &ferr):
		log.Error("stopped without writing a report",
			zap.String("path", ferr.Path),
			zap.Stringer("kind", ferr.Kind),
			zap.Error(err),
		)
	default:
		log.Error("failed", zap.Error(err))
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		logError(rootCmd.log, err)
	}
	if rootCmd.log != nil {
		_ = rootCmd.log.Sync()
	}
	os.Exit(exitCode(err))
}
