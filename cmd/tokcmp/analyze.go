package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fractalqb/tokcmp"
	"github.com/fractalqb/tokcmp/annotate"
	"github.com/fractalqb/tokcmp/internal/config"
)

func init() {
	analyzeCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runAnalyze(cmd.Context(), args)
	}
	fs := analyzeCmd.Flags()
	fs.StringP("output", "o", "",
		"Set the report file (default out.txt)")
	fs.Int("min-length", 0,
		"Set the minimum length of shared patterns in tokens (default 1)")
	fs.Bool("parallel", false,
		"Tag both texts concurrently")
	bindFlags(fs, map[string]string{
		"output":     "output.path",
		"min-length": "match.min_length",
		"parallel":   "annotator.parallel",
	})
	rootCmd.AddCommand(&analyzeCmd.Command)
}

var analyzeCmd = struct {
	cobra.Command
}{
	Command: cobra.Command{
		Use:   "analyze [text1 [text2]]",
		Short: "Compare two text files and write the report",
		Args:  cobra.MaximumNArgs(2),
	},
}

func runAnalyze(ctx context.Context, args []string) error {
	cfg, log := rootCmd.cfg, rootCmd.log
	in1, in2 := cfg.Input.Text1, cfg.Input.Text2
	if len(args) > 0 {
		in1 = args[0]
	}
	if len(args) > 1 {
		in2 = args[1]
	}
	ann, err := newAnnotator(ctx, cfg.Annotator, log)
	if err != nil {
		return err
	}
	az := tokcmp.Analyzer{
		Annotator: ann,
		MinLength: cfg.Match.MinLength,
		Parallel:  cfg.Annotator.Parallel,
		Log:       log,
	}
	_, err = az.RunFiles(ctx, in1, in2, cfg.Output.Path)
	return err
}

// newAnnotator must succeed before any input is touched.
func newAnnotator(ctx context.Context, cfg config.AnnotatorConfig, log *zap.Logger) (tokcmp.Annotator, error) {
	switch cfg.Kind {
	case config.AnnotatorSpaCy:
		log.Debug("starting spacy annotator",
			zap.String("python", cfg.Python),
			zap.String("model", cfg.Model),
		)
		sp, err := annotate.NewSpaCy(ctx, cfg.Python, cfg.Model, cfg.Timeout, log)
		if err != nil {
			return nil, err
		}
		return sp, nil
	case config.AnnotatorLexicon:
		log.Debug("loading lexicon annotator", zap.String("lexicon", cfg.Lexicon))
		lx, err := annotate.NewLexicon(cfg.Lexicon)
		if err != nil {
			return nil, err
		}
		return lx, nil
	}
	return nil, fmt.Errorf("unknown annotator kind '%s'", cfg.Kind)
}
