package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fractalqb/tokcmp"
)

func init() {
	tagCmd.RunE = tagFiles
	parseCmd.RunE = parsePhrase
	rootCmd.AddCommand(&tagCmd.Command, &parseCmd.Command)
}

var tagCmd = struct {
	cobra.Command
}{
	Command: cobra.Command{
		Use:   "tag file...",
		Short: "Print the tagged tokens of text files",
		Long: `Print the tokens of each file as the analysis sees them, one token per
line with its surface and tag separated by a TAB.`,
		Args: cobra.MinimumNArgs(1),
	},
}

func tagFiles(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	ann, err := newAnnotator(ctx, rootCmd.cfg.Annotator, rootCmd.log)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(cmd.OutOrStdout())
	for _, file := range args {
		text, err := tokcmp.ReadText(file)
		if err != nil {
			return err
		}
		seq, err := ann.Tag(ctx, text)
		if err != nil {
			return fmt.Errorf("tag %s: %w", file, err)
		}
		if len(args) > 1 {
			fmt.Fprintf(w, "# %s\n", file)
		}
		for _, t := range seq {
			fmt.Fprintf(w, "%s\t%s\n", t.Surface, t.Tag)
		}
	}
	return w.Flush()
}

var parseCmd = struct {
	cobra.Command
}{
	Command: cobra.Command{
		Use:   "parse word...",
		Short: "Print the dependency parse and phrases of a phrase",
		Long: `Parse the words given as arguments as one phrase. Prints one line per
token with index, text, tag, dependency label and head index, the noun
chunks and the phrases found in the parse.`,
		Args: cobra.MinimumNArgs(1),
	},
}

func parsePhrase(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	ann, err := newAnnotator(ctx, rootCmd.cfg.Annotator, rootCmd.log)
	if err != nil {
		return err
	}
	p, err := ann.Parse(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	w := bufio.NewWriter(cmd.OutOrStdout())
	for i, t := range p.Tokens {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n", i, t.Text, t.Tag, t.Dep, t.Head)
	}
	for _, c := range p.NounChunks {
		fmt.Fprintf(w, "chunk [%d,%d): %s\n", c.Start, c.End, p.SpanText(c))
	}
	fmt.Fprintln(w)
	tokcmp.WritePhrases(w, tokcmp.ClassifyPhrases(p))
	return w.Flush()
}
