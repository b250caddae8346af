package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dusk-indust/cky/internal/batch"
	"github.com/dusk-indust/cky/internal/cky"
	"github.com/dusk-indust/cky/internal/export"
	"github.com/dusk-indust/cky/internal/parsetree"
)

// Output formats accepted by --format.
const (
	formatText    = "text"
	formatJSON    = "json"
	formatMermaid = "mermaid"
	formatBracket = "bracket"
)

// quitLine ends an interactive session.
const quitLine = "Quit"

type parseOptions struct {
	grammar string
	start   string
	format  string
	out     string
	file    string
	all     bool
}

func newParseCmd(a *app) *cobra.Command {
	var opts parseOptions

	cmd := &cobra.Command{
		Use:   "parse [sentence...]",
		Short: "Check whether a grammar derives a sentence and print its parse tree",
		Long: `Parse a sentence with the CKY algorithm.

The sentence is the remaining arguments joined by spaces. With no
arguments, sentences are read one per line from stdin until EOF or a
line reading "Quit".

With --file every non-empty line of the file is parsed, several at a
time, and the results are printed in file order.

With --out the witness tree of each derivable sentence is written to
the given file as JSON, replacing what was there.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runParse(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.grammar, "grammar", "g", "", "grammar name or path (default from config, else jurafsky)")
	cmd.Flags().StringVarP(&opts.start, "start", "s", "", "start symbol (default from config, else S)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: text, json, mermaid or bracket")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "write the witness tree as JSON to this file")
	cmd.Flags().StringVar(&opts.file, "file", "", "parse every line of this file as a sentence")
	cmd.Flags().BoolVar(&opts.all, "all", false, "print every distinct parse tree")

	return cmd
}

func (a *app) runParse(cmd *cobra.Command, opts parseOptions, args []string) error {
	opts.grammar = a.grammarName(opts.grammar)
	opts.format = firstNonEmpty(opts.format, a.cfg.Format)
	opts.out = firstNonEmpty(opts.out, a.cfg.Output)
	switch opts.format {
	case formatText, formatJSON, formatMermaid, formatBracket:
	default:
		return fmt.Errorf("unknown format %q (want text, json, mermaid or bracket)", opts.format)
	}

	g, err := a.catalog.Load(opts.grammar)
	if err != nil {
		return err
	}
	parser := cky.New(g,
		cky.WithStartSymbol(firstNonEmpty(opts.start, a.cfg.StartSymbol)),
		cky.WithWorkers(a.cfg.Workers),
	)

	w := cmd.OutOrStdout()
	if opts.file != "" {
		if len(args) > 0 {
			return fmt.Errorf("--file cannot be combined with a sentence argument")
		}
		return a.parseFile(cmd, parser, opts)
	}
	if len(args) > 0 {
		return a.parseOne(w, parser, opts, strings.Join(args, " "))
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == quitLine {
			break
		}
		if line == "" {
			continue
		}
		if err := a.parseOne(w, parser, opts, line); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	return nil
}

func (a *app) parseFile(cmd *cobra.Command, parser *cky.Parser, opts parseOptions) error {
	data, err := os.ReadFile(opts.file)
	if err != nil {
		return fmt.Errorf("read sentences: %w", err)
	}
	var sentences []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			sentences = append(sentences, line)
		}
	}

	runner := batch.NewRunner(parser, a.cfg.Workers, func(ev batch.Event) {
		a.log.Debug(batch.FormatProgress(ev))
	})
	outcomes, err := runner.Run(cmd.Context(), sentences)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, o := range outcomes {
		if err := a.writeResult(w, o.Result, opts, o.Sentence); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) parseOne(w io.Writer, parser *cky.Parser, opts parseOptions, sentence string) error {
	return a.writeResult(w, parser.Parse(sentence), opts, sentence)
}

func (a *app) writeResult(w io.Writer, res *cky.Result, opts parseOptions, sentence string) error {
	stats := res.Stats()
	a.log.Infof("parsed %q: derivable=%t cells=%d/%d candidates=%d",
		sentence, res.Derivable(), stats.Filled, stats.Cells, stats.Candidates)

	witness, ok := res.Witness()
	if ok && opts.out != "" {
		if err := export.WriteJSONFile(opts.out, witness); err != nil {
			return err
		}
	}

	var trees []parsetree.Node
	if ok {
		trees = []parsetree.Node{witness}
		if opts.all {
			trees = res.Trees()
		}
	}

	if opts.format == formatJSON {
		if !ok {
			return export.WriteExport(w, export.NewTreeExport(opts.grammar, sentence, nil))
		}
		for i := range trees {
			if err := export.WriteExport(w, export.NewTreeExport(opts.grammar, sentence, &trees[i])); err != nil {
				return err
			}
		}
		return nil
	}

	if !ok {
		_, err := fmt.Fprintln(w, "not derivable")
		return err
	}
	if _, err := fmt.Fprintln(w, "derivable"); err != nil {
		return err
	}
	for _, t := range trees {
		var err error
		switch opts.format {
		case formatMermaid:
			_, err = io.WriteString(w, export.GenerateMermaid(t))
		case formatBracket:
			_, err = fmt.Fprintln(w, t.String())
		default:
			_, err = io.WriteString(w, export.RenderText(t))
		}
		if err != nil {
			return err
		}
	}
	return nil
}
