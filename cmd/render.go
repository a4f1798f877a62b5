// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/ndtable/ndtable/cmd/formats"
	"github.com/ndtable/ndtable/filewatcher"
	"github.com/ndtable/ndtable/format"
	"github.com/ndtable/ndtable/loader"
	"github.com/ndtable/ndtable/logging"
	"github.com/ndtable/ndtable/presentation"
	"github.com/ndtable/ndtable/table"
	"github.com/ndtable/ndtable/util"
)

type renderParams struct {
	outputFormat *util.EnumFlag
	inputFormat  *util.EnumFlag
	flavor       *util.EnumFlag
	header       bool
	rowHeader    bool
	ansi         bool
	htmlStyles   bool
	compact      bool
	flip         bool
	preferences  string
	watch        bool
}

func newRenderParams() renderParams {
	return renderParams{
		outputFormat: formats.Flag(format.UTF8),
		inputFormat:  util.NewEnumFlag(string(loader.Auto), loader.Formats()),
		flavor:       formats.Flavor(),
	}
}

func (p *renderParams) format() table.OutputFormat {
	return table.OutputFormat{
		Name:    p.outputFormat.String(),
		ANSI:    p.ansi,
		Flavor:  p.flavor.String(),
		Styles:  p.htmlStyles,
		Compact: p.compact,
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func init() {
	params := newRenderParams()

	renderCommand := &cobra.Command{
		Use:   "render [<path>]",
		Short: "Render a data file as a table",
		Long: `Render a data file as a table.

The data file is read from <path>, or from stdin if <path> is omitted or "-".
CSV and TSV files yield string cells. JSON and YAML files contain a list of
rows; a cell is either a scalar or an object with a "value" key and
configuration fields, for example:

    [["name", "qty"], [{"value": "apple", "bold": true}, 3]]

Supported output formats: ` + enumUsage(format.Names()) + `.

ANSI styling of terminal formats is enabled by default when stdout is a
terminal. With --watch, the table is rendered again whenever the file
changes, until the command is interrupted.`,
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("ansi") {
				params.ansi = isTerminal(os.Stdout)
			}
			if params.watch && (len(args) == 0 || args[0] == "-") {
				return errors.New("--watch requires a file path")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runRender(ctx, args, &params, os.Stdin, os.Stdout, logging.Get())
		},
	}

	addOutputFormat(renderCommand.Flags(), params.outputFormat)
	addInputFormat(renderCommand.Flags(), params.inputFormat)
	addFlavor(renderCommand.Flags(), params.flavor)
	addPreferencesFlag(renderCommand.Flags(), &params.preferences)
	renderCommand.Flags().BoolVar(&params.header, "header", false, "use the first row as column headers")
	renderCommand.Flags().BoolVar(&params.rowHeader, "row-header", false, "use the first column as row headers")
	renderCommand.Flags().BoolVar(&params.ansi, "ansi", false, "style terminal formats with ANSI escape sequences")
	renderCommand.Flags().BoolVar(&params.htmlStyles, "html-styles", false, "write inline styles in html output")
	renderCommand.Flags().BoolVar(&params.compact, "compact", false, "write compact json output")
	renderCommand.Flags().BoolVar(&params.flip, "flip", false, "swap rows and columns")
	renderCommand.Flags().BoolVarP(&params.watch, "watch", "w", false, "render again whenever the file changes")

	RootCommand.AddCommand(renderCommand)
}

func runRender(ctx context.Context, args []string, params *renderParams, stdin io.Reader, stdout io.Writer, logger logging.Logger) error {
	path := "-"
	if len(args) > 0 {
		path = args[0]
	}

	inputFormat, err := loader.ParseFormat(params.inputFormat.String())
	if err != nil {
		return err
	}
	prefs, err := loadPreferences(params.preferences)
	if err != nil {
		return err
	}
	of := params.format()
	if !formats.Terminal(of.Name) && params.flavor.IsSet() {
		logger.Debug("Ignoring flavor %v for %v output.", of.Flavor, of.Name)
	}

	render := func(context.Context) (string, error) {
		rows, err := readRows(path, inputFormat, stdin)
		if err != nil {
			return "", err
		}
		tbl := table.FromData(rows, params.header, params.rowHeader,
			table.WithPreferences(prefs),
			table.WithLogger(logger))
		if params.flip {
			tbl.Flip()
		}
		out, err := presentation.String(tbl, of, presentation.WithLogger(logger))
		if err != nil {
			return "", err
		}
		if out != "" && !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
		return out, nil
	}

	if !params.watch {
		out, err := render(ctx)
		if err != nil {
			return err
		}
		_, err = io.WriteString(stdout, out)
		return err
	}

	onReload := func(_ context.Context, out string, elapsed time.Duration, err error) {
		if err != nil {
			logger.Error("Rendering failed: %v.", err)
			return
		}
		logger.WithFields(map[string]any{"path": path, "elapsed": elapsed.String()}).Debug("Rendered table.")
		if _, err := io.WriteString(stdout, out); err != nil {
			logger.Error("Writing output failed: %v.", err)
		}
	}
	w := filewatcher.NewFileWatcher([]string{path}, render, onReload, logger)
	w.Reload(ctx)
	if err := w.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	return nil
}

func readRows(path string, f loader.Format, stdin io.Reader) ([][]any, error) {
	if path == "-" {
		return loader.Read(stdin, f)
	}
	return loader.ReadFile(path, f)
}
