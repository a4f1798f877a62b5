// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package cmd implements the ndtable command line interface.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ndtable/ndtable/cmd/internal/env"
	"github.com/ndtable/ndtable/logging"
	"github.com/ndtable/ndtable/util"
)

var rootParams = struct {
	logLevel  *util.EnumFlag
	logFormat *util.EnumFlag
}{
	logLevel:  util.NewEnumFlag("info", []string{"debug", "info", "warn", "error"}),
	logFormat: util.NewEnumFlag("text", []string{"text", "json", "json-pretty"}),
}

// RootCommand is the base CLI command that all subcommands are added to.
var RootCommand = &cobra.Command{
	Use:   "ndtable",
	Short: "Render tabular data as text tables",
	Long: `Render tabular data files as terminal tables, Markdown, HTML, CSV, TSV or JSON.

Every flag can also be set through an environment variable named
NDTABLE_<COMMAND>_<FLAG>, e.g. NDTABLE_RENDER_FORMAT=markdown.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := env.CmdFlags.CheckEnvironmentVariables(cmd.Root()); err != nil {
			return err
		}
		if err := env.CmdFlags.CheckEnvironmentVariables(cmd); err != nil {
			return err
		}
		return configureLogging(logging.Get(), rootParams.logLevel.String(), rootParams.logFormat.String())
	},
}

func configureLogging(logger *logging.StandardLogger, level, format string) error {
	lvl, err := logging.GetLevel(level)
	if err != nil {
		return err
	}
	logger.SetOutput(os.Stderr)
	logger.SetLevel(lvl)
	logger.SetFormatter(logging.GetFormatter(format, ""))
	return nil
}

func init() {
	RootCommand.PersistentFlags().VarP(rootParams.logLevel, "log-level", "l", "set log level")
	RootCommand.PersistentFlags().Var(rootParams.logFormat, "log-format", "set log format")
}
