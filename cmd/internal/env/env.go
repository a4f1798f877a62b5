// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package env maps environment variables onto command line flags.
package env

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type cmdFlags interface {
	CheckEnvironmentVariables(command *cobra.Command) error
}

type cmdFlagsImpl struct{}

// CmdFlags sets flags that were not given on the command line from the
// environment.
var CmdFlags cmdFlags = cmdFlagsImpl{}

const (
	globalPrefix       = "ndtable"
	errorMessagePrefix = "error mapping environment variables to command flags"
)

// Prefix returns the environment variable prefix of command: NDTABLE for
// the root command and NDTABLE_<NAME> for subcommands.
func Prefix(command *cobra.Command) string {
	if !command.HasParent() {
		return strings.ToUpper(globalPrefix)
	}
	return strings.ToUpper(fmt.Sprintf("%s_%s", globalPrefix, command.Name()))
}

// Variable returns the environment variable for the flag named name of
// command.
func Variable(command *cobra.Command, name string) string {
	return Prefix(command) + "_" + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

func (cmdFlagsImpl) CheckEnvironmentVariables(command *cobra.Command) error {
	var errs []string
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvPrefix(Prefix(command))
	command.Flags().VisitAll(func(f *pflag.Flag) {
		configName := strings.ReplaceAll(f.Name, "-", "_")
		if f.Changed || !v.IsSet(configName) {
			return
		}
		if err := command.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(configName))); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", Variable(command, f.Name), err))
		}
	})

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%s: %s", errorMessagePrefix, strings.Join(errs, "; "))
}
