// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ndtable/ndtable/version"
)

func init() {

	var jsonOutput bool
	var versionCommand = &cobra.Command{
		Use:   "version",
		Short: "Print the version of ndtable",
		Long:  "Show version and build information for ndtable.",
		RunE: func(*cobra.Command, []string) error {
			return generateCmdOutput(os.Stdout, jsonOutput)
		},
	}

	versionCommand.Flags().BoolVar(&jsonOutput, "json", false, "print version information as JSON")
	RootCommand.AddCommand(versionCommand)
}

type versionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"build_commit"`
	Timestamp string `json:"build_timestamp"`
	Hostname  string `json:"build_hostname"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func generateCmdOutput(out io.Writer, jsonOutput bool) error {
	info := versionInfo{
		Version:   version.Version,
		Commit:    version.Vcs,
		Timestamp: version.Timestamp,
		Hostname:  version.Hostname,
		GoVersion: version.GoVersion,
		Platform:  version.Platform,
	}

	if jsonOutput {
		bs, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(bs))
		return err
	}

	fmt.Fprintln(out, "Version: "+info.Version)
	fmt.Fprintln(out, "Build Commit: "+info.Commit)
	fmt.Fprintln(out, "Build Timestamp: "+info.Timestamp)
	fmt.Fprintln(out, "Build Hostname: "+info.Hostname)
	fmt.Fprintln(out, "Go Version: "+info.GoVersion)
	fmt.Fprintln(out, "Platform: "+info.Platform)
	return nil
}
