// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/ndtable/ndtable/table"
)

// loadPreferences returns the default preferences overridden by the fields
// set in the file at path. The file type follows from its extension.
func loadPreferences(path string) (table.Preferences, error) {
	prefs := table.DefaultPreferences()
	if path == "" {
		return prefs, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return prefs, fmt.Errorf("preferences: %w", err)
	}
	if err := v.Unmarshal(&prefs); err != nil {
		return prefs, fmt.Errorf("preferences %s: %w", path, err)
	}
	return prefs.Sanitize(), nil
}
