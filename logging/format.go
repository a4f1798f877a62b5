// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
)

// GetLevel parses a log level name. The empty string selects Info.
func GetLevel(level string) (Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return Debug, nil
	case "", "info":
		return Info, nil
	case "warn":
		return Warn, nil
	case "error":
		return Error, nil
	default:
		return Debug, fmt.Errorf("invalid log level: %v", level)
	}
}

// GetFormatter returns the logrus formatter for a log format name: "text",
// "json" or "json-pretty". Unknown names select "json".
func GetFormatter(format, timestampFormat string) logrus.Formatter {
	switch format {
	case "text":
		return &prettyFormatter{}
	case "json-pretty":
		return &logrus.JSONFormatter{PrettyPrint: true, TimestampFormat: timestampFormat}
	default:
		return &logrus.JSONFormatter{TimestampFormat: timestampFormat}
	}
}

// prettyFormatter implements the Logrus Formatter interface
// and provides a more simple, but easier to read, text formatter
// option than the default logrus.TextFormatter.
type prettyFormatter struct{}

func isJSON(buf []byte) bool {
	var tmp any
	return json.Unmarshal(buf, &tmp) == nil
}

func (*prettyFormatter) Format(e *logrus.Entry) ([]byte, error) {
	b := new(bytes.Buffer)

	fmt.Fprintf(b, "[%s] %s\n", strings.ToUpper(e.Level.String()), e.Message)

	const fieldIndent, multiLineIndent = 2, 6

	// sorted keys keep the output stable between runs
	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		v := e.Data[k]
		stringVal, ok := v.(string)
		switch {
		case ok && strings.Contains(stringVal, "\n"):
			lines := strings.Split(stringVal, "\n")
			stringVal = strings.Join(lines, "\n"+strings.Repeat(" ", multiLineIndent)) + "\n"
		case ok && isJSON([]byte(stringVal)):
			var tmp bytes.Buffer
			if err := json.Indent(&tmp, []byte(stringVal), strings.Repeat(" ", multiLineIndent), "  "); err != nil {
				return nil, err
			}
			stringVal = tmp.String()
		default:
			if err, isErr := v.(error); isErr {
				v = err.Error()
			}
			jsonVal, err := json.MarshalIndent(v, strings.Repeat(" ", multiLineIndent), "  ")
			if err != nil {
				return nil, err
			}
			stringVal = string(jsonVal)
		}

		b.WriteString(strings.Repeat(" ", fieldIndent))
		b.WriteString(k)
		if strings.Contains(stringVal, "\n") {
			b.WriteString(" = |\n")
			b.WriteString(strings.Repeat(" ", multiLineIndent))
		} else {
			b.WriteString(" = ")
		}
		b.WriteString(stringVal)
		b.WriteString("\n")
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}
