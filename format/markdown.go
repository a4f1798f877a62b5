// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package format

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/ndtable/ndtable/render"
	"github.com/ndtable/ndtable/table"
)

var (
	markdownContent = strings.NewReplacer("\n", "<br>", "|", "&#124;")
	spacedContent   = regexp.MustCompile(`^(\s*)(.*\S)(\s*)$`)
)

// MarkdownTable writes a pipe table. Tables without column headers get a
// blank header row. A column is marked right or center aligned when more
// than half of its data cells are. Bold, italic and links are written in
// Markdown syntax around the trimmed content.
//
// Cells wider than their column shift the remaining pipes of the row;
// surplus blanks are trimmed until the row is back in line.
func MarkdownTable(d *render.Data) string {
	if d.Columns() == d.StartX() {
		return ""
	}

	var sb strings.Builder
	if d.StartY() == 0 {
		for x := d.StartX(); x < d.Columns(); x++ {
			sb.WriteString("|" + strings.Repeat(" ", d.ColumnWidth(x)+2))
		}
		sb.WriteString("|\n")
	}
	for y := d.StartY(); y < d.Rows(); y++ {
		if y == 0 {
			writeMarkdownAlignment(&sb, d)
		}
		targetLen, rowLen := 0, 0
		for x := d.StartX(); x < d.Columns(); x++ {
			width := d.ColumnWidth(x)
			content := []rune(markdownCell(d.Cell(x, y), width))
			if pad := width - len(content); pad > 0 {
				content = append(content, []rune(strings.Repeat(" ", pad))...)
			}
			content = append(append([]rune{' '}, content...), ' ')

			targetLen += width + 3
			rowLen += 1 + len(content)
			for rowLen > targetLen && unicode.IsSpace(content[len(content)-1]) {
				content = content[:len(content)-1]
				rowLen--
			}
			for rowLen > targetLen && unicode.IsSpace(content[0]) {
				content = content[1:]
				rowLen--
			}
			sb.WriteString("|" + string(content))
		}
		sb.WriteString("|\n")
	}
	if d.Rows() == 0 {
		writeMarkdownAlignment(&sb, d)
	}
	return sb.String()
}

func writeMarkdownAlignment(sb *strings.Builder, d *render.Data) {
	for x := d.StartX(); x < d.Columns(); x++ {
		rightCount, centerCount := 0, 0
		for y := 0; y < d.Rows(); y++ {
			switch d.Cell(x, y).Config.Align.UnwrapOr(table.AlignLeft) {
			case table.AlignRight:
				rightCount++
			case table.AlignCenter:
				centerCount++
			}
		}
		left, right := "-", "-"
		switch {
		case 2*rightCount > d.Rows():
			right = ":"
		case 2*centerCount > d.Rows():
			left, right = ":", ":"
		}
		sb.WriteString("|" + left + strings.Repeat("-", d.ColumnWidth(x)) + right)
	}
	sb.WriteString("|\n")
}

func markdownCell(c *render.Cell, width int) string {
	if strings.TrimSpace(c.Rendered) == "" {
		return strings.Repeat(" ", width)
	}
	content := markdownContent.Replace(c.Rendered)
	m := spacedContent.FindStringSubmatch(content)
	if m == nil {
		return content
	}

	var pre, post string
	if c.Config.Italic.UnwrapOr(false) {
		pre, post = "_", "_"
	}
	if c.Config.Bold.UnwrapOr(false) {
		pre, post = pre+"**", "**"+post
	}
	c.Config.Link.WhenSome(func(link string) {
		pre, post = pre+"[", "]("+link+")"+post
	})
	return m[1] + pre + m[2] + post + m[3]
}
