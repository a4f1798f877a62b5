// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package format

import (
	"fmt"
	"strings"

	"github.com/ndtable/ndtable/render"
	"github.com/ndtable/ndtable/table"
)

var htmlContent = strings.NewReplacer("<", "&lt;", ">", "&gt;", "\n", "<br>")

// HTMLTable writes a <table> element. Column headers go into <thead> as
// <th> cells. With styles set, color, weight, style and alignment of every
// non-empty cell are written as inline styles.
func HTMLTable(d *render.Data, styles bool) string {
	headers := d.StartY() == -1
	tab := ""
	if headers {
		tab = "  "
	}

	var sb strings.Builder
	sb.WriteString("<table>\n")
	for y := d.StartY(); y < d.Rows(); y++ {
		if y == -1 {
			sb.WriteString("  <thead>\n")
		}
		if headers && y == 0 {
			sb.WriteString("  </thead>\n")
			sb.WriteString("  <tbody>\n")
		}
		sb.WriteString(tab + "  <tr>\n")
		tag := "td"
		if y == -1 {
			tag = "th"
		}
		for x := d.StartX(); x < d.Columns(); x++ {
			c := d.Cell(x, y)
			var linkOpen, linkClose string
			c.Config.Link.WhenSome(func(link string) {
				linkOpen = fmt.Sprintf(`<a href="%s">`, link)
				linkClose = "</a>"
			})
			content := strings.TrimSpace(htmlContent.Replace(c.Rendered))
			if content == "" && linkOpen != "" {
				content = "link"
			}
			attr := ""
			if s := htmlStyles(c.Config); styles && content != "" && len(s) > 0 {
				attr = fmt.Sprintf(` style="%s"`, strings.Join(s, "; "))
			}
			fmt.Fprintf(&sb, "%s    <%s%s>%s%s%s</%s>\n", tab, tag, attr, linkOpen, content, linkClose, tag)
		}
		sb.WriteString(tab + "  </tr>\n")
	}
	if headers {
		if d.Rows() == 0 {
			sb.WriteString("  </thead>\n")
		} else {
			sb.WriteString("  </tbody>\n")
		}
	}
	sb.WriteString("</table>\n")
	return sb.String()
}

func htmlStyles(cfg table.Config) []string {
	var s []string
	if c := cfg.Color.UnwrapOr(table.ColorDefault); c != table.ColorDefault {
		s = append(s, "color: "+string(c))
	}
	if cfg.Bold.UnwrapOr(false) {
		s = append(s, "font-weight: bold")
	}
	if cfg.Italic.UnwrapOr(false) {
		s = append(s, "font-style: italic")
	}
	cfg.Align.WhenSome(func(a table.Align) {
		s = append(s, "text-align: "+string(a))
	})
	return s
}
