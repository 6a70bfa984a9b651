// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// styles of tables
var (
	TitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	HeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true).Padding(0, 1)
	CellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	LabelStyle  = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("252"))
	BorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	GraphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
)

// newTable returns a table with the default styles; the first nlabels columns are labels
func newTable(title string, nlabels int, headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(BorderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderStyle
			}
			if col < nlabels {
				return LabelStyle
			}
			return CellStyle
		})
	return lipgloss.JoinVertical(lipgloss.Left, TitleStyle.Render(title), t.Render())
}
