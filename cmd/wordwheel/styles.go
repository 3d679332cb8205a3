// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jbeda/geom"
)

var (
	accent = lipgloss.Color("#7D56F4")
	muted  = lipgloss.Color("#888888")

	titleStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(muted).
			Width(16)

	valueStyle = lipgloss.NewStyle().
			Bold(true)

	wordStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87")).
			Bold(true)
)

func printTitle(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf(format, args...)))
}

func printField(w io.Writer, label string, value any) {
	fmt.Fprintln(w, labelStyle.Render(label)+valueStyle.Render(fmt.Sprint(value)))
}

func printWords(w io.Writer, words []string) {
	for _, word := range words {
		fmt.Fprintln(w, wordStyle.Render(word))
	}
}

// joinCoords renders points as "(x, y) (x, y) ...".
func joinCoords(points []geom.Coord) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = fmt.Sprintf("(%g, %g)", p.X, p.Y)
	}

	return strings.Join(parts, " ")
}
