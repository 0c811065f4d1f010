// Package ui holds the lipgloss stylesheet for CLI output.
//
// [Palette] groups the named styles (title, ok, err, warn, faint) that command
// actions use when rendering artists, albums, tracks, and search results.
package ui
