// Package viz provides a terminal live view of an evolving orbit,
// built on bubbletea with lipgloss styling and an asciigraph history
// panel. It consumes systems only through [dmap.Dynamics].
package viz
