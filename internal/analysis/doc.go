// Package analysis provides orbit diagnostics for discrete systems:
// Lyapunov exponent estimation and bifurcation diagrams.
//
// Everything here consumes only the public capability surface of
// [dmap.Dynamics] (dimension, Jacobian, evolution, orbit) and the
// parameter interface of [maps.Model]; nothing reaches into system
// internals.
package analysis
