// Package viz renders the resume document in the terminal.
//
//   - [Renderer]: walks a document tree and styles it with the current theme
//   - [GraphView]: draws the projects node graph on a braille [Canvas]
//   - [EnergyChart] and [Sparkline]: kinetic energy of the graph over time
//   - Theme selection with 6 built-in color schemes
//
// Node payloads that implement [Viewer] (tables, the graph, the video
// transport, the posts filter) draw themselves; everything else is drawn
// from the node kind and class.
package viz
