// @focus: #rating { state, geometry }
// Package rating holds the value model of the star selector.
//
// State is a single integer in [1, Count]. Symbol frames are derived from a
// fixed Geometry, hit testing maps widget-local points onto frames, and
// ApplyHit is the only transition that mutates the value.
//
// Nothing here renders or dispatches; see package widget for the interactive
// component built on top.
package rating
