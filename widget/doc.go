// @focus: #widget { control, tracking }
// Package widget implements the interactive star selector.
//
// A Widget owns a rating.State and the derived symbol set, receives pointer
// lifecycle calls through the Control interface, and reports outcomes as
// events.Event notifications. Hosts (the tcell terminal host, the raster
// renderer, tests) translate their own input into PointerDown, PointerMove,
// PointerUp and PointerCancel calls in widget-local units.
//
// All methods run on the host's UI goroutine; nothing here locks.
package widget
