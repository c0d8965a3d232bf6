// @focus: #sys { term }
// Package terminal hosts the star selector on a tcell screen.
//
// Features:
//   - Mouse press/drag/release translated into widget pointer calls
//   - Cell to widget-unit mapping via Layout
//   - Flare rendering as widened glyphs, driven by a frame ticker
//   - Gesture cancel on Esc, resize and focus loss
//
// All widget calls happen on the Run goroutine; PollEvent runs on its own
// goroutine and only forwards events over a channel.
package terminal
