// Package render rasterizes placeholder map icons: a colored shape
// outline over a dark translucent fill, with a short label centered on
// top, on a fixed 64x64 transparent canvas.
//
// The label font is resolved once at startup. A scalable face (a user
// TTF or the embedded Go Regular) is preferred; when neither parses the
// renderer falls back to the built-in 7x13 bitmap face at an
// approximate centered position.
package render
