// Package style maps location categories to the color, shape, and label
// their placeholder icons are drawn with.
//
// The built-in sheet compiled into the binary covers the categories the
// pathfinding dataset tracks. A user sheet loaded from YAML replaces the
// built-in table wholesale after passing JSON Schema validation and a
// format version gate. Lookups never fail: categories the active sheet
// does not know resolve to a fallback style (gray circle labeled "???").
package style
