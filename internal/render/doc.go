// Package render writes the console's tables, panels, and the textual
// map summary. It is deliberately dumb: permission flags and filtered
// collections are computed by the caller and passed in, so nothing here
// makes authorization or derivation decisions.
package render
