// Package explorer provides a Bubble Tea component for trying the view
// searches interactively.
//
// The component holds a text, a needle (or character set), the selected
// search operation and the position argument, and renders the text with the
// current hit highlighted.
package explorer
