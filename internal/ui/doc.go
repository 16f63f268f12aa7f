// Package ui contains the Fyne-based desktop user interface. It wires the
// search box to the search controller, registers a font-face rule for every
// returned font and renders one preview card per result. All UI strings are
// localized via Localization.
package ui
