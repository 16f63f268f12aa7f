package catalog

// Package catalog is the offline font search backend: a SQLite table of
// font names and asset URLs, seeded from an embedded starter list and
// extendable by importing JSON files.
