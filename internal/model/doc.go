package model

// Package model defines domain data structures used across the app: fonts
// returned by a search backend, the search state owned by the controller,
// and the status enum driving the view. Structures are plain values so the
// UI can receive copies without sharing memory with the controller.
