package platform

// Package platform contains OS integration glue: per-user data and config
// directories, directory creation and opening URLs or files with the
// system's default application.
