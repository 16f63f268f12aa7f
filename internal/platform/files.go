package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// AppDirName is the directory name used under the user's config/data roots
const AppDirName = "aurane"

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	RundllCommand  = "rundll32"
	URLHandlerArg  = "url.dll,FileProtocolHandler"
)

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetConfigDir returns the application's config directory
// ($XDG_CONFIG_HOME/aurane on Linux)
func GetConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(base, AppDirName), nil
}

// GetDataDir returns the application's data directory.
// XDG_DATA_HOME wins when set, otherwise ~/.local/share on Unix and the
// user config directory elsewhere.
func GetDataDir() (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, AppDirName), nil
	}

	if runtime.GOOS == OSLinux {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		return filepath.Join(home, ".local", "share", AppDirName), nil
	}

	return GetConfigDir()
}

// OpenWithDefaultApp opens a file path or URL with the system default application
func OpenWithDefaultApp(target string) error {
	if target == "" {
		return fmt.Errorf("nothing to open")
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case OSDarwin:
		cmd = exec.Command(OpenCommand, target)
	case OSWindows:
		// cmd.exe would interpret shell metacharacters in the target
		cmd = exec.Command(RundllCommand, URLHandlerArg, target)
	case OSLinux:
		cmd = exec.Command(XDGOpenCommand, target)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
	return cmd.Start()
}
