package platform

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
	CmdCommand      = "cmd"
	StartCommand    = "start"
	AMCommand       = "am"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
	WindowsCmdFlag     = "/c"
)

// AndroidDownloadsDir is where exports land on Android so the Files app sees them
const AndroidDownloadsDir = "/sdcard/Download"

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// MIME types by export extension
var mimeTypes = map[string]string{
	".json": "application/json",
	".pdf":  "application/pdf",
	".txt":  "text/plain",
}

// MimeType returns the MIME type for a file, "*/*" when unknown
func MimeType(filePath string) string {
	if m, ok := mimeTypes[strings.ToLower(filepath.Ext(filePath))]; ok {
		return m
	}
	return "*/*"
}

// IsAndroid reports whether the process runs on Android.
// Fyne Android apps run as libdist.so.
func IsAndroid() bool {
	return runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		os.Getenv("ANDROID_STORAGE") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so"
}

func existingAbsPath(filePath string) (string, error) {
	if filePath == "" {
		return "", fmt.Errorf("file path is empty")
	}
	if _, err := os.Stat(filePath); err != nil {
		return "", fmt.Errorf("file does not exist: %v", err)
	}
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	return absPath, nil
}

// OpenFileInManager opens the file in the system file manager and highlights it
func OpenFileInManager(filePath string) error {
	absPath, err := existingAbsPath(filePath)
	if err != nil {
		return err
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, MacOSSelectFlag, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, WindowsSelectParam, absPath).Run()
	case OSLinux:
		return openFileInManagerLinux(absPath)
	case OSAndroid:
		return openFileInManagerAndroid(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFileInManagerLinux opens the parent directory; selection is not standardized on Linux
func openFileInManagerLinux(filePath string) error {
	dir := filepath.Dir(filePath)

	if err := exec.Command(XDGOpenCommand, dir).Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}

// openFileInManagerAndroid tries the Downloads root, then the parent directory
func openFileInManagerAndroid(filePath string) error {
	attempts := [][]string{
		{"start", "-a", "android.intent.action.VIEW", "-d", "content://com.android.externalstorage.documents/root/primary/Download"},
		{"start", "-a", "android.intent.action.VIEW", "-d", "file://" + filepath.Dir(filePath)},
		{"start", "-n", "com.google.android.documentsui/.DocumentsActivity"},
		{"start", "-a", "android.settings.INTERNAL_STORAGE_SETTINGS"},
	}
	for _, args := range attempts {
		if err := exec.Command(AMCommand, args...).Run(); err == nil {
			return nil
		}
	}
	return fmt.Errorf("failed to open file in manager: no suitable file manager found")
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// RevealFile shows the file in the file manager. When no file manager can be
// started the file is opened with its default application instead.
func RevealFile(filePath string) error {
	revealErr := OpenFileInManager(filePath)
	if revealErr == nil {
		return nil
	}
	log.Printf("Reveal failed for %s, opening it instead: %v", filePath, revealErr)
	if err := OpenFileWithDefaultApp(filePath); err != nil {
		return errors.Join(revealErr, err)
	}
	return nil
}

// OpenFileWithDefaultApp opens the file with the default system application
func OpenFileWithDefaultApp(filePath string) error {
	absPath, err := existingAbsPath(filePath)
	if err != nil {
		return err
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absPath).Run()
	case OSWindows:
		return exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", absPath).Run()
	case OSLinux:
		return exec.Command(XDGOpenCommand, absPath).Run()
	case OSAndroid:
		return openFileWithDefaultAppAndroid(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

func openFileWithDefaultAppAndroid(filePath string) error {
	attempts := [][]string{
		{"start", "-a", "android.intent.action.VIEW", "-d", "file://" + filePath, "-t", MimeType(filePath)},
		{"start", "-a", "android.intent.action.VIEW", "-d", "file://" + filePath},
	}
	for _, args := range attempts {
		if err := exec.Command(AMCommand, args...).Run(); err == nil {
			return nil
		}
	}
	return fmt.Errorf("failed to open file with any method: no suitable app found")
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	if IsAndroid() {
		return AndroidDownloadsDir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, "Downloads"), nil
}

// NotifyMediaScanner tells Android about a new file so it shows up in the
// Files app. Elsewhere it does nothing.
func NotifyMediaScanner(filePath string) error {
	if !IsAndroid() {
		return nil
	}

	cmd := exec.Command(AMCommand, "broadcast", "-a", "android.intent.action.MEDIA_SCANNER_SCAN_FILE", "-d", "file://"+filePath)

	// Do not block the export on the broadcast
	go func() {
		if err := cmd.Run(); err != nil {
			log.Printf("Failed to notify media scanner about %s: %v", filePath, err)
		}
	}()

	return nil
}
