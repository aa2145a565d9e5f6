package platform

import (
	"fmt"
	"os/exec"
	"strings"
)

// CanShareNatively reports whether a system share sheet is available
func CanShareNatively() bool {
	return IsAndroid()
}

// shareArgs builds the am arguments for a SEND chooser with plain text
func shareArgs(title, text, link string) []string {
	body := strings.TrimSpace(text + "\n" + link)
	return []string{
		"start",
		"-a", "android.intent.action.SEND",
		"-t", "text/plain",
		"--es", "android.intent.extra.SUBJECT", title,
		"--es", "android.intent.extra.TITLE", title,
		"--es", "android.intent.extra.TEXT", body,
	}
}

// ShareText opens the native share sheet
func ShareText(title, text, link string) error {
	if !CanShareNatively() {
		return fmt.Errorf("native share is not available on this platform")
	}
	if err := exec.Command(AMCommand, shareArgs(title, text, link)...).Run(); err != nil {
		return fmt.Errorf("failed to start share intent: %w", err)
	}
	return nil
}
