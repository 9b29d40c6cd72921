//go:build windows

package platform

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

const registryRunKey = `HKCU\Software\Microsoft\Windows\CurrentVersion\Run`

func (service *platformService) EnableAutostart(appName, execPath string) error {
	if appName == "" {
		return fmt.Errorf("enable autostart: app name is empty")
	}
	if execPath == "" {
		return fmt.Errorf("enable autostart: exec path is empty")
	}

	command := exec.Command(
		"reg", "add", registryRunKey,
		"/v", appName,
		"/t", "REG_SZ",
		"/d", quoteWindowsPath(execPath),
		"/f",
	)
	output, err := command.CombinedOutput()
	if err != nil {
		return fmt.Errorf("enable autostart: reg add failed: %w: %s", err, strings.TrimSpace(string(output)))
	}

	return nil
}

func (service *platformService) DisableAutostart(appName string) error {
	if appName == "" {
		return fmt.Errorf("disable autostart: app name is empty")
	}

	command := exec.Command("reg", "delete", registryRunKey, "/v", appName, "/f")
	output, err := command.CombinedOutput()
	if err != nil {
		return fmt.Errorf("disable autostart: reg delete failed: %w: %s", err, strings.TrimSpace(string(output)))
	}

	return nil
}

func (service *platformService) IsAutostartEnabled(appName string) (bool, error) {
	if appName == "" {
		return false, fmt.Errorf("query autostart: app name is empty")
	}

	// reg query exits non-zero when the value is absent.
	err := exec.Command("reg", "query", registryRunKey, "/v", appName).Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return false, nil
		}
		return false, fmt.Errorf("query autostart: %w", err)
	}
	return true, nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "AppData", "Roaming")
}

func quoteWindowsPath(execPath string) string {
	return fmt.Sprintf(`"%s"`, strings.Trim(execPath, `"`))
}
