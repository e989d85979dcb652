// Package selfupdate checks GitHub releases for a newer gitdaily binary and
// replaces the running executable. It shells out to the gh CLI deliberately,
// reusing its authentication instead of managing tokens.
package selfupdate

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Release represents a GitHub release
type Release struct {
	TagName string `json:"tagName"`
}

// CheckForUpdate queries GitHub releases and returns latest if newer than current
func CheckForUpdate(currentVersion, repo string) (*Release, error) {
	cmd := exec.Command("gh", "release", "list",
		"--repo", repo,
		"--json", "tagName",
		"--limit", "1",
	)

	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("gh release list failed: %w", err)
	}

	var releases []Release
	if err := json.Unmarshal(output, &releases); err != nil {
		return nil, fmt.Errorf("failed to parse releases: %w", err)
	}

	if len(releases) == 0 {
		return nil, nil
	}

	latest := &releases[0]

	latestVer := NormalizeVersion(latest.TagName)
	currentVer := NormalizeVersion(currentVersion)

	// "dev" builds are always older than any release
	if currentVer == "dev" {
		return latest, nil
	}

	// Simple string comparison works for semver if format is consistent
	if latestVer > currentVer {
		return latest, nil
	}

	return nil, nil
}

// NormalizeVersion strips version prefixes for comparison
func NormalizeVersion(v string) string {
	v = strings.TrimPrefix(v, "gitdaily/")
	return strings.TrimPrefix(v, "v")
}

func binaryPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	// Resolve symlinks to get actual path
	return filepath.EvalSymlinks(exe)
}

// binaryAssetName returns the expected release asset name for this platform.
func binaryAssetName() string {
	return fmt.Sprintf("gitdaily-%s-%s", runtime.GOOS, runtime.GOARCH)
}

// DownloadAndInstall downloads the binary and replaces the current executable
func DownloadAndInstall(release *Release, repo string) error {
	target, err := binaryPath()
	if err != nil {
		return fmt.Errorf("failed to get binary path: %w", err)
	}

	tmpPath := filepath.Join(os.TempDir(), "gitdaily-update")

	cmd := exec.Command("gh", "release", "download",
		release.TagName,
		"--repo", repo,
		"--pattern", binaryAssetName(),
		"--output", tmpPath,
		"--clobber",
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("download failed: %s", string(output))
	}

	if err := os.Chmod(tmpPath, 0755); err != nil {
		return fmt.Errorf("chmod failed: %w", err)
	}

	// Sanity check: a real binary is never this small
	info, err := os.Stat(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to stat downloaded file: %w", err)
	}
	if info.Size() < 1000 {
		return fmt.Errorf("downloaded file too small (%d bytes), likely invalid", info.Size())
	}

	// Atomic replace: rename over the current binary
	if err := os.Rename(tmpPath, target); err != nil {
		// Rename can fail across devices; fall back to copy
		return copyFile(tmpPath, target)
	}

	return nil
}

// copyFile copies src to dst with proper permissions
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	// Create temp file in same directory as dst for atomic replace
	tmpFile, err := os.CreateTemp(filepath.Dir(dst), "gitdaily-update-*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	if _, err := io.Copy(tmpFile, srcFile); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return err
	}
	tmpFile.Close()

	if err := os.Chmod(tmpPath, 0755); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, dst); err != nil {
		os.Remove(tmpPath)
		return err
	}

	os.Remove(src)
	return nil
}
