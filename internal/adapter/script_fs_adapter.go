// Package adapter contains filesystem adapters for the shlint CLI.
package adapter

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/shlint/internal/model"
)

// scriptExtensions are the file suffixes collected when a directory is
// given on the command line.
var scriptExtensions = []string{".sh", ".bash"}

// ScriptFSAdapter abstracts the filesystem operations the driver
// relies on. It hides direct os access so the workflow logic can be
// tested without touching the disk.
type ScriptFSAdapter interface {
	// Collect expands the given roots into script files: files are
	// taken as-is, directories are walked for shell scripts.
	Collect(roots []m.Path) ([]m.Path, error)

	// ReadLines loads a file and splits it into lines without
	// terminators. finalNewline reports whether the file ended with a
	// newline, so a rewrite can reproduce the original ending.
	ReadLines(path m.Path) (lines []string, finalNewline bool, err error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// WriteFileAtomic replaces the content of path via a scratch file
	// in the same directory, carrying over the permission bits. A
	// failure mid-write never leaves the original partially
	// overwritten.
	WriteFileAtomic(path m.Path, content []byte, perm os.FileMode) error
}

// LocalScriptFSAdapter is the disk-backed ScriptFSAdapter.
type LocalScriptFSAdapter struct{}

// NewLocalScriptFSAdapter constructs a LocalScriptFSAdapter ready to
// be wired into the workflow.
func NewLocalScriptFSAdapter() *LocalScriptFSAdapter {
	return &LocalScriptFSAdapter{}
}

// Collect expands roots into a deduplicated, ordered list of script
// files.
func (a *LocalScriptFSAdapter) Collect(roots []m.Path) ([]m.Path, error) {
	seen := make(map[string]struct{})

	var paths []m.Path

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}

		seen[path] = struct{}{}
		paths = append(paths, m.Path(path))
	}

	for _, root := range roots {
		info, err := a.FileInfo(root)
		if err != nil {
			// A root that cannot be stat'ed is carried as-is; the
			// failure surfaces when the file is read, so one bad path
			// never stops the other files in the invocation.
			add(string(root))

			continue
		}

		if !info.IsDir() {
			add(string(root))

			continue
		}

		err = filepath.Walk(string(root), func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if !info.IsDir() && (isScript(path) || hasShellShebang(path)) {
				add(path)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return paths, nil
}

// ReadLines reads a file and splits it into lines. A trailing newline
// does not produce a final empty line; whether one was present is
// reported separately.
func (a *LocalScriptFSAdapter) ReadLines(path m.Path) ([]string, bool, error) {
	content, err := os.ReadFile(string(path))
	if err != nil {
		return nil, false, err
	}

	if len(content) == 0 {
		return nil, false, nil
	}

	text := string(content)
	finalNewline := strings.HasSuffix(text, "\n")

	if finalNewline {
		text = strings.TrimSuffix(text, "\n")
	}

	return strings.Split(text, "\n"), finalNewline, nil
}

// FileInfo returns metadata for a path.
func (a *LocalScriptFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// WriteFileAtomic writes content to a scratch file next to path, sets
// the original permission bits, and renames it into place.
func (a *LocalScriptFSAdapter) WriteFileAtomic(path m.Path, content []byte, perm os.FileMode) error {
	dir := filepath.Dir(string(path))

	scratch, err := os.CreateTemp(dir, ".shlint-*")
	if err != nil {
		return fmt.Errorf("create scratch file: %w", err)
	}

	scratchName := scratch.Name()

	if _, err := scratch.Write(content); err != nil {
		scratch.Close()
		os.Remove(scratchName)

		return fmt.Errorf("write scratch file: %w", err)
	}

	if err := scratch.Chmod(perm); err != nil {
		scratch.Close()
		os.Remove(scratchName)

		return fmt.Errorf("chmod scratch file: %w", err)
	}

	if err := scratch.Close(); err != nil {
		os.Remove(scratchName)

		return fmt.Errorf("close scratch file: %w", err)
	}

	if err := os.Rename(scratchName, string(path)); err != nil {
		os.Remove(scratchName)

		return fmt.Errorf("replace %s: %w", path, err)
	}

	return nil
}

func isScript(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, known := range scriptExtensions {
		if ext == known {
			return true
		}
	}

	return false
}

// hasShellShebang sniffs the first line of an extensionless file for a
// shell interpreter. Files with some other extension are never sniffed.
func hasShellShebang(path string) bool {
	if filepath.Ext(path) != "" {
		return false
	}

	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		return false
	}

	first := scanner.Text()

	return strings.HasPrefix(first, "#!") && strings.Contains(first, "sh")
}
