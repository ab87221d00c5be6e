// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ErrNotFound is returned when a listed file does not exist
var ErrNotFound = errors.Base("file not found")

// ErrNotText is returned when a file is not valid UTF-8
var ErrNotText = errors.Base("file is not valid UTF-8")

// 📄 Document is the in-memory content of one file being rewritten
type Document struct {
	Path     string      // Path as listed
	AbsPath  string      // Resolved path on disk
	Mode     fs.FileMode // Permissions to restore on write
	Original string      // Content as read
	Content  string      // Current content
}

// Changed reports whether Content differs from Original
func (d *Document) Changed() bool {
	return d.Content != d.Original
}

// Checksum returns a SHA-256 hash of the current content
func (d *Document) Checksum() string {
	return calculateChecksum([]byte(d.Content))
}

// 💾 Manager reads and writes documents relative to a base directory
type Manager struct {
	baseDir string
}

// 🏭 New creates a new manager rooted at baseDir
func New(baseDir string) *Manager {
	if baseDir == "" {
		baseDir = "."
	}
	return &Manager{baseDir: filepath.Clean(baseDir)}
}

// BaseDir returns the directory relative paths resolve against
func (m *Manager) BaseDir() string {
	return m.baseDir
}

// 🔒 getAbsPath resolves path against the base directory. Absolute paths are
// used as they are.
func (m *Manager) getAbsPath(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(m.baseDir, path)
}

// 🔍 calculateChecksum generates a SHA-256 hash of the content
func calculateChecksum(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// FileExists reports whether path exists
func (m *Manager) FileExists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(m.getAbsPath(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Errorf("checking file existence: %w", err)
}

// 📖 ReadDocument loads path into a Document. Missing files yield ErrNotFound.
func (m *Manager) ReadDocument(ctx context.Context, path string) (*Document, error) {
	absPath := m.getAbsPath(path)

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WithDetails(ErrNotFound, "path", absPath)
		}
		return nil, errors.Errorf("checking file: %w", err)
	}
	if info.IsDir() {
		return nil, errors.Errorf("%s is a directory", absPath)
	}

	content, err := os.ReadFile(absPath)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	if !utf8.Valid(content) {
		return nil, errors.WithDetails(ErrNotText, "path", absPath)
	}

	zerolog.Ctx(ctx).Debug().
		Str("path", absPath).
		Int("size", len(content)).
		Str("checksum", calculateChecksum(content)).
		Msg("read document")

	return &Document{
		Path:     path,
		AbsPath:  absPath,
		Mode:     info.Mode().Perm(),
		Original: string(content),
		Content:  string(content),
	}, nil
}

// 💾 SaveDocument overwrites the document's file with its current content
func (m *Manager) SaveDocument(ctx context.Context, doc *Document) error {
	if err := m.WriteFileAtomic(ctx, doc.AbsPath, []byte(doc.Content), doc.Mode); err != nil {
		return err
	}

	zerolog.Ctx(ctx).Debug().
		Str("path", doc.AbsPath).
		Int("size", len(doc.Content)).
		Str("checksum", doc.Checksum()).
		Msg("wrote document")
	return nil
}

// WriteFileAtomic writes content to a temp file next to path and renames it
// over path
func (m *Manager) WriteFileAtomic(ctx context.Context, path string, content []byte, mode fs.FileMode) error {
	absPath := m.getAbsPath(path)
	tempPath := absPath + ".restyle.tmp"

	if mode == 0 {
		mode = 0o644
	}

	// Write to temp file
	if err := os.WriteFile(tempPath, content, mode); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}

	// umask may have narrowed the mode
	if err := os.Chmod(tempPath, mode); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("setting temp file mode: %w", err)
	}

	// Rename temp file to target (atomic operation)
	if err := os.Rename(tempPath, absPath); err != nil {
		os.Remove(tempPath) // Clean up temp file
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}
