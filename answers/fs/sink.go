// SPDX-License-Identifier: MIT

// Package fs implements answers.Sink on the local filesystem. Keys map to
// relative paths under the root directory.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/gaussjordan/answers"
)

// DefaultRoot is used when New receives an empty root.
const DefaultRoot = "answers"

// Sink writes objects as plain files under root.
type Sink struct {
	root string
}

var _ answers.Sink = (*Sink)(nil)

// New returns a filesystem sink rooted at root, creating it if needed.
func New(root string) (*Sink, error) {
	if root == "" {
		root = DefaultRoot
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("answers/fs: create root %s: %w", root, err)
	}

	return &Sink{root: root}, nil
}

// Root returns the root directory.
func (s *Sink) Root() string { return s.root }

// Driver implements answers.Sink.
func (s *Sink) Driver() answers.Driver { return answers.DriverFilesystem }

func (s *Sink) pathFor(key string) (string, error) {
	k, err := answers.CleanKey(key)
	if err != nil {
		return "", err
	}

	return filepath.Join(s.root, filepath.FromSlash(filepath.ToSlash(filepath.Clean(k)))), nil
}

// Put writes body to root/key, creating parent directories.
func (s *Sink) Put(ctx context.Context, key string, body []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := s.pathFor(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}

	return os.WriteFile(p, body, 0o644)
}

// Clear removes root/prefix. An empty prefix empties the root directory but
// keeps the directory itself.
func (s *Sink) Clear(ctx context.Context, prefix string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if prefix == "" {
		entries, err := os.ReadDir(s.root)
		if err != nil {
			return err
		}
		for _, e := range entries {
			if err := os.RemoveAll(filepath.Join(s.root, e.Name())); err != nil {
				return err
			}
		}

		return nil
	}
	p, err := s.pathFor(prefix)
	if err != nil {
		return err
	}

	return os.RemoveAll(p)
}
