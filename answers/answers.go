// SPDX-License-Identifier: MIT

// Package answers writes solver output (answers, determinants, inverses,
// stability and convergence reports) to a Sink.
//
// Keys are slash-separated, e.g. "max_element/ans07.txt". Case numbers are
// 1-based and zero-padded to the digit count of the total number of cases,
// so a 27-case run writes ans01.txt … ans27.txt and listings sort naturally.
//
// Sinks: answers/fs (a local directory) and answers/s3 (an S3 or MinIO
// bucket). Memory is an in-process Sink for tests.
package answers

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/katalvlaran/gaussjordan/matrix"
)

// Driver identifies a Sink implementation.
type Driver string

const (
	// DriverFilesystem writes under a local directory.
	DriverFilesystem Driver = "fs"
	// DriverS3 writes to an S3 / MinIO compatible bucket.
	DriverS3 Driver = "s3"
	// DriverMemory keeps objects in memory (tests).
	DriverMemory Driver = "memory"
)

// ErrInvalidKey reports an empty, absolute or escaping key.
var ErrInvalidKey = errors.New("answers: invalid key")

// Sink stores report objects.
type Sink interface {
	// Put creates or overwrites the object at key.
	Put(ctx context.Context, key string, body []byte) error
	// Clear removes every object under prefix ("" clears everything).
	Clear(ctx context.Context, prefix string) error
	Driver() Driver
}

// Digits returns the number of decimal digits of total (at least 1).
func Digits(total int) int {
	if total < 0 {
		total = -total
	}

	return len(strconv.Itoa(total))
}

// Key builds "<dir>/<name><number zero-padded to Digits(total)><ext>".
// An empty dir yields a top-level key.
func Key(dir, name string, number, total int, ext string) string {
	base := fmt.Sprintf("%s%0*d%s", name, Digits(total), number, ext)
	if dir == "" {
		return base
	}

	return strings.TrimSuffix(dir, "/") + "/" + base
}

// CleanKey validates key and returns it in canonical slash form.
func CleanKey(key string) (string, error) {
	k := strings.TrimSpace(key)
	if k == "" || strings.HasPrefix(k, "/") || strings.Contains(k, "..") || strings.Contains(k, "\\") {
		return "", fmt.Errorf("%q: %w", key, ErrInvalidKey)
	}

	return k, nil
}

// WriteMatrix stores m under key using the bordered table layout of
// (*matrix.Dense).Format with prec fractional digits.
func WriteMatrix(ctx context.Context, s Sink, key string, m *matrix.Dense, prec int) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("WriteMatrix(%s): %w", key, err)
	}

	return s.Put(ctx, key, []byte(m.Format(prec)))
}

// WriteValue stores a single formatted line under key.
func WriteValue(ctx context.Context, s Sink, key string, format string, args ...any) error {
	return s.Put(ctx, key, []byte(fmt.Sprintf(format, args...)+"\n"))
}

// Memory is a concurrency-safe in-memory Sink.
type Memory struct {
	mu   sync.RWMutex
	objs map[string][]byte
}

var _ Sink = (*Memory)(nil)

// NewMemory returns an empty Memory sink.
func NewMemory() *Memory { return &Memory{objs: make(map[string][]byte)} }

// Driver implements Sink.
func (m *Memory) Driver() Driver { return DriverMemory }

// Put implements Sink.
func (m *Memory) Put(ctx context.Context, key string, body []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	k, err := CleanKey(key)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objs[k] = append([]byte(nil), body...)

	return nil
}

// Clear implements Sink.
func (m *Memory) Clear(ctx context.Context, prefix string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.objs {
		if strings.HasPrefix(k, prefix) {
			delete(m.objs, k)
		}
	}

	return nil
}

// Get returns a copy of the object at key.
func (m *Memory) Get(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.objs[key]
	if !ok {
		return nil, false
	}

	return append([]byte(nil), b...), true
}

// Keys returns all keys in sorted order.
func (m *Memory) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.objs))
	for k := range m.objs {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
