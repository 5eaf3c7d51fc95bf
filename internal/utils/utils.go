package utils

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

// DefaultUtils provides a default implementation for the types.Utils interface.
// It includes a text logger and numbers journal segments in a directory.
type DefaultUtils struct {
	logger     *slog.Logger
	journalDir string
}

var _ types.Utils = (*DefaultUtils)(nil)

// NewDefaultUtils creates a new DefaultUtils. An empty journalDir disables
// journal path generation.
func NewDefaultUtils(journalDir string, logLevel slog.Level, writer io.Writer) *DefaultUtils {
	if writer == nil {
		writer = os.Stdout
	}
	return &DefaultUtils{
		logger:     slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{Level: logLevel})),
		journalDir: journalDir,
	}
}

// GetLogger returns the logger instance.
func (u *DefaultUtils) GetLogger() *slog.Logger {
	return u.logger
}

func (u *DefaultUtils) JournalDir() string {
	return u.journalDir
}

// GetJournalFiles returns the journal segments in the directory sorted by
// sequence number.
func (u *DefaultUtils) GetJournalFiles() ([]string, error) {
	if u.journalDir == "" {
		return []string{}, nil
	}

	files, err := os.ReadDir(u.journalDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read journal directory: %w", err)
	}

	var names []string
	for _, file := range files {
		if file.IsDir() || !strings.HasPrefix(file.Name(), types.JournalBaseName+".") {
			continue
		}
		if _, ok := seqOf(file.Name()); ok {
			names = append(names, file.Name())
		}
	}

	sort.Slice(names, func(i, j int) bool {
		a, _ := seqOf(names[i])
		b, _ := seqOf(names[j])
		return a < b
	})

	for i, name := range names {
		names[i] = filepath.Join(u.journalDir, name)
	}
	return names, nil
}

// GenNextJournalPath returns the path and sequence number after the last
// existing segment, creating the directory when needed.
func (u *DefaultUtils) GenNextJournalPath() (string, uint64, error) {
	if u.journalDir == "" {
		return "", 0, fmt.Errorf("journal directory is not configured")
	}
	if err := os.MkdirAll(u.journalDir, 0o755); err != nil {
		return "", 0, err
	}
	files, err := u.GetJournalFiles()
	if err != nil {
		return "", 0, err
	}

	var next uint64
	if len(files) > 0 {
		last, _ := seqOf(filepath.Base(files[len(files)-1]))
		next = last + 1
	}
	path := filepath.Join(u.journalDir, fmt.Sprintf("%s.%03d", types.JournalBaseName, next))
	return path, next, nil
}

func seqOf(name string) (uint64, bool) {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	n, err := strconv.ParseUint(ext, 10, 64)
	return n, err == nil
}

// ParseLogLevel maps a config string to a slog level, defaulting to info.
func ParseLogLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
