package logging

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FilePrefix is the name prefix of generated log files.
const FilePrefix = "groceryops-"

// LogConfig selects where and how the CLI writes its log.
type LogConfig struct {
	Format        string // human (default), text or json
	Level         string // DEBUG, INFO (default), WARN or ERROR
	Output        string // "-" for stderr, "none", "" for a generated file, or a path
	Dir           string // directory of generated and relative log files
	RetentionDays int    // generated files older than this are removed; 0 keeps all
}

// LogFile is an opened log destination.
type LogFile struct {
	Path   string // empty unless the log goes to a file
	file   *os.File
	writer io.Writer
}

// NewLogFile opens the destination cfg.Output names. Files are appended
// to and start with a line recording the command line.
func NewLogFile(cfg *LogConfig) (*LogFile, error) {
	switch strings.ToLower(cfg.Output) {
	case "none":
		return &LogFile{writer: io.Discard}, nil
	case "-":
		return &LogFile{writer: os.Stderr}, nil
	}

	path := logPath(cfg, time.Now().UTC())
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	fmt.Fprintf(f, "# %s %s\n", time.Now().UTC().Format(time.RFC3339), strings.Join(os.Args, " "))
	return &LogFile{Path: path, file: f, writer: f}, nil
}

func logPath(cfg *LogConfig, now time.Time) string {
	switch {
	case cfg.Output == "":
		return filepath.Join(cfg.Dir, GenerateLogFilename(now))
	case filepath.IsAbs(cfg.Output):
		return cfg.Output
	default:
		return filepath.Join(cfg.Dir, cfg.Output)
	}
}

// Writer returns the log destination.
func (lf *LogFile) Writer() io.Writer { return lf.writer }

// Close closes the file, if any.
func (lf *LogFile) Close() error {
	if lf.file == nil {
		return nil
	}
	return lf.file.Close()
}

// GenerateLogFilename names a log file after t in UTC with millisecond
// precision: groceryops-YYYYMMDD-HHMMSS-sss.log.
func GenerateLogFilename(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%s%s-%03d.log", FilePrefix, t.Format("20060102-150405"), t.Nanosecond()/int(time.Millisecond))
}

// CleanupOldLogFiles removes generated log files in dir last modified more
// than retentionDays ago. Other files are left alone, and a missing dir is
// not an error.
func CleanupOldLogFiles(dir string, retentionDays int) error {
	if retentionDays <= 0 {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading log directory: %w", err)
	}

	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, FilePrefix) || filepath.Ext(name) != ".log" {
			continue
		}
		info, err := e.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}
		// best effort
		_ = os.Remove(filepath.Join(dir, name))
	}
	return nil
}
