package storage

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	fileStampLayout   = "02.01.06_15-04-05"
	recordStampLayout = "[02/Jan/2006:15:04:05]"
)

// WriteError is returned when the log file can not be created or appended to.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string { return fmt.Sprintf("log file %s: %v", e.Path, e.Err) }

func (e *WriteError) Unwrap() error { return e.Err }

type FileRecorder struct {
	path string
	out  io.Writer
	now  func() time.Time
	mu   sync.Mutex
}

// NewFileRecorder names the log file after started, so every run gets its own file.
// Nothing touches the disk until Init or Record.
func NewFileRecorder(dir string, started time.Time) *FileRecorder {
	return &FileRecorder{
		path: filepath.Join(dir, FileName(started)),
		out:  os.Stdout,
		now:  time.Now,
	}
}

func FileName(started time.Time) string {
	return "bot_" + started.Format(fileStampLayout) + ".log"
}

func (r *FileRecorder) Path() string { return r.path }

// SetOutput redirects the console copy of every record. nil disables it.
func (r *FileRecorder) SetOutput(w io.Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if w == nil {
		w = io.Discard
	}
	r.out = w
}

// Init creates an empty log file if there is none yet. Calling it again is a no-op.
func (r *FileRecorder) Init() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := os.Stat(r.path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return &WriteError{Path: r.path, Err: fmt.Errorf("ensure log dir: %w", err)}
	}
	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &WriteError{Path: r.path, Err: fmt.Errorf("init log file: %w", err)}
	}
	_ = f.Close()
	return nil
}

func (r *FileRecorder) Record(message string, user *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	line := FormatRecord(r.now(), message, user)
	_, _ = fmt.Fprintln(r.out, line)

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &WriteError{Path: r.path, Err: fmt.Errorf("open append: %w", err)}
	}
	if _, err := f.WriteString(line + "\n"); err != nil {
		_ = f.Close()
		return &WriteError{Path: r.path, Err: fmt.Errorf("append: %w", err)}
	}
	if err := f.Close(); err != nil {
		return &WriteError{Path: r.path, Err: fmt.Errorf("close: %w", err)}
	}
	return nil
}

// LoadRecords returns every line of the log file in the order it was written.
func (r *FileRecorder) LoadRecords() ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open read: %w", err)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)
	var lines []string
	s := bufio.NewScanner(f)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	return lines, nil
}

// FormatRecord renders one log line without the trailing newline.
func FormatRecord(at time.Time, message string, user *User) string {
	text := at.Format(recordStampLayout) + " LOG: " + message
	if user != nil {
		text += fmt.Sprintf("USER-%d_%s", user.ID, user.FirstName)
	}
	return text
}
