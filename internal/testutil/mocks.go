package testutil

import (
	"chatsplit/internal/providers"
	"fmt"
	"sync"
	"time"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (e LogEntry) Message() string {
	return fmt.Sprintf(e.Format, e.Args...)
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// ByLevel returns the formatted messages logged at level.
func (m *MockLogger) ByLevel(level string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, e := range m.Logs {
		if e.Level == level {
			out = append(out, e.Message())
		}
	}
	return out
}

// MockMetrics implements providers.MetricsProviderInterface.
type MockMetrics struct {
	mu           sync.Mutex
	Grouped      int
	Skipped      int
	Dates        map[string]int
	FilesWritten int
	BytesWritten int
	Durations    map[string]time.Duration
	Successes    map[string]time.Time
	Flushes      int
	FlushErr     error
}

func (m *MockMetrics) AddNodes(grouped, skipped int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Grouped += grouped
	m.Skipped += skipped
}

func (m *MockMetrics) SetDatesTotal(command string, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Dates == nil {
		m.Dates = make(map[string]int)
	}
	m.Dates[command] = count
}

func (m *MockMetrics) IncFilesWritten(_ string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FilesWritten++
}

func (m *MockMetrics) AddBytesWritten(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BytesWritten += count
}

func (m *MockMetrics) ObserveRunDuration(command string, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Durations == nil {
		m.Durations = make(map[string]time.Duration)
	}
	m.Durations[command] = duration
}

func (m *MockMetrics) SetLastSuccess(command string, at time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Successes == nil {
		m.Successes = make(map[string]time.Time)
	}
	m.Successes[command] = at
}

func (m *MockMetrics) Flush() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Flushes++
	return m.FlushErr
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
	Closed       bool
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Name() string      { return "none" }
func (m *MockCompressor) Extension() string { return "" }
func (m *MockCompressor) Close()            { m.Closed = true }
