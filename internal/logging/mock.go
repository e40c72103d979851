package logging

// MockLogger captures log entries for verification in tests.
type MockLogger struct {
	Entries       *[]LogEntry
	pendingError  error
	pendingFields []Field
}

// LogEntry is a single entry captured by MockLogger.
type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
	Error   error
}

// NewMockLogger returns a MockLogger with a shared entry buffer, so entries
// logged through WithError/WithField derivatives are still visible on the
// original.
func NewMockLogger() *MockLogger {
	return &MockLogger{Entries: &[]LogEntry{}}
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	*m.Entries = append(*m.Entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  append(append([]Field{}, m.pendingFields...), fields...),
		Error:   m.pendingError,
	})
}

func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("DEBUG", msg, fields) }
func (m *MockLogger) Info(msg string, fields ...Field)  { m.record("INFO", msg, fields) }
func (m *MockLogger) Warn(msg string, fields ...Field)  { m.record("WARN", msg, fields) }
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("ERROR", msg, fields) }

func (m *MockLogger) WithError(err error) Logger {
	return &MockLogger{Entries: m.Entries, pendingError: err, pendingFields: m.pendingFields}
}

func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return &MockLogger{
		Entries:       m.Entries,
		pendingError:  m.pendingError,
		pendingFields: append(append([]Field{}, m.pendingFields...), Field{Key: key, Value: value}),
	}
}

// Warnings returns the messages of all WARN-level entries.
func (m *MockLogger) Warnings() []string {
	var msgs []string
	for _, e := range *m.Entries {
		if e.Level == "WARN" {
			msgs = append(msgs, e.Message)
		}
	}
	return msgs
}
