package actionlog

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Action flags, matching the action_log.action_flag column
const (
	ActionAddition = 1
	ActionChange   = 2
	ActionDeletion = 3
)

// Event represents a recordable admin action
type Event interface {
	Username() string
	ObjectType() string
	ObjectID() int64
	ObjectRepr() string
	ActionFlag() int
	Message() string
}

// Logger writes action events as single structured lines
type Logger struct {
	writer  io.Writer
	appName string
	pid     int
}

// NewLogger creates a new action logger writing to stdout
func NewLogger() *Logger {
	return &Logger{
		writer:  os.Stdout,
		appName: "catalogd",
		pid:     os.Getpid(),
	}
}

// SetWriter sets the output writer for the logger
func (l *Logger) SetWriter(w io.Writer) {
	l.writer = w
}

// Log writes an action event.
// Format: TIMESTAMP APP-NAME PID action=FLAG user=USER object=TYPE/ID MSG
func (l *Logger) Log(event Event) {
	timestamp := time.Now().UTC().Format(time.RFC3339)

	logLine := fmt.Sprintf("%s %s %d action=%d user=%s object=%s/%d %s\n",
		timestamp,
		l.appName,
		l.pid,
		event.ActionFlag(),
		event.Username(),
		event.ObjectType(),
		event.ObjectID(),
		event.Message(),
	)

	_, _ = l.writer.Write([]byte(logLine))
}

// Recorder logs events and persists them when a store is attached
type Recorder struct {
	logger *Logger
	store  *Store
}

// NewRecorder creates a recorder. store may be nil, in which case events are
// only written to the log line output.
func NewRecorder(logger *Logger, store *Store) *Recorder {
	if logger == nil {
		logger = NewLogger()
	}
	return &Recorder{logger: logger, store: store}
}

// Record writes the event to the logger and, when available, the store.
// Persistence failures are reported on stderr but never fail the request.
func (r *Recorder) Record(event Event) {
	r.logger.Log(event)

	if r.store != nil {
		if err := r.store.Save(event); err != nil {
			fmt.Fprintf(os.Stderr, "actionlog: failed to save event: %v\n", err)
		}
	}
}
