package actionlog

import (
	"strings"
	"testing"
)

func TestLoggerFormat(t *testing.T) {
	var buf strings.Builder
	logger := NewLogger()
	logger.SetWriter(&buf)

	logger.Log(Changed("admin", "component", 7, "core"))

	line := buf.String()
	if !strings.HasSuffix(line, "\n") {
		t.Errorf("log line should end with a newline: %q", line)
	}
	for _, want := range []string{
		"catalogd",
		"action=2",
		"user=admin",
		"object=component/7",
		`changed component "core"`,
	} {
		if !strings.Contains(line, want) {
			t.Errorf("log line %q should contain %q", line, want)
		}
	}
}

func TestMutationEvents(t *testing.T) {
	tests := []struct {
		name    string
		event   MutationEvent
		flag    int
		message string
	}{
		{
			name:    "added",
			event:   Added("admin", "category", 1, "Backend"),
			flag:    ActionAddition,
			message: `added category "Backend"`,
		},
		{
			name:    "changed",
			event:   Changed("admin", "component", 7, "core"),
			flag:    ActionChange,
			message: `changed component "core"`,
		},
		{
			name:    "deleted",
			event:   Deleted("admin", "component", 7, "core"),
			flag:    ActionDeletion,
			message: `deleted component "core"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.event.ActionFlag() != tt.flag {
				t.Errorf("ActionFlag() = %d, want %d", tt.event.ActionFlag(), tt.flag)
			}
			if tt.event.Message() != tt.message {
				t.Errorf("Message() = %q, want %q", tt.event.Message(), tt.message)
			}
		})
	}
}

func TestRecorderWithoutStore(t *testing.T) {
	var buf strings.Builder
	logger := NewLogger()
	logger.SetWriter(&buf)

	recorder := NewRecorder(logger, nil)
	recorder.Record(Added("admin", "component", 1, "core"))

	if buf.Len() == 0 {
		t.Error("recorder should write a log line even without a store")
	}
}
