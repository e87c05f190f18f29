package bloch

import (
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestNewLoggerTagsComponent(t *testing.T) {
	logger, hook := test.NewNullLogger()
	e := New(Config{Logger: logger})
	e.log.Info("hello")

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("expected a log entry")
	}
	if entry.Data["component"] != "bloch" {
		t.Errorf("component = %v, want bloch", entry.Data["component"])
	}
}

func TestDebugLogDrainStats(t *testing.T) {
	logger, hook := test.NewNullLogger()
	e := New(Config{Logger: logger, Debug: true})

	// Nothing queued: no stats entry.
	e.Render()
	for _, entry := range hook.AllEntries() {
		if entry.Message == "frame drained" {
			t.Fatal("empty frame should not log drain stats")
		}
	}

	e.OnPointerDown(0.9, 0.9)
	e.OnPointerMove(0.8, 0.9, -1, 0)
	e.OnPointerUp(0.8, 0.9)
	e.Render()

	var found *logrus.Entry
	for _, entry := range hook.AllEntries() {
		if entry.Message == "frame drained" {
			found = entry
		}
	}
	if found == nil {
		t.Fatal("expected a frame drained entry")
	}
	if found.Level != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", found.Level)
	}
	if found.Data["events"] != 3 || found.Data["claims"] != 1 || found.Data["releases"] != 1 {
		t.Errorf("unexpected stats %v", found.Data)
	}
}

func TestDebugLogDisabled(t *testing.T) {
	logger, hook := test.NewNullLogger()
	e := New(Config{Logger: logger})
	e.OnPointerDown(0.9, 0.9)
	e.Render()
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.DebugLevel {
			t.Errorf("debug entry logged without Debug: %q", entry.Message)
		}
	}
}

func TestEnqueueLogsDroppedEvent(t *testing.T) {
	logger, hook := test.NewNullLogger()
	e := New(Config{Logger: logger, Debug: true})
	e.OnPointerMove(0, 0, math.Inf(1), 0)
	if e.Pending() != 0 {
		t.Fatal("non-finite event was queued")
	}
	if entry := hook.LastEntry(); entry == nil || entry.Message != "dropping non-finite pointer event" {
		t.Errorf("expected a drop entry, got %+v", entry)
	}
}
