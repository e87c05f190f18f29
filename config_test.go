package bloch

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
)

func TestWithDefaultsFillsZeroFields(t *testing.T) {
	c := Config{}.withDefaults()
	d := DefaultConfig()
	if c.XExtent != d.XExtent || c.YExtent != d.YExtent || c.CameraZ != d.CameraZ {
		t.Errorf("camera defaults not applied: %+v", c)
	}
	if c.Near != d.Near || c.Far != d.Far {
		t.Errorf("clip defaults not applied: near=%v far=%v", c.Near, c.Far)
	}
	if c.Sensitivity != d.Sensitivity || c.HandleRadius != d.HandleRadius {
		t.Errorf("interaction defaults not applied: %+v", c)
	}
	if c.Logger != logrus.StandardLogger() {
		t.Error("expected the standard logger")
	}
	if c.InitialRotation != (mgl64.Vec3{}) {
		t.Errorf("InitialRotation = %v, want the zero rotation as given", c.InitialRotation)
	}
}

func TestWithDefaultsKeepsSetFields(t *testing.T) {
	c := Config{XExtent: 4, YExtent: 1, Sensitivity: 0.5, HandleRadius: 0.2}.withDefaults()
	if c.XExtent != 4 || c.YExtent != 1 || c.Sensitivity != 0.5 || c.HandleRadius != 0.2 {
		t.Errorf("explicit fields overwritten: %+v", c)
	}
	e := New(Config{XExtent: 4, YExtent: 1})
	if e.Camera().Aspect() != 4 {
		t.Errorf("aspect = %v, want 4", e.Camera().Aspect())
	}
}

func TestDebugWithoutLoggerLeavesStandardLevel(t *testing.T) {
	std := logrus.StandardLogger()
	before := std.GetLevel()
	defer std.SetLevel(before)
	std.SetLevel(logrus.InfoLevel)

	e := New(Config{Debug: true})
	if got := logrus.GetLevel(); got != logrus.InfoLevel {
		t.Errorf("standard logger level = %v, want info", got)
	}
	if e.log.Logger == std {
		t.Fatal("debug engine should not share the standard logger")
	}
	if e.log.Logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("engine logger level = %v, want debug", e.log.Logger.GetLevel())
	}

	if c := (Config{}).withDefaults(); c.Logger != logrus.StandardLogger() {
		t.Error("non-debug config should use the standard logger")
	}
}
