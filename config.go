package bloch

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
)

// Config holds the engine settings. Zero numeric fields fall back to the
// defaults in DefaultConfig, except InitialRotation which is used as given.
type Config struct {
	// XExtent and YExtent are the half-width and half-height of the
	// orthographic view in world units.
	XExtent float64
	YExtent float64
	// CameraZ is the camera distance from the origin along +Z.
	CameraZ float64
	// Near and Far clip the pick ray.
	Near float64
	Far  float64

	// Sensitivity converts background drag deltas into radians of view rotation.
	Sensitivity float64
	// HandleRadius is the pick radius of the state-vector handle.
	HandleRadius float64
	// InitialRotation is the starting view orientation as XYZ Euler angles.
	InitialRotation mgl64.Vec3

	// Intersector replaces the built-in scene intersector when set.
	Intersector Intersector
	// Logger receives engine logs. Defaults to the logrus standard logger, or
	// to a private logger writing to the same output when Debug is set.
	Logger logrus.FieldLogger
	// Debug logs zone arbitration and per-frame drain stats.
	Debug bool
}

// DefaultConfig returns the stock Bloch sphere setup: a 6x3 orthographic view
// from z=2 and the sphere tilted so all three axes are visible.
func DefaultConfig() Config {
	return Config{
		XExtent:         3,
		YExtent:         1.5,
		CameraZ:         2,
		Near:            0.1,
		Far:             5,
		Sensitivity:     0.01,
		HandleRadius:    0.1,
		InitialRotation: mgl64.Vec3{-math.Pi / 4, 0, -(math.Pi/2 + math.Pi/4)},
	}
}

// withDefaults fills zero numeric fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.XExtent <= 0 {
		c.XExtent = d.XExtent
	}
	if c.YExtent <= 0 {
		c.YExtent = d.YExtent
	}
	if c.CameraZ == 0 {
		c.CameraZ = d.CameraZ
	}
	if c.Near == 0 {
		c.Near = d.Near
	}
	if c.Far == 0 {
		c.Far = d.Far
	}
	if c.Sensitivity == 0 {
		c.Sensitivity = d.Sensitivity
	}
	if c.HandleRadius == 0 {
		c.HandleRadius = d.HandleRadius
	}
	if c.Logger == nil {
		c.Logger = defaultLogger(c.Debug)
	}
	return c
}

// defaultLogger returns the standard logger, or in debug mode a private copy
// of it so the global level stays untouched.
func defaultLogger(debug bool) logrus.FieldLogger {
	std := logrus.StandardLogger()
	if !debug {
		return std
	}
	l := logrus.New()
	l.SetOutput(std.Out)
	l.SetFormatter(std.Formatter)
	l.SetLevel(logrus.DebugLevel)
	return l
}
