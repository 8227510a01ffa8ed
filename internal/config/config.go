// Package config handles transform pipeline configuration.
package config

import "fmt"

// Config describes a transform pipeline run: the steps to compose, the
// points to push through the result, and logging settings.
type Config struct {
	Pipeline []Step        `yaml:"pipeline"`
	Points   []Point       `yaml:"points"`
	Logging  LoggingConfig `yaml:"logging"`
}

// Point is one input point.
type Point struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

// Step is one stage of the pipeline. Steps compose left to right: the
// first step in the list is applied to the points first.
type Step struct {
	// Op selects the matrix builder: translate, scale, rotate_x,
	// rotate_y, rotate_z, axis_angle, euler, look_at, perspective or
	// ortho.
	Op string `yaml:"op"`
	// Args are the builder parameters, in the order the corresponding
	// pkg/math constructor takes them.
	Args []float32 `yaml:"args"`
	// Order names the euler axis order (xyz, xzy, yxz, yzx, zxy, zyx).
	// Only meaningful for op euler; empty means xyz.
	Order string `yaml:"order,omitempty"`
	// Degrees marks angle arguments as degrees instead of radians.
	Degrees bool `yaml:"degrees,omitempty"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// argCount maps each op to the number of args it requires.
var argCount = map[string]int{
	"translate":   3,
	"scale":       3,
	"rotate_x":    1,
	"rotate_y":    1,
	"rotate_z":    1,
	"axis_angle":  4,
	"euler":       3,
	"look_at":     9,
	"perspective": 4,
	"ortho":       6,
}

// Default returns a Config with a small example pipeline.
func Default() *Config {
	return &Config{
		Pipeline: []Step{
			{Op: "scale", Args: []float32{2, 2, 2}},
			{Op: "rotate_y", Args: []float32{90}, Degrees: true},
			{Op: "translate", Args: []float32{0, 1, 0}},
		},
		Points: []Point{
			{X: 1, Y: 0, Z: 0},
			{X: 0, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 1},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks every pipeline step for a known op and the right
// argument count.
func (c *Config) Validate() error {
	for i, s := range c.Pipeline {
		want, ok := argCount[s.Op]
		if !ok {
			return fmt.Errorf("step %d: unknown op %q", i, s.Op)
		}
		if len(s.Args) != want {
			return fmt.Errorf("step %d: op %q takes %d args, got %d", i, s.Op, want, len(s.Args))
		}
	}
	return nil
}
