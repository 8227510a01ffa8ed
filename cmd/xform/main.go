// xform composes a transform pipeline from a YAML description and
// pushes a set of points through it.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/gmath/internal/config"
	"github.com/Faultbox/gmath/internal/logger"
	"github.com/Faultbox/gmath/pkg/math"
)

var flagDump = flag.String("dump-config", "", "Write the effective config to this path and exit")

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *flagDump != "" {
		if err := cfg.SaveTo(*flagDump); err != nil {
			logger.Error("failed to write config", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("config written", zap.String("path", *flagDump))
		return
	}

	if err := run(cfg); err != nil {
		logger.Error("pipeline error", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	total := math.Mat4Identity(nil)
	for i, step := range cfg.Pipeline {
		m, err := buildStep(step)
		if err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		// Column-vector convention: the latest step goes on the left
		// so the first pipeline entry hits the points first.
		m.Mul(total, total)
		logger.Sugar.Debugf("step %d: %s %v", i, step.Op, step.Args)
	}

	for _, p := range cfg.Points {
		in := math.NewVec3(p.X, p.Y, p.Z)
		out := in.TransformMat4(total, nil)
		logger.Info("transformed",
			zap.Float32s("in", []float32{in.X, in.Y, in.Z}),
			zap.Float32s("out", []float32{out.X, out.Y, out.Z}))
		fmt.Printf("(%g, %g, %g) -> (%g, %g, %g)\n", in.X, in.Y, in.Z, out.X, out.Y, out.Z)
	}
	return nil
}

// buildStep turns one pipeline step into its matrix.
func buildStep(s config.Step) (*math.Mat4, error) {
	a := s.Args
	angle := func(v float32) float32 {
		if s.Degrees {
			return math.DegToRad(v)
		}
		return v
	}

	switch s.Op {
	case "translate":
		return math.Translate(a[0], a[1], a[2], nil), nil
	case "scale":
		return math.Scale(a[0], a[1], a[2], nil), nil
	case "rotate_x":
		return math.RotateX(angle(a[0]), nil), nil
	case "rotate_y":
		return math.RotateY(angle(a[0]), nil), nil
	case "rotate_z":
		return math.RotateZ(angle(a[0]), nil), nil
	case "axis_angle":
		axis := math.NewVec3(a[0], a[1], a[2])
		return math.RotateAxis(axis, angle(a[3]), nil), nil
	case "euler":
		order := math.EulerOrder(s.Order)
		if s.Order == "" {
			order = math.OrderXYZ
		}
		q := math.QuatFromEuler(angle(a[0]), angle(a[1]), angle(a[2]), order, nil)
		return math.Mat4FromQuat(q, nil), nil
	case "look_at":
		eye := math.NewVec3(a[0], a[1], a[2])
		center := math.NewVec3(a[3], a[4], a[5])
		up := math.NewVec3(a[6], a[7], a[8])
		return math.LookAt(eye, center, up, nil), nil
	case "perspective":
		return math.Perspective(angle(a[0]), a[1], a[2], a[3], nil), nil
	case "ortho":
		return math.Ortho(a[0], a[1], a[2], a[3], a[4], a[5], nil), nil
	}
	return nil, fmt.Errorf("unknown op %q", s.Op)
}
