// Package main provides the descent CLI: it runs every gradient descent
// variant over one shared synthetic dataset and plots their weight-space
// paths.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/urfave/cli.v1"

	"github.com/descent-ml/descent/internal/config"
	"github.com/descent-ml/descent/internal/dataset"
	"github.com/descent-ml/descent/internal/optim"
	"github.com/descent-ml/descent/internal/plot"
	"github.com/descent-ml/descent/internal/regression"
	"github.com/descent-ml/descent/internal/trajectory"
)

func main() {
	app := cli.NewApp()
	app.Name = "descent"
	app.Usage = "compare gradient descent variants on a toy linear regression"
	app.Version = "0.1.0"
	app.Commands = []cli.Command{
		{
			Name:  "run",
			Usage: "Run all optimizer variants and save weight-space plots",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "config",
					Usage: "Optional TOML `file` overriding the built-in defaults",
				},
				cli.StringFlag{
					Name:  "out",
					Value: "plots",
					Usage: "Output `directory` for rendered plots",
				},
				cli.Uint64Flag{
					Name:  "seed",
					Usage: "Override the random seed",
				},
				cli.IntFlag{
					Name:  "epochs",
					Usage: "Override the epoch count",
				},
				cli.BoolFlag{
					Name:  "zoom",
					Usage: "Also save a plot zoomed near the convergence point",
				},
			},
			Action: func(c *cli.Context) error {
				params := config.Default()
				if path := c.String("config"); path != "" {
					var err error
					params, err = config.Load(path)
					if err != nil {
						return err
					}
				}
				if c.IsSet("seed") {
					params.Seed = c.Uint64("seed")
				}
				if c.IsSet("epochs") {
					params.EpochCount = c.Int("epochs")
				}
				if err := params.Validate(); err != nil {
					return err
				}
				return run(params, c.String("out"), c.Bool("zoom"))
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(params config.Params, outDir string, zoom bool) error {
	// cpu/mem profiling via PERF environment flag
	if profileWhich := os.Getenv("PERF"); profileWhich != "" {
		if profileWhich == "mem" {
			defer profile.Start(profile.MemProfile).Stop()
		} else if profileWhich == "cpu" {
			defer profile.Start(profile.CPUProfile).Stop()
		}
	}

	fmt.Println("Run params:")
	fmt.Println("  samples=", params.SampleCount)
	fmt.Println("  domain=", params.DomainRange)
	fmt.Println("  noise std=", params.NoiseStd)
	fmt.Println("  learn rate=", params.LearningRate)
	fmt.Println("  momentum=", params.MomentumCoefficient)
	fmt.Println("  batch size=", params.BatchSize)
	fmt.Println("  epochs=", params.EpochCount)
	fmt.Println("  seed=", params.Seed)

	d, err := dataset.Generate(
		params.SampleCount,
		params.DomainRange[0], params.DomainRange[1],
		params.NoiseStd,
		rand.NewSource(params.Seed),
	)
	if err != nil {
		return err
	}

	// Closed-form least-squares fit as a reference point for where every
	// variant should end up.
	alpha, beta := stat.LinearRegression(d.X, d.Y, nil, false)
	fmt.Printf("\nOLS baseline: intercept=%.6f slope=%.6f\n\n", alpha, beta)

	series := make([]plot.Series, 0, 5)
	var batchFinal []float64
	start := time.Now()

	// Each variant draws from its own seeded stream so the runs are
	// reproducible independently of execution order.
	for i, v := range variants(params) {
		rng := rand.New(rand.NewSource(params.Seed + uint64(i) + 1))
		traj, err := v.run(d, rng)
		if err != nil {
			return err
		}
		w := traj.Final()
		fmt.Printf("%-12s steps=%-8d intercept=%.6f slope=%.6f loss=%.6f\n",
			v.name, traj.Len()-1, w[0], w[1], regression.Loss(d, nil, w))
		series = append(series, plot.Series{Name: v.name, Traj: traj})
		if v.name == "batch" {
			batchFinal = w
		}
	}
	fmt.Printf("\nElapsed time: %v\n", time.Since(start))

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return err
	}
	path := filepath.Join(outDir, "paths.png")
	if err := plot.Save(series, "Gradient descent paths", path, nil); err != nil {
		return err
	}
	fmt.Println("saved", path)

	if zoom {
		limits := &plot.Limits{
			IMin: batchFinal[0] - 0.05, IMax: batchFinal[0] + 0.05,
			SMin: batchFinal[1] - 0.1, SMax: batchFinal[1] + 0.1,
		}
		zoomPath := filepath.Join(outDir, "paths_zoom.png")
		if err := plot.Save(series, "Gradient descent paths (zoom)", zoomPath, limits); err != nil {
			return err
		}
		fmt.Println("saved", zoomPath)
	}
	return nil
}

type variant struct {
	name string
	run  func(dataset.Dataset, *rand.Rand) (*trajectory.Trajectory, error)
}

// variants builds the five reference runs. Constructors are re-invoked
// per run so every variant starts with zeroed accumulator state.
func variants(p config.Params) []variant {
	plain := optim.SGDConfig{LR: p.LearningRate}
	return []variant{
		{"batch", func(d dataset.Dataset, _ *rand.Rand) (*trajectory.Trajectory, error) {
			opt, err := optim.NewSGD(plain)
			if err != nil {
				return nil, err
			}
			return optim.Batch(d, opt, p.EpochCount)
		}},
		{"stochastic", func(d dataset.Dataset, rng *rand.Rand) (*trajectory.Trajectory, error) {
			opt, err := optim.NewSGD(plain)
			if err != nil {
				return nil, err
			}
			res, err := optim.PerSample(d, opt, p.EpochCount, rng)
			return res.Steps, err
		}},
		{"mini-batch", func(d dataset.Dataset, rng *rand.Rand) (*trajectory.Trajectory, error) {
			opt, err := optim.NewSGD(plain)
			if err != nil {
				return nil, err
			}
			res, err := optim.MiniBatch(d, opt, p.BatchSize, p.EpochCount, rng)
			return res.Steps, err
		}},
		{"momentum", func(d dataset.Dataset, rng *rand.Rand) (*trajectory.Trajectory, error) {
			opt, err := optim.NewSGD(optim.SGDConfig{LR: p.LearningRate, Momentum: p.MomentumCoefficient})
			if err != nil {
				return nil, err
			}
			res, err := optim.PerSample(d, opt, p.EpochCount, rng)
			return res.Steps, err
		}},
		{"rmsprop", func(d dataset.Dataset, rng *rand.Rand) (*trajectory.Trajectory, error) {
			opt, err := optim.NewRMSProp(optim.RMSPropConfig{
				LR:    p.RMSPropLearningRate,
				Decay: p.MomentumCoefficient,
				Eps:   p.RMSPropEpsilon,
			})
			if err != nil {
				return nil, err
			}
			res, err := optim.PerSample(d, opt, p.EpochCount, rng)
			return res.Steps, err
		}},
	}
}
