package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/routenet/analysis"
	"github.com/katalvlaran/routenet/dataset"
	"github.com/katalvlaran/routenet/metrics"
)

var errNoInput = errors.New("exactly one of --dataset, --file or --random is required")

type analyzeFlags struct {
	dataset     string
	file        string
	random      int
	probability float64
	seed        int64
	directed    bool

	mst            string
	apsp           string
	source         string
	denseThreshold float64
	floydMax       int

	json    bool
	metrics bool
}

func newAnalyzeCmd(newLogger func(*cobra.Command) (*slog.Logger, error)) *cobra.Command {
	f := &analyzeFlags{}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyse one route network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd)
			if err != nil {
				return err
			}

			return runAnalyze(cmd.OutOrStdout(), f, logger)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&f.dataset, "dataset", "", "built-in network name (see `routenet datasets`)")
	fs.StringVar(&f.file, "file", "", "YAML file describing one network")
	fs.IntVar(&f.random, "random", 0, "generate a random network with this many airports")
	fs.Float64Var(&f.probability, "probability", 0.15, "route probability for --random")
	fs.Int64Var(&f.seed, "seed", 1, "seed for --random")
	fs.BoolVar(&f.directed, "directed", false, "one-way routes for --random")

	fs.StringVar(&f.mst, "mst", "auto", "MST algorithm: auto, prim, kruskal or skip")
	fs.StringVar(&f.apsp, "apsp", "auto", "all-pairs algorithm: auto, floyd, johnson or skip")
	fs.StringVar(&f.source, "source", "", "single-source query from this airport")
	fs.Float64Var(&f.denseThreshold, "dense-threshold", analysis.DefaultDenseThreshold, "density at and above which Prim is recommended")
	fs.IntVar(&f.floydMax, "floyd-max", analysis.DefaultFloydMaxVertices, "largest vertex count for which Floyd-Warshall is recommended")

	fs.BoolVar(&f.json, "json", false, "print the report as JSON")
	fs.BoolVar(&f.metrics, "metrics", false, "print Prometheus metrics for the runs after the report")

	cmd.MarkFlagsMutuallyExclusive("dataset", "file", "random")
	cmd.MarkFlagsOneRequired("dataset", "file", "random")

	return cmd
}

func loadNetwork(f *analyzeFlags) (dataset.Network, error) {
	switch {
	case f.dataset != "":
		return dataset.Lookup(f.dataset)
	case f.file != "":
		return dataset.LoadFile(f.file)
	case f.random > 0:
		opts := []dataset.RandomOption{}
		if f.directed {
			opts = append(opts, dataset.WithDirected())
		}
		return dataset.RandomSparse(f.random, f.probability, f.seed, opts...)
	default:
		return dataset.Network{}, errNoInput
	}
}

func runAnalyze(out io.Writer, f *analyzeFlags, logger *slog.Logger) error {
	net, err := loadNetwork(f)
	if err != nil {
		return err
	}
	mst, err := analysis.ParseMST(f.mst)
	if err != nil {
		return err
	}
	apsp, err := analysis.ParseAPSP(f.apsp)
	if err != nil {
		return err
	}

	opts := []analysis.Option{
		analysis.WithConfig(analysis.Config{DenseThreshold: f.denseThreshold, FloydMaxVertices: f.floydMax}),
		analysis.WithMST(mst),
		analysis.WithAPSP(apsp),
		analysis.WithSource(f.source),
		analysis.WithLogger(logger.With(slog.String("network", net.Name))),
	}

	var reg *prometheus.Registry
	if f.metrics {
		reg = prometheus.NewRegistry()
		rec, err := metrics.New(reg)
		if err != nil {
			return err
		}
		opts = append(opts, analysis.WithRecorder(rec))
	}

	report, err := analysis.Analyze(net.Spec(), opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", net.Name, err)
	}

	if f.json {
		err = writeJSON(out, net.Name, report)
	} else {
		err = writeText(out, net.Name, report)
	}
	if err != nil {
		return err
	}

	if reg != nil {
		return writeMetrics(out, reg)
	}

	return nil
}

func writeMetrics(out io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	fmt.Fprintln(out)
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(out, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}
