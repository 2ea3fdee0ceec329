package commands

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/ckibe-opt/compiledgraph/bench"
	"github.com/ckibe-opt/compiledgraph/dijkstra"
	"github.com/ckibe-opt/compiledgraph/oracle"
	"github.com/ckibe-opt/compiledgraph/reference"
)

var ssspCmd = &cobra.Command{
	Use:   "sssp",
	Short: "Benchmark single-source shortest paths (Dijkstra)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := currentSettings()
		g, cg, err := prepare(cfg)
		if err != nil {
			return err
		}

		rng := rand.New(rand.NewSource(cfg.Seed))
		sources := make([]string, cfg.Queries)
		for i := range sources {
			sources[i] = fmt.Sprintf("n%d", rng.Intn(cfg.Nodes))
		}

		// Cross-check one full result before burning time on the benchmark.
		got, err := dijkstra.From(cg, sources[0])
		if err != nil {
			return err
		}
		want, err := reference.Dijkstra(g, sources[0])
		if err != nil {
			return err
		}
		if diag := oracle.Distances(got, want, oracle.DefaultTolerance); !diag.Pass {
			return fmt.Errorf("verification failed: %s", diag)
		}
		log.Info("oracle verification passed")

		baseline, err := bench.Measure(cfg.Queries, func(i int) error {
			_, err := reference.Dijkstra(g, sources[i])
			return err
		})
		if err != nil {
			return err
		}

		optimized, err := measure(cfg, func(i int) error {
			_, err := dijkstra.From(cg, sources[i])
			return err
		})
		if err != nil {
			return err
		}

		fmt.Println(renderReport(bench.Report{
			Label:       "single-source shortest paths",
			Nodes:       cg.Report().Nodes,
			Arcs:        cg.Report().Arcs,
			CompileCost: cg.Report().Duration,
			Baseline:    baseline,
			Optimized:   optimized,
		}))

		return nil
	},
}
