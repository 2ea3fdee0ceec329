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

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Benchmark point-to-point shortest paths (bidirectional Dijkstra)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := currentSettings()
		g, cg, err := prepare(cfg)
		if err != nil {
			return err
		}

		rng := rand.New(rand.NewSource(cfg.Seed))
		type pair struct{ src, dst string }
		pairs := make([]pair, cfg.Queries)
		for i := range pairs {
			pairs[i] = pair{
				src: fmt.Sprintf("n%d", rng.Intn(cfg.Nodes)),
				dst: fmt.Sprintf("n%d", rng.Intn(cfg.Nodes)),
			}
		}

		// Build the reverse store outside the timed loop: it is part of the
		// one-time compilation cost, not of any single query.
		cg.Reverse()

		res, err := dijkstra.Between(cg, pairs[0].src, pairs[0].dst)
		if err != nil {
			return err
		}
		refDist, _, refFound, err := reference.ShortestPath(g, pairs[0].src, pairs[0].dst)
		if err != nil {
			return err
		}
		if refFound != res.Found {
			return fmt.Errorf("verification failed: reachability disagreement on %s→%s", pairs[0].src, pairs[0].dst)
		}
		if diag := oracle.Path(cg, pairs[0].src, pairs[0].dst, res, oracle.DefaultTolerance); !diag.Pass {
			return fmt.Errorf("verification failed: %s", diag)
		}
		if refFound && abs(refDist-res.Distance) > oracle.DefaultTolerance {
			return fmt.Errorf("verification failed: distance %v vs reference %v", res.Distance, refDist)
		}
		log.Info("oracle verification passed")

		baseline, err := bench.Measure(cfg.Queries, func(i int) error {
			_, _, _, err := reference.ShortestPath(g, pairs[i].src, pairs[i].dst)
			return err
		})
		if err != nil {
			return err
		}

		optimized, err := measure(cfg, func(i int) error {
			_, err := dijkstra.Between(cg, pairs[i].src, pairs[i].dst)
			return err
		})
		if err != nil {
			return err
		}

		fmt.Println(renderReport(bench.Report{
			Label:       "point-to-point shortest path",
			Nodes:       cg.Report().Nodes,
			Arcs:        cg.Report().Arcs,
			CompileCost: cg.Report().Duration,
			Baseline:    baseline,
			Optimized:   optimized,
		}))

		return nil
	},
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
