package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ckibe-opt/compiledgraph/bench"
	"github.com/ckibe-opt/compiledgraph/components"
	"github.com/ckibe-opt/compiledgraph/oracle"
	"github.com/ckibe-opt/compiledgraph/reference"
)

var componentsCmd = &cobra.Command{
	Use:   "components",
	Short: "Benchmark connected-components labeling",
	Long: `Benchmarks repeated component labeling of the same graph. This is the
workload where the compiled layout buys the least (the reference labeler is
already linear), so expect a modest speedup.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := currentSettings()
		g, cg, err := prepare(cfg)
		if err != nil {
			return err
		}

		cg.Reverse() // one-time transpose, not part of any single query

		got, err := components.Of(cg)
		if err != nil {
			return err
		}
		if diag := oracle.Partitions(got, reference.Components(g)); !diag.Pass {
			return fmt.Errorf("verification failed: %s", diag)
		}
		log.Info("oracle verification passed")

		baseline, err := bench.Measure(cfg.Queries, func(int) error {
			_ = reference.Components(g)
			return nil
		})
		if err != nil {
			return err
		}

		optimized, err := measure(cfg, func(int) error {
			_, err := components.Label(cg.Forward(), cg.Reverse())
			return err
		})
		if err != nil {
			return err
		}

		fmt.Println(renderReport(bench.Report{
			Label:       "connected components",
			Nodes:       cg.Report().Nodes,
			Arcs:        cg.Report().Arcs,
			CompileCost: cg.Report().Duration,
			Baseline:    baseline,
			Optimized:   optimized,
		}))

		return nil
	},
}
