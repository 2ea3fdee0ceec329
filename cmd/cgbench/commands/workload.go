package commands

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/ckibe-opt/compiledgraph/bench"
	"github.com/ckibe-opt/compiledgraph/compiled"
	"github.com/ckibe-opt/compiledgraph/core"
)

// prepare generates the workload graph and compiles it, logging both costs.
func prepare(cfg settings) (*core.Graph, *compiled.Graph[string], error) {
	log.WithFields(logrus.Fields{
		"nodes":  cfg.Nodes,
		"degree": cfg.Degree,
		"seed":   cfg.Seed,
	}).Info("generating sparse graph")

	g, err := bench.SparseGraph(cfg.Nodes, cfg.Degree, cfg.Seed)
	if err != nil {
		return nil, nil, err
	}
	log.WithField("edges", g.EdgeCount()).Info("graph ready")

	cg, err := compiled.Compile[string](g)
	if err != nil {
		return nil, nil, err
	}
	log.WithFields(logrus.Fields{
		"cost": cg.Report().Duration,
		"arcs": cg.Report().Arcs,
	}).Info("graph compiled")

	return g, cg, nil
}

// measure times the compiled-side workload, fanning out when --parallel > 1.
func measure(cfg settings, fn func(i int) error) (bench.Stats, error) {
	if cfg.Parallel > 1 {
		log.WithField("workers", cfg.Parallel).Debug("running compiled workload in parallel")
		return bench.MeasureParallel(context.Background(), cfg.Parallel, cfg.Queries, fn)
	}

	return bench.Measure(cfg.Queries, fn)
}
