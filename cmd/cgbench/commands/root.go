// Package commands wires the cgbench CLI: randomized benchmark workloads
// that pit the compiled query engine against the dictionary-based reference
// implementation and report speedup and amortization break-even.
package commands

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	log     = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "cgbench",
	Short: "Benchmark compiled graph queries against the reference implementation",
	Long: `cgbench generates a random sparse graph, runs a randomized query workload
against both the dictionary-based reference implementation and the compiled
(CSR) engine, cross-checks a sample of results through the correctness oracle,
and prints latency, speedup and break-even figures.`,
	// Run: nil (forces help output).
	Run: nil,
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default $HOME/.cgbench.yaml)")
	pf.Int("nodes", 10000, "number of graph nodes")
	pf.Int("degree", 8, "average node degree")
	pf.Int("queries", 100, "number of randomized queries")
	pf.Int64("seed", 42, "random seed for graph and workload")
	pf.Int("parallel", 1, "concurrent workers for the compiled workload")
	pf.BoolP("verbose", "v", false, "debug logging")

	for _, name := range []string{"nodes", "degree", "queries", "seed", "parallel", "verbose"} {
		if err := viper.BindPFlag(name, pf.Lookup(name)); err != nil {
			log.Fatal(err)
		}
	}

	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	rootCmd.AddCommand(ssspCmd)
	rootCmd.AddCommand(routeCmd)
	rootCmd.AddCommand(componentsCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigName(".cgbench")
			viper.SetConfigType("yaml")
		}
	}
	viper.SetEnvPrefix("CGBENCH")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig() // absent config file is fine

	if viper.GetBool("verbose") {
		log.SetLevel(logrus.DebugLevel)
	}
}

// settings snapshots the effective workload configuration.
type settings struct {
	Nodes    int
	Degree   int
	Queries  int
	Seed     int64
	Parallel int
}

func currentSettings() settings {
	return settings{
		Nodes:    viper.GetInt("nodes"),
		Degree:   viper.GetInt("degree"),
		Queries:  viper.GetInt("queries"),
		Seed:     viper.GetInt64("seed"),
		Parallel: viper.GetInt("parallel"),
	}
}
