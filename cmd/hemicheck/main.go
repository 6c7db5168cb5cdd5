// Package main provides the hemicheck CLI entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmriqc/hemicheck/config"
	"github.com/dmriqc/hemicheck/gradient"
	"github.com/dmriqc/hemicheck/qc"
	"github.com/dmriqc/hemicheck/report"
	"github.com/dmriqc/hemicheck/vec3"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "hemicheck",
		Short: "Hemisphere coverage QC for diffusion-gradient schemes",
		Long: `hemicheck tests whether the non-b0 directions of a diffusion
acquisition scheme all fit within a single hemisphere, which indicates a
half-sphere sampling scheme, and reports a representative pole when they do.

Results can optionally be recorded in a SQLite database for later review
across a study.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the hemicheck version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("hemicheck %s\n", version)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}

// loadConfig layers file/env config under any explicitly set flags.
func loadConfig(cmd *cobra.Command, configPath string) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFromFile(configPath)
		if err != nil {
			return config.Config{}, err
		}
	} else {
		cfg = config.LoadFromEnv()
	}
	flags := cmd.Flags()
	if flags.Changed("tolerance") {
		cfg.Tolerance, _ = flags.GetFloat64("tolerance")
	}
	if flags.Changed("b0-threshold") {
		cfg.B0Threshold, _ = flags.GetFloat64("b0-threshold")
	}
	if flags.Changed("db") {
		cfg.ReportDB, _ = flags.GetString("db")
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newCheckCmd() *cobra.Command {
	var (
		bvalPath   string
		bvecPath   string
		configPath string
		recordID   string
	)

	cmd := &cobra.Command{
		Use:   "check --bval FILE --bvec FILE",
		Short: "Run the hemisphere test on a bval/bvec pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, configPath)
			if err != nil {
				return err
			}

			tab, err := gradient.Load(bvalPath, bvecPath)
			if err != nil {
				return err
			}
			tab.B0Threshold = cfg.B0Threshold
			nDirs := len(tab.DirectionVecs())

			res, err := qc.CheckHemisphere(qc.Input{
				Table:     tab,
				Tolerance: cfg.Tolerance,
			})
			if err != nil {
				return err
			}

			if res.IsHemispherical {
				fmt.Printf("hemispherical: yes (%d directions)\n", nDirs)
				fmt.Printf("pole: (%.6f, %.6f, %.6f)\n", res.Pole[0], res.Pole[1], res.Pole[2])
			} else {
				fmt.Printf("hemispherical: no (%d directions)\n", nDirs)
			}

			if cfg.ReportDB != "" {
				id := recordID
				if id == "" {
					id = strings.TrimSuffix(filepath.Base(bvecPath), filepath.Ext(bvecPath))
				}
				if err := saveRecord(cmd.Context(), cfg, report.Record{
					ID:              id,
					BvalPath:        bvalPath,
					BvecPath:        bvecPath,
					Tolerance:       cfg.Tolerance,
					NumDirections:   nDirs,
					IsHemispherical: res.IsHemispherical,
					Pole:            res.Pole,
				}); err != nil {
					return err
				}
				fmt.Printf("recorded as %q in %s\n", id, cfg.ReportDB)
			}

			if !res.IsHemispherical {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&bvalPath, "bval", "", "path to the b-values file (required)")
	cmd.Flags().StringVar(&bvecPath, "bvec", "", "path to the b-vectors file (required)")
	cmd.Flags().Float64("tolerance", 1e-3, "unit-norm tolerance for b-vectors")
	cmd.Flags().Float64("b0-threshold", 50, "b-value cutoff for b0 samples")
	cmd.Flags().String("db", "", "SQLite database to record the result in")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file")
	cmd.Flags().StringVar(&recordID, "id", "", "record id (default: bvec file stem)")
	_ = cmd.MarkFlagRequired("bval")
	_ = cmd.MarkFlagRequired("bvec")

	return cmd
}

func saveRecord(ctx context.Context, cfg config.Config, rec report.Record) error {
	db, err := report.Open(cfg.ReportDB)
	if err != nil {
		return err
	}
	defer db.Close()

	store, err := report.NewStore(db)
	if err != nil {
		return err
	}
	return store.Save(ctx, rec)
}

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Inspect recorded check results",
	}
	cmd.AddCommand(newReportListCmd())
	cmd.AddCommand(newReportSimilarCmd())
	return cmd
}

func openStore(cmd *cobra.Command, configPath string) (*report.Store, func(), error) {
	cfg, err := loadConfig(cmd, configPath)
	if err != nil {
		return nil, nil, err
	}
	if cfg.ReportDB == "" {
		return nil, nil, fmt.Errorf("no report database configured; use --db or HEMICHECK_REPORT_DB")
	}
	db, err := report.Open(cfg.ReportDB)
	if err != nil {
		return nil, nil, err
	}
	store, err := report.NewStore(db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return store, func() { db.Close() }, nil
}

func newReportListCmd() *cobra.Command {
	var (
		configPath string
		limit      int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded check results, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeDB, err := openStore(cmd, configPath)
			if err != nil {
				return err
			}
			defer closeDB()

			recs, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			for _, r := range recs {
				verdict := "no"
				if r.IsHemispherical {
					verdict = "yes"
				}
				fmt.Printf("%s\t%s\themi=%s\tdirs=%d\tpole=(%.4f,%.4f,%.4f)\n",
					r.CreatedAt.Format("2006-01-02 15:04:05"), r.ID, verdict,
					r.NumDirections, r.Pole[0], r.Pole[1], r.Pole[2])
			}
			return nil
		},
	}
	cmd.Flags().String("db", "", "SQLite database to read")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum records to print (0 = all)")
	return cmd
}

func newReportSimilarCmd() *cobra.Command {
	var (
		configPath string
		poleArg    string
		k          int
	)
	cmd := &cobra.Command{
		Use:   "similar --pole X,Y,Z",
		Short: "Rank recorded results by pole similarity",
		RunE: func(cmd *cobra.Command, args []string) error {
			pole, err := parsePole(poleArg)
			if err != nil {
				return err
			}
			store, closeDB, err := openStore(cmd, configPath)
			if err != nil {
				return err
			}
			defer closeDB()

			matches, err := store.NearestPoles(cmd.Context(), pole, k)
			if err != nil {
				return err
			}
			for _, m := range matches {
				fmt.Printf("%s\tscore=%.6f\tpole=(%.4f,%.4f,%.4f)\n",
					m.ID, m.Score, m.Pole[0], m.Pole[1], m.Pole[2])
			}
			return nil
		},
	}
	cmd.Flags().String("db", "", "SQLite database to read")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file")
	cmd.Flags().StringVar(&poleArg, "pole", "", "query direction as X,Y,Z (required)")
	cmd.Flags().IntVar(&k, "k", 5, "maximum matches to print (0 = all)")
	_ = cmd.MarkFlagRequired("pole")
	return cmd
}

func parsePole(s string) (vec3.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return vec3.Vec3{}, fmt.Errorf("pole must be 3 comma-separated values, got %q", s)
	}
	var pole vec3.Vec3
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return vec3.Vec3{}, fmt.Errorf("invalid pole component %q", p)
		}
		pole[i] = v
	}
	return pole, nil
}
