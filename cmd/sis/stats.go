package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	sisapp "github.com/mozgsvina/sis-app"
	"github.com/mozgsvina/sis-app/config"
	"github.com/mozgsvina/sis-app/stats"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print volume aggregations for the whole corpus",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store, err := cfg.OpenStore(cmd.Context())
	if err != nil {
		return err
	}

	exp, err := sisapp.Open(cmd.Context(), sisapp.Source{
		Store:          store,
		AnnotationsKey: cfg.AnnotationsKey,
		FrequenciesKey: cfg.FrequenciesKey,
	}, sisapp.WithLogger(sisapp.NewTextLogger(parseLogLevel(cfg.LogLevel))))
	if err != nil {
		return err
	}

	records := exp.Records()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "MEAN VOLUME BY SOUND TYPE")
	fmt.Fprintln(w, "type\tparagraphs\thuman\tnature\tartificial")
	for _, row := range stats.MeanVolumeBySoundType(records) {
		fmt.Fprintf(w, "%s\t%d\t%.2f\t%.2f\t%.2f\n",
			row.SoundType, row.Count, row.Human, row.Nature, row.Artificial)
	}

	fmt.Fprintln(w, "\nMEAN VOLUME BY YEAR")
	fmt.Fprintln(w, "year\tparagraphs\thuman\tnature\tartificial")
	for _, row := range stats.MeanVolumeByYear(records) {
		fmt.Fprintf(w, "%d\t%d\t%.2f\t%.2f\t%.2f\n",
			row.Year, row.Count, row.Human, row.Nature, row.Artificial)
	}

	fmt.Fprintln(w, "\nVOLUME SUMMARY")
	fmt.Fprintln(w, "dimension\tcount\tmean\tmin\tmax\tstddev")
	for _, s := range stats.Describe(records) {
		fmt.Fprintf(w, "%s\t%d\t%.2f\t%d\t%d\t%.2f\n",
			s.Dimension, s.Count, s.Mean, s.Min, s.Max, s.StdDev)
	}

	return w.Flush()
}
