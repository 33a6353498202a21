package main

import (
	"fmt"
	"os"

	sisapp "github.com/mozgsvina/sis-app"
	"github.com/mozgsvina/sis-app/config"
	"github.com/mozgsvina/sis-app/corpus"
	"github.com/mozgsvina/sis-app/export"
	"github.com/spf13/cobra"
)

var exportFlags struct {
	format     string
	out        string
	yearFrom   int
	yearTo     int
	soundTypes []string
	labels     []string
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export filtered records as CSV or JSON-lines",
	Long: fmt.Sprintf(`Export applies the given filters and writes at most %d matching records
to a file or stdout.`, export.Limit),
	RunE: runExport,
}

func init() {
	f := exportCmd.Flags()
	f.StringVar(&exportFlags.format, "format", "csv", "export format: csv or jsonl")
	f.StringVarP(&exportFlags.out, "out", "o", "-", "output file, - for stdout")
	f.IntVar(&exportFlags.yearFrom, "year-from", 0, "lower bound of the year filter")
	f.IntVar(&exportFlags.yearTo, "year-to", 0, "upper bound of the year filter")
	f.StringSliceVar(&exportFlags.soundTypes, "sound-type", nil, "sound types to keep (d, nd, dnd)")
	f.StringSliceVar(&exportFlags.labels, "label", nil, "token labels to keep (any match)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	format, err := export.ParseFormat(exportFlags.format)
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

	fc := exp.DefaultFilter()
	if fc.Years != nil {
		if exportFlags.yearFrom != 0 {
			fc.Years.Start = exportFlags.yearFrom
		}
		if exportFlags.yearTo != 0 {
			fc.Years.End = exportFlags.yearTo
		}
	}
	for _, st := range exportFlags.soundTypes {
		if t := corpus.SoundType(st); t.Valid() {
			fc.SoundTypes = append(fc.SoundTypes, t)
		}
	}
	fc.Labels = exportFlags.labels

	sess := exp.NewSessionWith(fc)

	out := os.Stdout
	if exportFlags.out != "-" {
		out, err = os.Create(exportFlags.out)
		if err != nil {
			return err
		}
		defer out.Close()
	}

	if err := sess.Export(out, format); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "exported %d of %d matching records\n",
		min(sess.Matches(), export.Limit), sess.Matches())
	return nil
}
