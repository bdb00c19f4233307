// Package workspace ties the pieces together: it opens the dataset files,
// drives the importers with the caller's filters, and reports progress and
// failures. A failed dataset is reported and skipped; the remaining datasets
// are still imported, and anything already merged stays merged.
package workspace

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gertd/go-pluralize"
	"github.com/lmittmann/tint"
	"github.com/pkg/errors"

	"github.com/SamuelNetherway460/Beth-Yw/lib/consoles"
	"github.com/SamuelNetherway460/Beth-Yw/lib/datasets"
	"github.com/SamuelNetherway460/Beth-Yw/lib/filters"
	"github.com/SamuelNetherway460/Beth-Yw/lib/importers"
	"github.com/SamuelNetherway460/Beth-Yw/lib/model"
	"github.com/SamuelNetherway460/Beth-Yw/lib/utils"
)

type Workspace struct {
	dir      string
	console  consoles.Console
	log      *slog.Logger
	importer *importers.Importer
}

func New(dir string) *Workspace {
	console := consoles.NewStdErrConsole()

	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.Kitchen,
	}))

	return &Workspace{
		dir:      dir,
		console:  console,
		log:      log,
		importer: importers.New(log),
	}
}

func (w *Workspace) Console() consoles.Console {
	return w.console
}

func (w *Workspace) Log() *slog.Logger {
	return w.log
}

// LoadAreaRegistry imports the local authority code directory. Without it no
// area has names, so a failure here aborts the run.
func (w *Workspace) LoadAreaRegistry(data *model.Areas, areasFilter *filters.AreaFilter) error {
	registry := datasets.Registry()

	source, err := w.openSource(registry.File)
	if err != nil {
		return err
	}
	defer source.Close()

	err = w.importer.Populate(source, registry.Type, registry.Cols, data, areasFilter, nil, nil)
	return errors.Wrapf(err, "error importing dataset %v", registry.File)
}

// LoadDatasets imports the selected datasets one at a time. Dataset failures
// are logged and do not stop the remaining imports.
func (w *Workspace) LoadDatasets(
	data *model.Areas,
	toImport []datasets.Dataset,
	areasFilter *filters.AreaFilter,
	measuresFilter *filters.MeasureFilter,
	yearsFilter *filters.YearRange,
) {
	bar := utils.NewProgressBar(len(toImport))

	for _, dataset := range toImport {
		w.loadDataset(data, dataset, areasFilter, measuresFilter, yearsFilter)
		_ = bar.Add(1)
	}

	_ = bar.Finish()
}

func (w *Workspace) loadDataset(
	data *model.Areas,
	dataset datasets.Dataset,
	areasFilter *filters.AreaFilter,
	measuresFilter *filters.MeasureFilter,
	yearsFilter *filters.YearRange,
) {
	source, err := w.openSource(dataset.File)
	if err != nil {
		w.log.Error("error importing dataset", "dataset", dataset.Code, "reason", err)
		return
	}
	defer source.Close()

	err = w.importer.Populate(source, dataset.Type, dataset.Cols, data, areasFilter, measuresFilter, yearsFilter)
	if err != nil {
		w.log.Error("error importing dataset", "dataset", dataset.Code, "reason", err)
	}
}

// PrintSummary writes a one line import summary to the status console.
func (w *Workspace) PrintSummary(data *model.Areas) {
	pc := pluralize.NewClient()

	measures := 0
	readings := 0
	for _, area := range data.ListAreas() {
		for _, measure := range area.ListMeasures() {
			measures++
			readings += measure.Size()
		}
	}

	w.console.Printf("Imported %v with %v and %v readings\n",
		pc.Pluralize("area", data.Size(), true),
		pc.Pluralize("measure", measures, true),
		humanize.Comma(int64(readings)))
}

func (w *Workspace) openSource(file string) (*os.File, error) {
	path := filepath.Join(w.dir, file)

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error opening %v", path)
	}

	return f, nil
}
