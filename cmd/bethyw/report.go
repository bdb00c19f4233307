package main

import (
	"os"

	"github.com/SamuelNetherway460/Beth-Yw/lib/datasets"
	"github.com/SamuelNetherway460/Beth-Yw/lib/model"
	"github.com/SamuelNetherway460/Beth-Yw/lib/reports"
)

type ReportCmd struct {
	cmdWithFilters

	Datasets []string `short:"d" help:"The dataset(s) to import as a comma-separated list of codes. Omit or set to 'all' to import all datasets. Glob patterns are accepted."`
	JSON     bool     `short:"j" help:"Print the output as JSON instead of tables."`
}

func (c *ReportCmd) Run(ctx *context) error {
	areasFilter, measuresFilter, yearsFilter, err := c.createFilters()
	if err != nil {
		return err
	}

	toImport, err := datasets.Select(c.Datasets)
	if err != nil {
		return err
	}

	data := model.NewAreas()

	err = ctx.ws.LoadAreaRegistry(data, areasFilter)
	if err != nil {
		return err
	}

	ctx.ws.LoadDatasets(data, toImport, areasFilter, measuresFilter, yearsFilter)
	ctx.ws.PrintSummary(data)

	if c.JSON {
		return reports.WriteJSON(os.Stdout, data)
	}

	return reports.WriteTable(os.Stdout, data)
}
