package main

import (
	"github.com/alecthomas/kong"

	"github.com/SamuelNetherway460/Beth-Yw/lib/workspace"
)

var cli struct {
	Dir string `default:"datasets" help:"Directory for input data passed in as files." type:"path"`

	Report   ReportCmd   `cmd:"" default:"withargs" help:"Import the selected datasets and render the result."`
	Datasets DatasetsCmd `cmd:"" help:"List the datasets that can be imported."`
}

type context struct {
	ws *workspace.Workspace
}

func main() {
	ctx := kong.Parse(&cli, kong.ShortUsageOnError())

	err := ctx.Run(&context{
		ws: workspace.New(cli.Dir),
	})
	ctx.FatalIfErrorf(err)
}
