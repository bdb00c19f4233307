package main

import (
	"fmt"

	"github.com/SamuelNetherway460/Beth-Yw/lib/datasets"
)

type DatasetsCmd struct {
}

func (c *DatasetsCmd) Run(ctx *context) error {
	for _, d := range datasets.All() {
		fmt.Printf("%-16v %-30v %v (%v)\n", d.Code, d.Name, d.File, d.Type)
	}

	return nil
}
