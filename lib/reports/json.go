package reports

import (
	"fmt"
	"io"

	"github.com/SamuelNetherway460/Beth-Yw/lib/model"
)

// WriteJSON renders the whole container as a single JSON document.
func WriteJSON(w io.Writer, areas *model.Areas) error {
	doc, err := areas.ToJSON()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, doc)
	return err
}
