package importers

// SchemaError means the shape of a source did not match the configured column
// mapping: wrong number of header columns, wrong column names, or a document
// that could not be parsed at all. It aborts the current dataset only.
type SchemaError struct {
	Msg string
}

func (e *SchemaError) Error() string {
	return e.Msg
}

// SourceError means the stream handed to Populate could not be read or was
// empty. It aborts the current dataset only.
type SourceError struct {
	Msg   string
	Cause error
}

func (e *SourceError) Error() string {
	if e.Cause != nil {
		return e.Msg + ": " + e.Cause.Error()
	}
	return e.Msg
}

func (e *SourceError) Unwrap() error {
	return e.Cause
}
