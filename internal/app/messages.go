package app

// ExportedMsg reports the outcome of a CSV export.
type ExportedMsg struct {
	Path string
	Err  error
}
