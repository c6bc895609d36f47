package domain

// SkipLogger records why a file was rejected, durably enough to survive the
// process dying mid-batch. Implementations must flush every entry before
// returning.
type SkipLogger interface {
	Log(filename, reason string) error
}

// TableWriter persists a converted table as one spreadsheet file
type TableWriter interface {
	Write(table *Table, path string) error
}
