package sheetsrepo

import "context"

// Row maps header column labels to cell values for one sheet row.
type Row map[string]string

// Record is one data row plus its 1-based sheet row number
// (the header occupies row 1, so data starts at 2).
type Record struct {
	RowNumber int
	Values    Row
}

type Repo interface {
	// Header returns the current header row, in sheet column order.
	Header(ctx context.Context) ([]string, error)

	// AllRecords returns every data row keyed by the current header,
	// in sheet order.
	AllRecords(ctx context.Context) ([]Record, error)

	// AppendRow appends one row; values must be positioned per the
	// current header order.
	AppendRow(ctx context.Context, values []string) error

	// UpdateCell rewrites a single cell. Row and column are 1-based.
	UpdateCell(ctx context.Context, row, col int, value string) error
}
