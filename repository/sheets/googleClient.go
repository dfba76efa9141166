package sheetsrepo

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const (
	callTimeout  = 10 * time.Second
	readRetries  = 2
	retryBackoff = 500 * time.Millisecond
)

type googleRepo struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
}

// NewGoogle builds a Repo over the Google Sheets API using a service
// account credential blob.
func NewGoogle(ctx context.Context, credentialsJSON []byte, spreadsheetID, sheetName string) (Repo, error) {
	svc, err := sheets.NewService(ctx, option.WithCredentialsJSON(credentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("sheets client: %w", err)
	}
	return &googleRepo{svc: svc, spreadsheetID: spreadsheetID, sheetName: sheetName}, nil
}

func (r *googleRepo) Header(ctx context.Context) ([]string, error) {
	var header []string
	err := r.withReadRetry(ctx, func(ctx context.Context) error {
		resp, err := r.svc.Spreadsheets.Values.
			Get(r.spreadsheetID, r.sheetName+"!1:1").
			Context(ctx).Do()
		if err != nil {
			return err
		}
		header = header[:0]
		if len(resp.Values) > 0 {
			for _, cell := range resp.Values[0] {
				header = append(header, fmt.Sprint(cell))
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	return header, nil
}

func (r *googleRepo) AllRecords(ctx context.Context) ([]Record, error) {
	var records []Record
	err := r.withReadRetry(ctx, func(ctx context.Context) error {
		resp, err := r.svc.Spreadsheets.Values.
			Get(r.spreadsheetID, r.sheetName).
			Context(ctx).Do()
		if err != nil {
			return err
		}
		records = records[:0]
		if len(resp.Values) < 2 {
			return nil
		}
		header := make([]string, len(resp.Values[0]))
		for i, cell := range resp.Values[0] {
			header[i] = fmt.Sprint(cell)
		}
		for i, raw := range resp.Values[1:] {
			row := make(Row, len(header))
			for j, label := range header {
				if j < len(raw) {
					row[label] = fmt.Sprint(raw[j])
				} else {
					row[label] = ""
				}
			}
			records = append(records, Record{RowNumber: i + 2, Values: row})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	return records, nil
}

// AppendRow is deliberately never retried: a retry after an ambiguous
// failure could insert the same row twice.
func (r *googleRepo) AppendRow(ctx context.Context, values []string) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	_, err := r.svc.Spreadsheets.Values.
		Append(r.spreadsheetID, r.sheetName, &sheets.ValueRange{
			Values: [][]interface{}{cells},
		}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append row: %w", err)
	}
	return nil
}

func (r *googleRepo) UpdateCell(ctx context.Context, row, col int, value string) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	rng := fmt.Sprintf("%s!%s%d", r.sheetName, columnLetter(col), row)
	_, err := r.svc.Spreadsheets.Values.
		Update(r.spreadsheetID, rng, &sheets.ValueRange{
			Values: [][]interface{}{{value}},
		}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("update cell %s: %w", rng, err)
	}
	return nil
}

// withReadRetry runs an idempotent read with a per-attempt timeout and a
// bounded retry on transient failures.
func (r *googleRepo) withReadRetry(ctx context.Context, op func(context.Context) error) error {
	var err error
	for attempt := 0; attempt <= readRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(retryBackoff << (attempt - 1)):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		attemptCtx, cancel := context.WithTimeout(ctx, callTimeout)
		err = op(attemptCtx)
		cancel()
		if err == nil || !isTransient(err) {
			return err
		}
	}
	return err
}

func isTransient(err error) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusTooManyRequests || gerr.Code >= 500
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}

// columnLetter converts a 1-based column index to A1 notation (1 -> A,
// 27 -> AA).
func columnLetter(col int) string {
	s := ""
	for col > 0 {
		col--
		s = string(rune('A'+col%26)) + s
		col /= 26
	}
	return s
}
