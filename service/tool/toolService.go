package toolsvc

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/KIKE335/tool-management-backend/model"
	sheetsrepo "github.com/KIKE335/tool-management-backend/repository/sheets"
	"github.com/KIKE335/tool-management-backend/util/qr"
)

type Tool = model.Tool

// Repo is the slice of the row store the tool service consumes.
type Repo interface {
	Header(ctx context.Context) ([]string, error)
	AllRecords(ctx context.Context) ([]sheetsrepo.Record, error)
	AppendRow(ctx context.Context, values []string) error
	UpdateCell(ctx context.Context, row, col int, value string) error
}

// CreateInput carries the create payload, already bound from JSON but
// validated again here so no store call happens on bad input.
type CreateInput struct {
	Name                   string
	ModelNumber            string
	Type                   string
	StorageLocation        string
	Status                 string
	PurchaseDate           string
	PurchasePrice          float64
	RecommendedReplacement string
	Remarks                string
	ImageURL               string
}

type Service interface {
	// Create validates the payload, mints a collision-checked id,
	// appends one row and returns the full Tool with its QR code.
	Create(ctx context.Context, in CreateInput) (*Tool, error)

	// List rebuilds Tools from all current rows, recomputing each QR.
	// Rows without an identifier are skipped.
	List(ctx context.Context) ([]Tool, error)

	// UpdateStatus rewrites exactly one status cell and returns the
	// re-read Tool.
	UpdateStatus(ctx context.Context, id, status string) (*Tool, error)
}

type service struct {
	r   Repo
	log *slog.Logger
}

func New(r Repo, log *slog.Logger) Service { return &service{r: r, log: log} }

func (s *service) Create(ctx context.Context, in CreateInput) (*Tool, error) {
	t, err := validateCreate(in)
	if err != nil {
		return nil, err
	}

	header, err := s.r.Header(ctx)
	if err != nil {
		return nil, wrapErr(ErrStore, "reading sheet header", err)
	}
	if !headerHas(header, ColID) {
		return nil, makeErr(ErrSchema, "sheet header has no identifier column")
	}

	records, err := s.r.AllRecords(ctx)
	if err != nil {
		return nil, wrapErr(ErrStore, "reading sheet records", err)
	}
	existing := make(map[string]struct{}, len(records))
	for _, rec := range records {
		if id := strings.TrimSpace(rec.Values[ColID]); id != "" {
			existing[id] = struct{}{}
		}
	}

	id, err := generateID(existing)
	if err != nil {
		return nil, err
	}

	if err := s.r.AppendRow(ctx, toRow(t, header, id)); err != nil {
		return nil, wrapErr(ErrStore, "appending row", err)
	}

	t.ID = id
	t.QRCode, err = qr.Base64PNG(id)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) List(ctx context.Context) ([]Tool, error) {
	records, err := s.r.AllRecords(ctx)
	if err != nil {
		return nil, wrapErr(ErrStore, "reading sheet records", err)
	}

	tools := make([]Tool, 0, len(records))
	skipped := 0
	for _, rec := range records {
		t, ok := fromRow(rec.Values)
		if !ok {
			skipped++
			continue
		}
		if t.QRCode, err = qr.Base64PNG(t.ID); err != nil {
			return nil, err
		}
		tools = append(tools, *t)
	}
	if skipped > 0 {
		s.log.Warn("skipped rows without identifier", "count", skipped)
	}
	return tools, nil
}

func (s *service) UpdateStatus(ctx context.Context, id, status string) (*Tool, error) {
	st, ok := model.ParseStatus(status)
	if !ok {
		return nil, makeErr(ErrValidation, "invalid status: "+status)
	}

	records, err := s.r.AllRecords(ctx)
	if err != nil {
		return nil, wrapErr(ErrStore, "reading sheet records", err)
	}
	rowNumber := 0
	for _, rec := range records {
		if strings.TrimSpace(rec.Values[ColID]) == id {
			rowNumber = rec.RowNumber
			break
		}
	}
	if rowNumber == 0 {
		return nil, makeErr(ErrNotFound, "tool not found: "+id)
	}

	// The header is resolved fresh on every call; columns can move
	// between requests.
	header, err := s.r.Header(ctx)
	if err != nil {
		return nil, wrapErr(ErrStore, "reading sheet header", err)
	}
	col := headerIndex(header, ColStatus)
	if col == 0 {
		return nil, makeErr(ErrSchema, "sheet header has no status column")
	}

	if err := s.r.UpdateCell(ctx, rowNumber, col, string(st)); err != nil {
		return nil, wrapErr(ErrStore, "updating status cell", err)
	}

	// Read-after-write so the response reflects what the sheet now
	// holds, not what we think we wrote.
	records, err = s.r.AllRecords(ctx)
	if err != nil {
		return nil, wrapErr(ErrStore, "re-reading sheet records", err)
	}
	for _, rec := range records {
		t, ok := fromRow(rec.Values)
		if !ok || t.ID != id {
			continue
		}
		if t.QRCode, err = qr.Base64PNG(t.ID); err != nil {
			return nil, err
		}
		return t, nil
	}
	return nil, makeErr(ErrStore, "updated row disappeared on re-read")
}

func validateCreate(in CreateInput) (*Tool, error) {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return nil, makeErr(ErrValidation, "name is required")
	case strings.TrimSpace(in.ModelNumber) == "":
		return nil, makeErr(ErrValidation, "modelNumber is required")
	case strings.TrimSpace(in.Type) == "":
		return nil, makeErr(ErrValidation, "type is required")
	case strings.TrimSpace(in.StorageLocation) == "":
		return nil, makeErr(ErrValidation, "storageLocation is required")
	case in.PurchasePrice < 0:
		return nil, makeErr(ErrValidation, "purchasePrice must not be negative")
	}

	st := model.StatusInStock
	if in.Status != "" {
		var ok bool
		if st, ok = model.ParseStatus(in.Status); !ok {
			return nil, makeErr(ErrValidation, "invalid status: "+in.Status)
		}
	}

	if in.PurchaseDate != "" {
		if _, err := time.Parse("2006-01-02", in.PurchaseDate); err != nil {
			return nil, makeErr(ErrValidation, "purchaseDate must be YYYY-MM-DD")
		}
	}

	return &Tool{
		Name:                   in.Name,
		ModelNumber:            in.ModelNumber,
		Type:                   in.Type,
		StorageLocation:        in.StorageLocation,
		Status:                 st,
		PurchaseDate:           in.PurchaseDate,
		PurchasePrice:          in.PurchasePrice,
		RecommendedReplacement: in.RecommendedReplacement,
		Remarks:                in.Remarks,
		ImageURL:               in.ImageURL,
	}, nil
}

func headerHas(header []string, col string) bool { return headerIndex(header, col) != 0 }

// headerIndex returns the 1-based column index, or 0 when absent.
func headerIndex(header []string, col string) int {
	for i, h := range header {
		if strings.TrimSpace(h) == col {
			return i + 1
		}
	}
	return 0
}
