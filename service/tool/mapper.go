package toolsvc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KIKE335/tool-management-backend/model"
	sheetsrepo "github.com/KIKE335/tool-management-backend/repository/sheets"
)

// Column labels are fixed by the master sheet and bound one-to-one to
// Tool fields. The sheet's header row stays authoritative for column
// order, so writes always position values by header lookup.
const (
	ColID                     = "工具治具ID"
	ColName                   = "名称"
	ColModelNumber            = "型番品番"
	ColType                   = "種類"
	ColStorageLocation        = "保管場所"
	ColStatus                 = "状態"
	ColPurchaseDate           = "購入日"
	ColPurchasePrice          = "購入価格"
	ColRecommendedReplacement = "推奨交換時期"
	ColRemarks                = "備考"
	ColImageURL               = "画像URL"
)

var knownColumns = []string{
	ColID,
	ColName,
	ColModelNumber,
	ColType,
	ColStorageLocation,
	ColStatus,
	ColPurchaseDate,
	ColPurchasePrice,
	ColRecommendedReplacement,
	ColRemarks,
	ColImageURL,
}

// ValidateHeader checks the live header row against the column
// dictionary so a drifted sheet fails fast at startup instead of
// silently writing to the wrong column.
func ValidateHeader(header []string) error {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[strings.TrimSpace(h)] = true
	}
	var missing []string
	for _, col := range knownColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return makeErr(ErrSchema, fmt.Sprintf("sheet header missing columns: %s", strings.Join(missing, ", ")))
	}
	return nil
}

// toRow positions the tool's fields per the given header order. The
// identifier is supplied by the caller since it is never part of the
// create payload. Columns outside the dictionary get empty cells.
func toRow(t *model.Tool, header []string, id string) []string {
	values := make([]string, 0, len(header))
	for _, col := range header {
		switch strings.TrimSpace(col) {
		case ColID:
			values = append(values, id)
		case ColName:
			values = append(values, t.Name)
		case ColModelNumber:
			values = append(values, t.ModelNumber)
		case ColType:
			values = append(values, t.Type)
		case ColStorageLocation:
			values = append(values, t.StorageLocation)
		case ColStatus:
			values = append(values, string(t.Status))
		case ColPurchaseDate:
			values = append(values, t.PurchaseDate)
		case ColPurchasePrice:
			values = append(values, priceCell(t.PurchasePrice))
		case ColRecommendedReplacement:
			values = append(values, t.RecommendedReplacement)
		case ColRemarks:
			values = append(values, t.Remarks)
		case ColImageURL:
			values = append(values, t.ImageURL)
		default:
			values = append(values, "")
		}
	}
	return values
}

// fromRow rebuilds a Tool from one sheet row. A row without an
// identifier is not a tool and reports ok=false so the caller can skip
// it. Stored status literals are passed through unvalidated so legacy
// rows still list.
func fromRow(row sheetsrepo.Row) (*model.Tool, bool) {
	id := strings.TrimSpace(row[ColID])
	if id == "" {
		return nil, false
	}
	return &model.Tool{
		ID:                     id,
		Name:                   row[ColName],
		ModelNumber:            row[ColModelNumber],
		Type:                   row[ColType],
		StorageLocation:        row[ColStorageLocation],
		Status:                 model.Status(row[ColStatus]),
		PurchaseDate:           row[ColPurchaseDate],
		PurchasePrice:          parsePrice(row[ColPurchasePrice]),
		RecommendedReplacement: row[ColRecommendedReplacement],
		Remarks:                row[ColRemarks],
		ImageURL:               row[ColImageURL],
	}, true
}

// parsePrice normalizes blank or non-numeric cells to 0.0 instead of
// failing the whole listing.
func parsePrice(cell string) float64 {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0
	}
	p, err := strconv.ParseFloat(strings.ReplaceAll(cell, ",", ""), 64)
	if err != nil {
		return 0
	}
	return p
}

// priceCell writes an unset price as an empty cell, matching how the
// sheet represents absent values.
func priceCell(p float64) string {
	if p == 0 {
		return ""
	}
	return strconv.FormatFloat(p, 'f', -1, 64)
}
