package model

// Status is the lifecycle state of a tool. Any status may move to any other.
type Status string

const (
	StatusInStock          Status = "in_stock"
	StatusOnLoan           Status = "on_loan"
	StatusUnderMaintenance Status = "under_maintenance"
	StatusDisposed         Status = "disposed"
)

// ParseStatus validates a raw status literal.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusInStock, StatusOnLoan, StatusUnderMaintenance, StatusDisposed:
		return Status(s), true
	}
	return "", false
}

// Tool is one tool or jig in the master sheet.
// QRCode is derived from ID on every read and never persisted.
type Tool struct {
	ID                     string  `json:"id"`
	Name                   string  `json:"name"`
	ModelNumber            string  `json:"modelNumber"`
	Type                   string  `json:"type"`
	StorageLocation        string  `json:"storageLocation"`
	Status                 Status  `json:"status"`
	PurchaseDate           string  `json:"purchaseDate"`
	PurchasePrice          float64 `json:"purchasePrice"`
	RecommendedReplacement string  `json:"recommendedReplacement"`
	Remarks                string  `json:"remarks"`
	ImageURL               string  `json:"imageUrl"`
	QRCode                 string  `json:"qrCode,omitempty"`
}
