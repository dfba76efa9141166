package tool

type CreateToolReq struct {
	Name                   string  `json:"name" validate:"required"`
	ModelNumber            string  `json:"modelNumber" validate:"required"`
	Type                   string  `json:"type" validate:"required"`
	StorageLocation        string  `json:"storageLocation" validate:"required"`
	Status                 string  `json:"status" validate:"omitempty,oneof=in_stock on_loan under_maintenance disposed"`
	PurchaseDate           string  `json:"purchaseDate" validate:"omitempty,datetime=2006-01-02"`
	PurchasePrice          float64 `json:"purchasePrice" validate:"omitempty,gte=0"`
	RecommendedReplacement string  `json:"recommendedReplacement"`
	Remarks                string  `json:"remarks"`
	ImageURL               string  `json:"imageUrl"`
}

type UpdateStatusReq struct {
	Status string `json:"status" validate:"required,oneof=in_stock on_loan under_maintenance disposed"`
}
