package models

// Measurement is a value with its unit, e.g. {10, "MT"} or {5000, "Per MT"}.
type Measurement struct {
	Value float64 `json:"value" bson:"value"`
	Unit  string  `json:"unit" bson:"unit"`
}

// GSTDetails is shared by lorry receipts and delivery slips.
type GSTDetails struct {
	GSTFileAndPayBy string  `json:"gstFileAndPayBy,omitempty" bson:"gstFileAndPayBy,omitempty"`
	ApplicableGST   string  `json:"applicableGST,omitempty" bson:"applicableGST,omitempty"`
	GSTAmount       float64 `json:"gstAmount" bson:"gstAmount"`
}
