package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Validity modes for a quotation.
const (
	ValidUpToDate = "Date"
	ValidUpToDays = "Days"
)

// QuoteToCompany is the party a quotation is addressed to.
type QuoteToCompany struct {
	CompanyID     string `json:"companyId,omitempty" bson:"companyId,omitempty"`
	CompanyName   string `json:"companyName" bson:"companyName"`
	GSTIN         string `json:"gstin,omitempty" bson:"gstin,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty" bson:"contactNumber,omitempty"`
	Email         string `json:"email,omitempty" bson:"email,omitempty"`
	Address       string `json:"address,omitempty" bson:"address,omitempty"`
	City          string `json:"city,omitempty" bson:"city,omitempty"`
	State         string `json:"state,omitempty" bson:"state,omitempty"`
	Country       string `json:"country,omitempty" bson:"country,omitempty"`
	PinCode       string `json:"pinCode,omitempty" bson:"pinCode,omitempty"`
}

// QuotationMaterial is a material the quote covers.
type QuotationMaterial struct {
	MaterialName  string      `json:"materialName" bson:"materialName"`
	PackagingType string      `json:"packagingType,omitempty" bson:"packagingType,omitempty"`
	Weight        Measurement `json:"weight" bson:"weight"`
}

// TripDetails is the quoted route.
type TripDetails struct {
	From       string  `json:"from,omitempty" bson:"from,omitempty"`
	To         string  `json:"to,omitempty" bson:"to,omitempty"`
	DistanceKM float64 `json:"distanceKm,omitempty" bson:"distanceKm,omitempty"`
}

// VehicleDetail is one quoted vehicle requirement.
type VehicleDetail struct {
	VehicleType      string  `json:"vehicleType" bson:"vehicleType"`
	NumberOfVehicles int     `json:"numberOfVehicles,omitempty" bson:"numberOfVehicles,omitempty"`
	LoadType         string  `json:"loadType,omitempty" bson:"loadType,omitempty"`
	Capacity         float64 `json:"capacity,omitempty" bson:"capacity,omitempty"`
}

// ExtraCharges is the fixed set of ten named extra charges on a quotation.
// TotalExtraCharges is derived; ComputeTotals overwrites it.
type ExtraCharges struct {
	PickupCharge       float64 `json:"pickupCharge,omitempty" bson:"pickupCharge,omitempty"`
	DoorDeliveryCharge float64 `json:"doorDeliveryCharge,omitempty" bson:"doorDeliveryCharge,omitempty"`
	LoadingCharge      float64 `json:"loadingCharge,omitempty" bson:"loadingCharge,omitempty"`
	UnloadingCharge    float64 `json:"unloadingCharge,omitempty" bson:"unloadingCharge,omitempty"`
	PackingCharge      float64 `json:"packingCharge,omitempty" bson:"packingCharge,omitempty"`
	UnpackingCharge    float64 `json:"unpackingCharge,omitempty" bson:"unpackingCharge,omitempty"`
	ServiceCharge      float64 `json:"serviceCharge,omitempty" bson:"serviceCharge,omitempty"`
	TollCharge         float64 `json:"tollCharge,omitempty" bson:"tollCharge,omitempty"`
	EscortCharge       float64 `json:"escortCharge,omitempty" bson:"escortCharge,omitempty"`
	OtherCharges       float64 `json:"otherCharges,omitempty" bson:"otherCharges,omitempty"`
	TotalExtraCharges  float64 `json:"totalExtraCharges" bson:"totalExtraCharges"`
}

// All returns the ten named charges in a fixed order, excluding the total.
func (c ExtraCharges) All() []float64 {
	return []float64{
		c.PickupCharge, c.DoorDeliveryCharge, c.LoadingCharge, c.UnloadingCharge,
		c.PackingCharge, c.UnpackingCharge, c.ServiceCharge, c.TollCharge,
		c.EscortCharge, c.OtherCharges,
	}
}

// FreightBreakup prices the quotation. GSTAmount and TotalFreightWithGst are
// derived from Rate plus extras; ComputeTotals overwrites them.
type FreightBreakup struct {
	Rate                Measurement  `json:"rate" bson:"rate"`
	TDS                 TDSDetails   `json:"tds" bson:"tds"`
	ExtraCharges        ExtraCharges `json:"extraCharges" bson:"extraCharges"`
	ApplicableGST       string       `json:"applicableGST,omitempty" bson:"applicableGST,omitempty"`
	GSTAmount           float64      `json:"gstAmount" bson:"gstAmount"`
	TotalFreightWithGst float64      `json:"totalFreightWithGst" bson:"totalFreightWithGst"`
}

// ValidUpTo expresses quotation validity either as a fixed date or as a number
// of days from the save time. Value holds the day count for type "Days" and an
// RFC3339 or yyyy-mm-dd date for type "Date".
type ValidUpTo struct {
	Type  string `json:"type" bson:"type"`
	Value string `json:"value" bson:"value"`
}

// QuotationValidity carries the validity rule and the derived expiry date.
type QuotationValidity struct {
	ValidUpTo  ValidUpTo  `json:"validUpTo" bson:"validUpTo"`
	ExpiryDate *time.Time `json:"expiryDate,omitempty" bson:"expiryDate,omitempty"`
}

// Demurrage is the delay penalty quoted after a grace period.
type Demurrage struct {
	Rate        float64     `json:"rate,omitempty" bson:"rate,omitempty"`
	Per         string      `json:"per,omitempty" bson:"per,omitempty"`
	GracePeriod Measurement `json:"gracePeriod" bson:"gracePeriod"`
}

// Quotation is a pre-booking price estimate for a customer.
type Quotation struct {
	ID                string              `json:"id" bson:"_id,omitempty"`
	QuotationNumber   string              `json:"quotationNumber" bson:"quotationNumber"`
	Date              time.Time           `json:"date" bson:"date"`
	QuoteToCompany    QuoteToCompany      `json:"quoteToCompany" bson:"quoteToCompany"`
	MaterialDetails   []QuotationMaterial `json:"materialDetails" bson:"materialDetails"`
	TripDetails       TripDetails         `json:"tripDetails" bson:"tripDetails"`
	VehicleDetails    []VehicleDetail     `json:"vehicleDetails,omitempty" bson:"vehicleDetails,omitempty"`
	FreightBreakup    FreightBreakup      `json:"freightBreakup" bson:"freightBreakup"`
	PaymentTerms      string              `json:"paymentTerms,omitempty" bson:"paymentTerms,omitempty"`
	QuotationValidity QuotationValidity   `json:"quotationValidity" bson:"quotationValidity"`
	Demurrage         Demurrage           `json:"demurrage" bson:"demurrage"`
	CreatedBy         string              `json:"createdBy" bson:"createdBy"`
	CreatedAt         time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt         *time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// ComputeTotals recomputes the derived quotation fields: the extra-charges
// total, the GST amount (unless applicableGST is the NIL sentinel) and the
// grand total with GST. The base for GST is the quoted rate plus extras.
func (q *Quotation) ComputeTotals(now time.Time) {
	fb := &q.FreightBreakup

	extras := decimal.Zero
	for _, c := range fb.ExtraCharges.All() {
		extras = extras.Add(decimal.NewFromFloat(c))
	}
	fb.ExtraCharges.TotalExtraCharges, _ = extras.Float64()

	base := decimal.NewFromFloat(fb.Rate.Value).Add(extras)
	if pct, ok := ParseGSTPercent(fb.ApplicableGST); ok {
		gst := base.Mul(pct).Div(decimal.NewFromInt(100))
		fb.GSTAmount, _ = gst.Float64()
	}

	total := base.Add(decimal.NewFromFloat(fb.GSTAmount))
	fb.TotalFreightWithGst, _ = total.Float64()

	q.computeExpiry(now)
}

// computeExpiry derives quotationValidity.expiryDate at save/update time.
func (q *Quotation) computeExpiry(now time.Time) {
	v := q.QuotationValidity.ValidUpTo
	switch v.Type {
	case ValidUpToDays:
		if days, err := decimal.NewFromString(v.Value); err == nil {
			d := int(days.IntPart())
			exp := now.AddDate(0, 0, d)
			q.QuotationValidity.ExpiryDate = &exp
		}
	case ValidUpToDate:
		for _, layout := range []string{time.RFC3339, "2006-01-02", "02/01/2006"} {
			if t, err := time.Parse(layout, v.Value); err == nil {
				q.QuotationValidity.ExpiryDate = &t
				return
			}
		}
	}
}
