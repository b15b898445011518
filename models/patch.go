package models

import "time"

// Patch structs are the allow-listed update payloads. PUT handlers decode one
// of these instead of merging arbitrary JSON keys onto the stored record, so
// unknown or server-owned fields cannot be injected. A nil field means "leave
// the stored section untouched"; a present field replaces the whole section.

type LorryReceiptPatch struct {
	LorryReceiptNumber    *string                `json:"lorryReceiptNumber,omitempty"`
	Date                  *time.Time             `json:"date,omitempty"`
	Consignor             *Consignor             `json:"consignor,omitempty"`
	Consignee             *Consignee             `json:"consignee,omitempty"`
	LoadingAddress        *LoadingAddress        `json:"loadingAddress,omitempty"`
	DeliveryDetails       *DeliveryDetails       `json:"deliveryDetails,omitempty"`
	MaterialDetails       *[]MaterialDetail      `json:"materialDetails,omitempty"`
	TruckDetails          *TruckDetails          `json:"truckDetails,omitempty"`
	InvoiceAndEwayDetails *InvoiceAndEwayDetails `json:"invoiceAndEwayDetails,omitempty"`
	FreightDetails        *FreightDetails        `json:"freightDetails,omitempty"`
	Remarks               *string                `json:"remarks,omitempty"`
	Status                *string                `json:"status,omitempty"`
}

// Apply copies every present section onto the stored record.
func (p *LorryReceiptPatch) Apply(lr *LorryReceipt) {
	if p.LorryReceiptNumber != nil {
		lr.LorryReceiptNumber = *p.LorryReceiptNumber
	}
	if p.Date != nil {
		lr.Date = *p.Date
	}
	if p.Consignor != nil {
		lr.Consignor = *p.Consignor
	}
	if p.Consignee != nil {
		lr.Consignee = *p.Consignee
	}
	if p.LoadingAddress != nil {
		lr.LoadingAddress = *p.LoadingAddress
	}
	if p.DeliveryDetails != nil {
		lr.DeliveryDetails = *p.DeliveryDetails
	}
	if p.MaterialDetails != nil {
		lr.MaterialDetails = *p.MaterialDetails
	}
	if p.TruckDetails != nil {
		lr.TruckDetails = *p.TruckDetails
	}
	if p.InvoiceAndEwayDetails != nil {
		lr.InvoiceAndEwayDetails = *p.InvoiceAndEwayDetails
	}
	if p.FreightDetails != nil {
		lr.FreightDetails = *p.FreightDetails
	}
	if p.Remarks != nil {
		lr.Remarks = *p.Remarks
	}
	if p.Status != nil {
		lr.Status = *p.Status
	}
}

type QuotationPatch struct {
	QuotationNumber   *string              `json:"quotationNumber,omitempty"`
	Date              *time.Time           `json:"date,omitempty"`
	QuoteToCompany    *QuoteToCompany      `json:"quoteToCompany,omitempty"`
	MaterialDetails   *[]QuotationMaterial `json:"materialDetails,omitempty"`
	TripDetails       *TripDetails         `json:"tripDetails,omitempty"`
	VehicleDetails    *[]VehicleDetail     `json:"vehicleDetails,omitempty"`
	FreightBreakup    *FreightBreakup      `json:"freightBreakup,omitempty"`
	PaymentTerms      *string              `json:"paymentTerms,omitempty"`
	QuotationValidity *QuotationValidity   `json:"quotationValidity,omitempty"`
	Demurrage         *Demurrage           `json:"demurrage,omitempty"`
}

func (p *QuotationPatch) Apply(q *Quotation) {
	if p.QuotationNumber != nil {
		q.QuotationNumber = *p.QuotationNumber
	}
	if p.Date != nil {
		q.Date = *p.Date
	}
	if p.QuoteToCompany != nil {
		q.QuoteToCompany = *p.QuoteToCompany
	}
	if p.MaterialDetails != nil {
		q.MaterialDetails = *p.MaterialDetails
	}
	if p.TripDetails != nil {
		q.TripDetails = *p.TripDetails
	}
	if p.VehicleDetails != nil {
		q.VehicleDetails = *p.VehicleDetails
	}
	if p.FreightBreakup != nil {
		q.FreightBreakup = *p.FreightBreakup
	}
	if p.PaymentTerms != nil {
		q.PaymentTerms = *p.PaymentTerms
	}
	if p.QuotationValidity != nil {
		q.QuotationValidity = *p.QuotationValidity
	}
	if p.Demurrage != nil {
		q.Demurrage = *p.Demurrage
	}
}

type LoadingSlipPatch struct {
	SlipNumber       *string                `json:"slipNumber,omitempty"`
	Date             *time.Time             `json:"date,omitempty"`
	CompanyDetails   *SlipCompanyDetails    `json:"companyDetails,omitempty"`
	ReferenceDetails *ReferenceDetails      `json:"referenceDetails,omitempty"`
	LoadingMaterial  *LoadingMaterial       `json:"loadingMaterial,omitempty"`
	TruckDetails     *TruckDetails          `json:"truckDetails,omitempty"`
	DriverDetails    *DriverDetails         `json:"driverDetails,omitempty"`
	FreightDetails   *LoadingFreightDetails `json:"freightDetails,omitempty"`
	Remarks          *string                `json:"remarks,omitempty"`
}

func (p *LoadingSlipPatch) Apply(ls *LoadingSlip) {
	if p.SlipNumber != nil {
		ls.SlipNumber = *p.SlipNumber
	}
	if p.Date != nil {
		ls.Date = *p.Date
	}
	if p.CompanyDetails != nil {
		ls.CompanyDetails = *p.CompanyDetails
	}
	if p.ReferenceDetails != nil {
		ls.ReferenceDetails = *p.ReferenceDetails
	}
	if p.LoadingMaterial != nil {
		ls.LoadingMaterial = *p.LoadingMaterial
	}
	if p.TruckDetails != nil {
		ls.TruckDetails = *p.TruckDetails
	}
	if p.DriverDetails != nil {
		ls.DriverDetails = *p.DriverDetails
	}
	if p.FreightDetails != nil {
		ls.FreightDetails = *p.FreightDetails
	}
	if p.Remarks != nil {
		ls.Remarks = *p.Remarks
	}
}

type DeliverySlipPatch struct {
	SlipNumber     *string                 `json:"slipNumber,omitempty"`
	Date           *time.Time              `json:"date,omitempty"`
	PartyDetails   *PartyDetails           `json:"partyDetails,omitempty"`
	ParcelDetails  *ParcelDetails          `json:"parcelDetails,omitempty"`
	FreightDetails *DeliveryFreightDetails `json:"freightDetails,omitempty"`
	DeliveryBy     *string                 `json:"deliveryBy,omitempty"`
	Status         *string                 `json:"status,omitempty"`
}

// Apply copies the present sections onto the stored record. A status change
// goes through TransitionStatus so the delivered-at stamp rules hold.
func (p *DeliverySlipPatch) Apply(ds *DeliverySlip, now time.Time) {
	if p.SlipNumber != nil {
		ds.SlipNumber = *p.SlipNumber
	}
	if p.Date != nil {
		ds.Date = *p.Date
	}
	if p.PartyDetails != nil {
		ds.PartyDetails = *p.PartyDetails
	}
	if p.ParcelDetails != nil {
		ds.ParcelDetails = *p.ParcelDetails
	}
	if p.FreightDetails != nil {
		ds.FreightDetails = *p.FreightDetails
	}
	if p.DeliveryBy != nil {
		ds.DeliveryBy = *p.DeliveryBy
	}
	if p.Status != nil {
		ds.TransitionStatus(*p.Status, now)
	}
}
