package views

import (
	"strconv"
	"strings"

	"tarapurtransport/models"
	"tarapurtransport/utils"
)

// QuotationMaterialRow is one quoted material line.
type QuotationMaterialRow struct {
	MaterialName  string `json:"materialName"`
	PackagingType string `json:"packagingType"`
	Weight        string `json:"weight"`
}

// QuotationVehicleRow is one quoted vehicle requirement line.
type QuotationVehicleRow struct {
	VehicleType string `json:"vehicleType"`
	Count       string `json:"count"`
	LoadType    string `json:"loadType"`
}

// QuotationExtraRow is one non-zero extra charge line.
type QuotationExtraRow struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// QuotationView is the flat model the quotation template consumes.
type QuotationView struct {
	Number              string                 `json:"number"`
	Date                string                 `json:"date"`
	CompanyName         string                 `json:"companyName"`
	CompanyAddress      []string               `json:"companyAddress"`
	CompanyGSTIN        string                 `json:"companyGstin"`
	CompanyContact      string                 `json:"companyContact"`
	From                string                 `json:"from"`
	To                  string                 `json:"to"`
	Materials           []QuotationMaterialRow `json:"materials"`
	Vehicles            []QuotationVehicleRow  `json:"vehicles"`
	RateAmount          float64                `json:"rateAmount"`
	RateUnit            string                 `json:"rateUnit"`
	ExtraRows           []QuotationExtraRow    `json:"extraRows"`
	TotalExtraCharges   float64                `json:"totalExtraCharges"`
	ApplicableGST       string                 `json:"applicableGst"`
	GSTAmount           float64                `json:"gstAmount"`
	TDSPercentage       float64                `json:"tdsPercentage"`
	TotalFreightWithGst float64                `json:"totalFreightWithGst"`
	TotalInWords        string                 `json:"totalInWords"`
	PaymentTerms        string                 `json:"paymentTerms"`
	ValidUpTo           string                 `json:"validUpTo"`
	Demurrage           string                 `json:"demurrage"`
	Letterhead          Letterhead             `json:"letterhead"`
}

// MapQuotationView derives the quotation presentation model.
func MapQuotationView(q *models.Quotation, lh Letterhead) QuotationView {
	fb := q.FreightBreakup
	c := q.QuoteToCompany

	v := QuotationView{
		Number:              q.QuotationNumber,
		Date:                FormatDate(q.Date),
		CompanyName:         c.CompanyName,
		CompanyAddress:      AddressLines(c.Address, c.City, c.PinCode, c.State, c.Country),
		CompanyGSTIN:        c.GSTIN,
		CompanyContact:      c.ContactNumber,
		From:                q.TripDetails.From,
		To:                  q.TripDetails.To,
		RateAmount:          fb.Rate.Value,
		RateUnit:            fb.Rate.Unit,
		TotalExtraCharges:   fb.ExtraCharges.TotalExtraCharges,
		ApplicableGST:       fb.ApplicableGST,
		GSTAmount:           fb.GSTAmount,
		TDSPercentage:       fb.TDS.TDSPercentage,
		TotalFreightWithGst: fb.TotalFreightWithGst,
		TotalInWords:        utils.NumberToCurrencyWords(fb.TotalFreightWithGst),
		PaymentTerms:        q.PaymentTerms,
		ValidUpTo:           FormatDatePtr(q.QuotationValidity.ExpiryDate),
		Demurrage:           describeDemurrage(q.Demurrage),
		Letterhead:          lh,
	}

	for _, m := range q.MaterialDetails {
		v.Materials = append(v.Materials, QuotationMaterialRow{
			MaterialName:  m.MaterialName,
			PackagingType: m.PackagingType,
			Weight:        FormatMeasurement(m.Weight),
		})
	}

	for _, veh := range q.VehicleDetails {
		count := ""
		if veh.NumberOfVehicles > 0 {
			count = strconv.Itoa(veh.NumberOfVehicles)
		}
		v.Vehicles = append(v.Vehicles, QuotationVehicleRow{
			VehicleType: veh.VehicleType,
			Count:       count,
			LoadType:    veh.LoadType,
		})
	}

	for _, fee := range []feeRow{
		{"Pickup Charges", fb.ExtraCharges.PickupCharge},
		{"Door Delivery Charges", fb.ExtraCharges.DoorDeliveryCharge},
		{"Loading Charges", fb.ExtraCharges.LoadingCharge},
		{"Unloading Charges", fb.ExtraCharges.UnloadingCharge},
		{"Packing Charges", fb.ExtraCharges.PackingCharge},
		{"Unpacking Charges", fb.ExtraCharges.UnpackingCharge},
		{"Service Charges", fb.ExtraCharges.ServiceCharge},
		{"Toll Charges", fb.ExtraCharges.TollCharge},
		{"Escort Charges", fb.ExtraCharges.EscortCharge},
		{"Other Charges", fb.ExtraCharges.OtherCharges},
	} {
		if fee.amount != 0 {
			v.ExtraRows = append(v.ExtraRows, QuotationExtraRow{Label: fee.label, Amount: fee.amount})
		}
	}

	return v
}

func describeDemurrage(d models.Demurrage) string {
	if d.Rate == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Rs. ")
	b.WriteString(strconv.FormatFloat(d.Rate, 'f', -1, 64))
	if d.Per != "" {
		b.WriteString(" per ")
		b.WriteString(d.Per)
	}
	if g := FormatMeasurement(d.GracePeriod); g != "" {
		b.WriteString(" after ")
		b.WriteString(g)
	}
	return b.String()
}
