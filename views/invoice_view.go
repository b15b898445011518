package views

import (
	"strconv"

	"tarapurtransport/models"
	"tarapurtransport/utils"

	"github.com/shopspring/decimal"
)

// InvoiceGoodsRow is one line of the invoice goods table. Amount stays a plain
// number; the template applies the 2-decimal formatting.
type InvoiceGoodsRow struct {
	Description   string  `json:"description"`
	InvNo         string  `json:"invNo"`
	Articles      string  `json:"articles"`
	ActualWeight  string  `json:"actualWeight"`
	ChargedWeight string  `json:"chargedWeight"`
	Rate          float64 `json:"rate"`
	Amount        float64 `json:"amount"`
}

// InvoiceView is the flat model the invoice template consumes. An invoice has
// no stored record of its own; it is derived entirely from a lorry receipt.
type InvoiceView struct {
	BillNo           string            `json:"billNo"`
	Date             string            `json:"date"`
	ConsignorName    string            `json:"consignorName"`
	ConsignorAddress []string          `json:"consignorAddress"`
	ConsignorGSTIN   string            `json:"consignorGstin"`
	ConsignorContact string            `json:"consignorContact"`
	ConsigneeName    string            `json:"consigneeName"`
	ConsigneeAddress []string          `json:"consigneeAddress"`
	ConsigneeGSTIN   string            `json:"consigneeGstin"`
	ConsigneeContact string            `json:"consigneeContact"`
	From             string            `json:"from"`
	To               string            `json:"to"`
	TruckNumber      string            `json:"truckNumber"`
	GoodsDetails     []InvoiceGoodsRow `json:"goodsDetails"`
	SubTotal         float64           `json:"subTotal"`
	ApplicableGST    string            `json:"applicableGst"`
	GSTAmount        float64           `json:"gstAmount"`
	TDSAmount        float64           `json:"tdsAmount"`
	RoundOff         float64           `json:"roundOff"`
	TotalAmount      float64           `json:"totalAmount"`
	AmountInWords    string            `json:"amountInWords"`
	Remarks          string            `json:"remarks"`
	Letterhead       Letterhead        `json:"letterhead"`
}

// feeRow pairs a synthetic goods-table label with its charge amount.
type feeRow struct {
	label  string
	amount float64
}

// MapInvoiceView derives the invoice presentation model from a lorry receipt.
// Optional nested fields fall back to empty strings and zeros; the function
// never fails for an incomplete but non-nil record.
func MapInvoiceView(lr *models.LorryReceipt, lh Letterhead) InvoiceView {
	fd := lr.FreightDetails

	v := InvoiceView{
		BillNo:           "TPR-" + lr.LorryReceiptNumber,
		Date:             FormatDate(lr.Date),
		ConsignorName:    lr.Consignor.ConsignorName,
		ConsignorAddress: AddressLines(lr.Consignor.Address, lr.Consignor.City, lr.Consignor.PinCode, lr.Consignor.State, lr.Consignor.Country),
		ConsignorGSTIN:   lr.Consignor.GSTIN,
		ConsignorContact: lr.Consignor.ContactNumber,
		ConsigneeName:    lr.Consignee.ConsigneeName,
		ConsigneeAddress: AddressLines(lr.Consignee.Address, lr.Consignee.City, lr.Consignee.PinCode, lr.Consignee.State, lr.Consignee.Country),
		ConsigneeGSTIN:   lr.Consignee.GSTIN,
		ConsigneeContact: lr.Consignee.ContactNumber,
		From:             lr.TruckDetails.From,
		To:               lr.Consignee.City,
		TruckNumber:      lr.TruckDetails.TruckNumber,
		SubTotal:         fd.SubTotal,
		ApplicableGST:    fd.GSTDetails.ApplicableGST,
		GSTAmount:        fd.GSTDetails.GSTAmount,
		TDSAmount:        fd.TDSDetails.TDSAmount,
		RoundOff:         fd.RoundOff,
		Remarks:          lr.Remarks,
		Letterhead:       lh,
	}

	invNo := invoiceNumber(lr)
	for _, m := range lr.MaterialDetails {
		v.GoodsDetails = append(v.GoodsDetails, InvoiceGoodsRow{
			Description:   m.MaterialName,
			InvNo:         invNo,
			Articles:      strconv.Itoa(m.NumberOfArticles),
			ActualWeight:  FormatMeasurement(m.ActualWeight),
			ChargedWeight: FormatMeasurement(m.ChargedWeight),
			Rate:          m.FreightRate.Value,
			Amount:        m.ChargedWeight.Value * m.FreightRate.Value,
		})
	}
	// A single material with no weight/rate product carries the basic freight.
	if len(v.GoodsDetails) == 1 && v.GoodsDetails[0].Amount == 0 {
		v.GoodsDetails[0].Amount = fd.TotalBasicFreight
	}

	// Individually charged fees appear as extra invoice lines.
	for _, fee := range []feeRow{
		{"Pickup Charges", fd.Charges.PickupCharge},
		{"Door Delivery Charges", fd.Charges.DoorDeliveryCharge},
		{"Loading Charges", fd.Charges.LoadingCharge},
		{"Unloading Charges", fd.Charges.UnloadingCharge},
		{"Packing Charges", fd.Charges.PackingCharge},
		{"Unpacking Charges", fd.Charges.UnpackingCharge},
		{"Service Charges", fd.Charges.ServiceCharge},
		{"Cash on Delivery Charges", fd.Charges.CashOnDelivery},
		{"Date on Delivery Charges", fd.Charges.DateOnDelivery},
		{"Other Charges", fd.Charges.OtherCharges},
	} {
		if fee.amount > 0 {
			v.GoodsDetails = append(v.GoodsDetails, InvoiceGoodsRow{
				Description: fee.label,
				Amount:      fee.amount,
			})
		}
	}

	v.TotalAmount = invoiceTotal(fd)
	v.AmountInWords = utils.NumberToCurrencyWords(v.TotalAmount)

	return v
}

// invoiceNumber returns the first explicit invoice number on the receipt, or
// the deterministic INV-<lorryReceiptNumber> fallback.
func invoiceNumber(lr *models.LorryReceipt) string {
	for _, inv := range lr.InvoiceAndEwayDetails.InvoiceDetails {
		if inv.InvoiceNumber != "" {
			return inv.InvoiceNumber
		}
	}
	return "INV-" + lr.LorryReceiptNumber
}

// invoiceTotal returns the stored totalFreight, recomputing it from the raw
// charge fields when absent, and floors the result at zero so an oversized
// TDS deduction never prints a negative invoice total.
func invoiceTotal(fd models.FreightDetails) float64 {
	total := fd.TotalFreight
	if total == 0 {
		sub := decimal.NewFromFloat(fd.TotalBasicFreight)
		for _, c := range fd.Charges.All() {
			sub = sub.Add(decimal.NewFromFloat(c))
		}
		t := sub.
			Add(decimal.NewFromFloat(fd.GSTDetails.GSTAmount)).
			Add(decimal.NewFromFloat(fd.RoundOff)).
			Sub(decimal.NewFromFloat(fd.TDSDetails.TDSAmount))
		total, _ = t.Float64()
	}
	if total < 0 {
		return 0
	}
	return total
}
