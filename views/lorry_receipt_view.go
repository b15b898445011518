package views

import (
	"strconv"
	"strings"

	"tarapurtransport/models"
	"tarapurtransport/utils"
)

// LRMaterialRow is one consignment line in the lorry receipt table.
type LRMaterialRow struct {
	MaterialName    string `json:"materialName"`
	PackagingType   string `json:"packagingType"`
	Quantity        string `json:"quantity"`
	Articles        string `json:"articles"`
	ActualWeight    string `json:"actualWeight"`
	ChargedWeight   string `json:"chargedWeight"`
	FreightRate     string `json:"freightRate"`
	HSNCode         string `json:"hsnCode"`
	ContainerNumber string `json:"containerNumber"`
}

// LRChargeRow is one line of the freight summary column.
type LRChargeRow struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// LorryReceiptView is the flat model the lorry receipt template consumes.
type LorryReceiptView struct {
	Number           string          `json:"number"`
	Date             string          `json:"date"`
	Status           string          `json:"status"`
	ConsignorName    string          `json:"consignorName"`
	ConsignorAddress []string        `json:"consignorAddress"`
	ConsignorGSTIN   string          `json:"consignorGstin"`
	ConsignorContact string          `json:"consignorContact"`
	ConsigneeName    string          `json:"consigneeName"`
	ConsigneeAddress []string        `json:"consigneeAddress"`
	ConsigneeGSTIN   string          `json:"consigneeGstin"`
	ConsigneeContact string          `json:"consigneeContact"`
	LoadingFrom      []string        `json:"loadingFrom"`
	DeliveryAt       []string        `json:"deliveryAt"`
	Materials        []LRMaterialRow `json:"materials"`
	ShowFreight      bool            `json:"showFreight"`
	FreightType      string          `json:"freightType"`
	FreightPayBy     string          `json:"freightPayBy"`
	ChargeRows       []LRChargeRow   `json:"chargeRows"`
	SubTotal         float64         `json:"subTotal"`
	ApplicableGST    string          `json:"applicableGst"`
	GSTFileAndPayBy  string          `json:"gstFileAndPayBy"`
	GSTAmount        float64         `json:"gstAmount"`
	TDSAmount        float64         `json:"tdsAmount"`
	RoundOff         float64         `json:"roundOff"`
	TotalFreight     float64         `json:"totalFreight"`
	AdvanceReceived  float64         `json:"advanceReceived"`
	RemainingFreight float64         `json:"remainingFreight"`
	TotalInWords     string          `json:"totalInWords"`
	TruckNumber      string          `json:"truckNumber"`
	VehicleType      string          `json:"vehicleType"`
	LoadType         string          `json:"loadType"`
	WeightGuarantee  string          `json:"weightGuarantee"`
	DriverName       string          `json:"driverName"`
	DriverMobile     string          `json:"driverMobile"`
	LicenseNumber    string          `json:"licenseNumber"`
	InvoiceNumbers   string          `json:"invoiceNumbers"`
	ValueOfGoods     string          `json:"valueOfGoods"`
	EwayBillNumber   string          `json:"ewayBillNumber"`
	Remarks          string          `json:"remarks"`
	CopyTitles       []string        `json:"copyTitles"`
	Letterhead       Letterhead      `json:"letterhead"`
}

// MapLorryReceiptView derives the lorry receipt presentation model. The PDF
// carries one copy per interested party, so CopyTitles drives the template's
// outer loop.
func MapLorryReceiptView(lr *models.LorryReceipt, lh Letterhead) LorryReceiptView {
	fd := lr.FreightDetails

	v := LorryReceiptView{
		Number:           lr.LorryReceiptNumber,
		Date:             FormatDate(lr.Date),
		Status:           lr.Status,
		ConsignorName:    lr.Consignor.ConsignorName,
		ConsignorAddress: AddressLines(lr.Consignor.Address, lr.Consignor.City, lr.Consignor.PinCode, lr.Consignor.State, lr.Consignor.Country),
		ConsignorGSTIN:   lr.Consignor.GSTIN,
		ConsignorContact: lr.Consignor.ContactNumber,
		ConsigneeName:    lr.Consignee.ConsigneeName,
		ConsigneeAddress: AddressLines(lr.Consignee.Address, lr.Consignee.City, lr.Consignee.PinCode, lr.Consignee.State, lr.Consignee.Country),
		ConsigneeGSTIN:   lr.Consignee.GSTIN,
		ConsigneeContact: lr.Consignee.ContactNumber,
		LoadingFrom:      resolveLoadingAddress(lr),
		DeliveryAt:       resolveDeliveryAddress(lr),
		ShowFreight:      !fd.HideFreightFromPDF,
		FreightType:      fd.FreightType,
		FreightPayBy:     fd.FreightPayBy,
		SubTotal:         fd.SubTotal,
		ApplicableGST:    fd.GSTDetails.ApplicableGST,
		GSTFileAndPayBy:  fd.GSTDetails.GSTFileAndPayBy,
		GSTAmount:        fd.GSTDetails.GSTAmount,
		TDSAmount:        fd.TDSDetails.TDSAmount,
		RoundOff:         fd.RoundOff,
		TotalFreight:     fd.TotalFreight,
		AdvanceReceived:  fd.AdvanceDetails.AdvanceReceived,
		RemainingFreight: fd.AdvanceDetails.RemainingFreight,
		TotalInWords:     utils.NumberToCurrencyWords(fd.TotalFreight),
		TruckNumber:      lr.TruckDetails.TruckNumber,
		VehicleType:      lr.TruckDetails.VehicleType,
		LoadType:         lr.TruckDetails.LoadType,
		WeightGuarantee:  FormatMeasurement(lr.TruckDetails.WeightGuarantee),
		DriverName:       lr.TruckDetails.DriverName,
		DriverMobile:     lr.TruckDetails.DriverMobile,
		LicenseNumber:    lr.TruckDetails.LicenseNumber,
		EwayBillNumber:   lr.InvoiceAndEwayDetails.EwayBillNumber,
		Remarks:          lr.Remarks,
		CopyTitles:       []string{"Consignor Copy", "Consignee Copy", "Driver Copy"},
		Letterhead:       lh,
	}

	for _, m := range lr.MaterialDetails {
		v.Materials = append(v.Materials, LRMaterialRow{
			MaterialName:    m.MaterialName,
			PackagingType:   m.PackagingType,
			Quantity:        strconv.FormatFloat(m.Quantity, 'f', -1, 64),
			Articles:        strconv.Itoa(m.NumberOfArticles),
			ActualWeight:    FormatMeasurement(m.ActualWeight),
			ChargedWeight:   FormatMeasurement(m.ChargedWeight),
			FreightRate:     FormatMeasurement(m.FreightRate),
			HSNCode:         m.HSNCode,
			ContainerNumber: m.ContainerNumber,
		})
	}

	v.ChargeRows = lrChargeRows(fd)
	v.InvoiceNumbers = joinInvoiceNumbers(lr.InvoiceAndEwayDetails.InvoiceDetails)
	v.ValueOfGoods = describeValueOfGoods(lr.InvoiceAndEwayDetails.ValueOfGoods)

	return v
}

// resolveLoadingAddress honors sameAsConsignor: the consignor address wins
// even when the override fields hold stray values.
func resolveLoadingAddress(lr *models.LorryReceipt) []string {
	la := lr.LoadingAddress
	if la.SameAsConsignor {
		c := lr.Consignor
		return AddressLines(c.Address, c.City, c.PinCode, c.State, c.Country)
	}
	return AddressLines(la.Address, la.City, la.PinCode, la.State, "")
}

// resolveDeliveryAddress honors sameAsConsignee the same way.
func resolveDeliveryAddress(lr *models.LorryReceipt) []string {
	dd := lr.DeliveryDetails
	if dd.SameAsConsignee {
		c := lr.Consignee
		return AddressLines(c.Address, c.City, c.PinCode, c.State, c.Country)
	}
	return AddressLines(dd.Address, dd.City, dd.PinCode, dd.State, "")
}

func lrChargeRows(fd models.FreightDetails) []LRChargeRow {
	rows := []LRChargeRow{{Label: "Basic Freight", Amount: fd.TotalBasicFreight}}
	for _, fee := range []feeRow{
		{"Pickup Charges", fd.Charges.PickupCharge},
		{"Door Delivery", fd.Charges.DoorDeliveryCharge},
		{"Loading Charges", fd.Charges.LoadingCharge},
		{"Unloading Charges", fd.Charges.UnloadingCharge},
		{"Packing Charges", fd.Charges.PackingCharge},
		{"Unpacking Charges", fd.Charges.UnpackingCharge},
		{"Service Charges", fd.Charges.ServiceCharge},
		{"COD Charges", fd.Charges.CashOnDelivery},
		{"DOD Charges", fd.Charges.DateOnDelivery},
		{"Other Charges", fd.Charges.OtherCharges},
	} {
		if fee.amount != 0 {
			rows = append(rows, LRChargeRow{Label: fee.label, Amount: fee.amount})
		}
	}
	return rows
}

func joinInvoiceNumbers(invoices []models.InvoiceDetail) string {
	var nums []string
	for _, inv := range invoices {
		if inv.InvoiceNumber != "" {
			nums = append(nums, inv.InvoiceNumber)
		}
	}
	return strings.Join(nums, ", ")
}

func describeValueOfGoods(v models.ValueOfGoods) string {
	if v.Mode == models.ValueOfGoodsAsPerInvoice {
		return models.ValueOfGoodsAsPerInvoice
	}
	if v.Amount > 0 {
		return strconv.FormatFloat(v.Amount, 'f', 2, 64)
	}
	return ""
}
