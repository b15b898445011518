package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lorry receipt status values.
const (
	LRStatusCreated   = "Created"
	LRStatusInTransit = "In Transit"
	LRStatusDelivered = "Delivered"
	LRStatusCancelled = "Cancelled"
)

// LorryReceiptStatuses lists the allowed status values in order.
var LorryReceiptStatuses = []string{LRStatusCreated, LRStatusInTransit, LRStatusDelivered, LRStatusCancelled}

// Consignor is the shipping party on a lorry receipt.
type Consignor struct {
	CompanyID     string `json:"companyId,omitempty" bson:"companyId,omitempty"`
	ConsignorName string `json:"consignorName" bson:"consignorName"`
	GSTIN         string `json:"gstin,omitempty" bson:"gstin,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty" bson:"contactNumber,omitempty"`
	Email         string `json:"email,omitempty" bson:"email,omitempty"`
	Address       string `json:"address,omitempty" bson:"address,omitempty"`
	City          string `json:"city,omitempty" bson:"city,omitempty"`
	State         string `json:"state,omitempty" bson:"state,omitempty"`
	Country       string `json:"country,omitempty" bson:"country,omitempty"`
	PinCode       string `json:"pinCode,omitempty" bson:"pinCode,omitempty"`
}

// Consignee is the receiving party on a lorry receipt.
type Consignee struct {
	CompanyID     string `json:"companyId,omitempty" bson:"companyId,omitempty"`
	ConsigneeName string `json:"consigneeName" bson:"consigneeName"`
	GSTIN         string `json:"gstin,omitempty" bson:"gstin,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty" bson:"contactNumber,omitempty"`
	Email         string `json:"email,omitempty" bson:"email,omitempty"`
	Address       string `json:"address,omitempty" bson:"address,omitempty"`
	City          string `json:"city,omitempty" bson:"city,omitempty"`
	State         string `json:"state,omitempty" bson:"state,omitempty"`
	Country       string `json:"country,omitempty" bson:"country,omitempty"`
	PinCode       string `json:"pinCode,omitempty" bson:"pinCode,omitempty"`
}

// LoadingAddress overrides the pickup location. When SameAsConsignor is true
// the consignor address wins regardless of what the override fields contain.
type LoadingAddress struct {
	SameAsConsignor bool   `json:"sameAsConsignor" bson:"sameAsConsignor"`
	ContactNumber   string `json:"contactNumber,omitempty" bson:"contactNumber,omitempty"`
	Address         string `json:"address,omitempty" bson:"address,omitempty"`
	City            string `json:"city,omitempty" bson:"city,omitempty"`
	State           string `json:"state,omitempty" bson:"state,omitempty"`
	PinCode         string `json:"pinCode,omitempty" bson:"pinCode,omitempty"`
}

// DeliveryDetails overrides the drop location, mirroring LoadingAddress.
type DeliveryDetails struct {
	SameAsConsignee bool   `json:"sameAsConsignee" bson:"sameAsConsignee"`
	ContactNumber   string `json:"contactNumber,omitempty" bson:"contactNumber,omitempty"`
	Address         string `json:"address,omitempty" bson:"address,omitempty"`
	City            string `json:"city,omitempty" bson:"city,omitempty"`
	State           string `json:"state,omitempty" bson:"state,omitempty"`
	PinCode         string `json:"pinCode,omitempty" bson:"pinCode,omitempty"`
}

// MaterialDetail is one consignment line item.
type MaterialDetail struct {
	MaterialName     string      `json:"materialName" bson:"materialName"`
	PackagingType    string      `json:"packagingType,omitempty" bson:"packagingType,omitempty"`
	Quantity         float64     `json:"quantity" bson:"quantity"`
	NumberOfArticles int         `json:"numberOfArticles" bson:"numberOfArticles"`
	ActualWeight     Measurement `json:"actualWeight" bson:"actualWeight"`
	ChargedWeight    Measurement `json:"chargedWeight" bson:"chargedWeight"`
	FreightRate      Measurement `json:"freightRate" bson:"freightRate"`
	HSNCode          string      `json:"hsnCode,omitempty" bson:"hsnCode,omitempty"`
	ContainerNumber  string      `json:"containerNumber,omitempty" bson:"containerNumber,omitempty"`
	Dimensions       string      `json:"dimensions,omitempty" bson:"dimensions,omitempty"`
}

// TruckDetails describes the vehicle and driver assigned to the movement.
type TruckDetails struct {
	TruckNumber     string      `json:"truckNumber" bson:"truckNumber"`
	VehicleType     string      `json:"vehicleType,omitempty" bson:"vehicleType,omitempty"`
	From            string      `json:"from,omitempty" bson:"from,omitempty"`
	WeightGuarantee Measurement `json:"weightGuarantee" bson:"weightGuarantee"`
	DriverName      string      `json:"driverName,omitempty" bson:"driverName,omitempty"`
	DriverMobile    string      `json:"driverMobile,omitempty" bson:"driverMobile,omitempty"`
	LicenseNumber   string      `json:"licenseNumber,omitempty" bson:"licenseNumber,omitempty"`
	LoadType        string      `json:"loadType,omitempty" bson:"loadType,omitempty"`
}

// InvoiceDetail is one customer invoice covered by the consignment.
type InvoiceDetail struct {
	InvoiceNumber string     `json:"invoiceNumber" bson:"invoiceNumber"`
	InvoiceDate   *time.Time `json:"invoiceDate,omitempty" bson:"invoiceDate,omitempty"`
}

// ValueOfGoods mode values.
const (
	ValueOfGoodsAsPerInvoice  = "As per Invoice"
	ValueOfGoodsEnteredAmount = "Entered Amount"
)

// ValueOfGoods records how the declared goods value was supplied.
type ValueOfGoods struct {
	Mode   string  `json:"mode,omitempty" bson:"mode,omitempty"`
	Amount float64 `json:"amount,omitempty" bson:"amount,omitempty"`
}

// InvoiceAndEwayDetails carries the statutory invoice and e-way bill data.
type InvoiceAndEwayDetails struct {
	ValueOfGoods   ValueOfGoods    `json:"valueOfGoods" bson:"valueOfGoods"`
	InvoiceDetails []InvoiceDetail `json:"invoiceDetails,omitempty" bson:"invoiceDetails,omitempty"`
	EwayBillNumber string          `json:"ewayBillNumber,omitempty" bson:"ewayBillNumber,omitempty"`
	EwayBillExpiry *time.Time      `json:"ewayBillExpiry,omitempty" bson:"ewayBillExpiry,omitempty"`
}

// Freight type values.
const (
	FreightTypePaid       = "Paid"
	FreightTypeToPay      = "ToPay"
	FreightTypeToBeBilled = "ToBeBilled"
)

// FreightCharges is the fixed set of named charges on top of basic freight.
type FreightCharges struct {
	PickupCharge       float64 `json:"pickupCharge,omitempty" bson:"pickupCharge,omitempty"`
	DoorDeliveryCharge float64 `json:"doorDeliveryCharge,omitempty" bson:"doorDeliveryCharge,omitempty"`
	LoadingCharge      float64 `json:"loadingCharge,omitempty" bson:"loadingCharge,omitempty"`
	UnloadingCharge    float64 `json:"unloadingCharge,omitempty" bson:"unloadingCharge,omitempty"`
	PackingCharge      float64 `json:"packingCharge,omitempty" bson:"packingCharge,omitempty"`
	UnpackingCharge    float64 `json:"unpackingCharge,omitempty" bson:"unpackingCharge,omitempty"`
	ServiceCharge      float64 `json:"serviceCharge,omitempty" bson:"serviceCharge,omitempty"`
	CashOnDelivery     float64 `json:"cashOnDelivery,omitempty" bson:"cashOnDelivery,omitempty"`
	DateOnDelivery     float64 `json:"dateOnDelivery,omitempty" bson:"dateOnDelivery,omitempty"`
	OtherCharges       float64 `json:"otherCharges,omitempty" bson:"otherCharges,omitempty"`
}

// All returns the named charges in a fixed order.
func (c FreightCharges) All() []float64 {
	return []float64{
		c.PickupCharge, c.DoorDeliveryCharge, c.LoadingCharge, c.UnloadingCharge,
		c.PackingCharge, c.UnpackingCharge, c.ServiceCharge, c.CashOnDelivery,
		c.DateOnDelivery, c.OtherCharges,
	}
}

// AdvanceDetails tracks money received before delivery.
type AdvanceDetails struct {
	AdvanceReceived  float64 `json:"advanceReceived,omitempty" bson:"advanceReceived,omitempty"`
	RemainingFreight float64 `json:"remainingFreight" bson:"remainingFreight"`
}

// TDS type values.
const (
	TDSTypeDeduction = "Deduction"
	TDSTypeAddition  = "Addition"
)

// TDSDetails records tax deducted (or, rarely, added) at source.
type TDSDetails struct {
	TDSPercentage float64 `json:"tdsPercentage,omitempty" bson:"tdsPercentage,omitempty"`
	TDSType       string  `json:"tdsType,omitempty" bson:"tdsType,omitempty"`
	TDSAmount     float64 `json:"tdsAmount,omitempty" bson:"tdsAmount,omitempty"`
}

// FreightDetails is the money block of a lorry receipt. SubTotal, TotalFreight
// and AdvanceDetails.RemainingFreight are derived; ComputeTotals overwrites
// them before every persist.
type FreightDetails struct {
	FreightType        string         `json:"freightType,omitempty" bson:"freightType,omitempty"`
	TotalBasicFreight  float64        `json:"totalBasicFreight" bson:"totalBasicFreight"`
	Charges            FreightCharges `json:"charges" bson:"charges"`
	SubTotal           float64        `json:"subTotal" bson:"subTotal"`
	GSTDetails         GSTDetails     `json:"gstDetails" bson:"gstDetails"`
	AdvanceDetails     AdvanceDetails `json:"advanceDetails" bson:"advanceDetails"`
	TDSDetails         TDSDetails     `json:"tdsDetails" bson:"tdsDetails"`
	RoundOff           float64        `json:"roundOff,omitempty" bson:"roundOff,omitempty"`
	TotalFreight       float64        `json:"totalFreight" bson:"totalFreight"`
	FreightPayBy       string         `json:"freightPayBy,omitempty" bson:"freightPayBy,omitempty"`
	HideFreightFromPDF bool           `json:"hideFreightFromPdf,omitempty" bson:"hideFreightFromPdf,omitempty"`
}

// LorryReceipt is the consignment note for a single truck movement.
type LorryReceipt struct {
	ID                    string                `json:"id" bson:"_id,omitempty"`
	LorryReceiptNumber    string                `json:"lorryReceiptNumber" bson:"lorryReceiptNumber"`
	Date                  time.Time             `json:"date" bson:"date"`
	Consignor             Consignor             `json:"consignor" bson:"consignor"`
	Consignee             Consignee             `json:"consignee" bson:"consignee"`
	LoadingAddress        LoadingAddress        `json:"loadingAddress" bson:"loadingAddress"`
	DeliveryDetails       DeliveryDetails       `json:"deliveryDetails" bson:"deliveryDetails"`
	MaterialDetails       []MaterialDetail      `json:"materialDetails" bson:"materialDetails"`
	TruckDetails          TruckDetails          `json:"truckDetails" bson:"truckDetails"`
	InvoiceAndEwayDetails InvoiceAndEwayDetails `json:"invoiceAndEwayDetails" bson:"invoiceAndEwayDetails"`
	FreightDetails        FreightDetails        `json:"freightDetails" bson:"freightDetails"`
	Remarks               string                `json:"remarks,omitempty" bson:"remarks,omitempty"`
	Status                string                `json:"status" bson:"status"`
	CreatedBy             string                `json:"createdBy" bson:"createdBy"`
	CreatedAt             time.Time             `json:"createdAt" bson:"createdAt"`
	UpdatedAt             *time.Time            `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// ComputeTotals recomputes the derived money fields from the charge inputs.
// It runs before every persist and overwrites whatever the client submitted
// for subTotal, totalFreight and remainingFreight. Calling it twice with
// unchanged inputs yields the same outputs.
//
//	subTotal         = totalBasicFreight + sum(named charges)
//	totalFreight     = subTotal + gstAmount + roundOff - tdsAmount
//	remainingFreight = totalFreight - advanceReceived
func (lr *LorryReceipt) ComputeTotals() {
	fd := &lr.FreightDetails

	subTotal := decimal.NewFromFloat(fd.TotalBasicFreight)
	for _, c := range fd.Charges.All() {
		subTotal = subTotal.Add(decimal.NewFromFloat(c))
	}
	fd.SubTotal, _ = subTotal.Float64()

	// Server-side GST derivation is the single source of truth. The submitted
	// gstAmount only stands under the NIL reverse-charge sentinel.
	if pct, ok := ParseGSTPercent(fd.GSTDetails.ApplicableGST); ok {
		gst := subTotal.Mul(pct).Div(decimal.NewFromInt(100))
		fd.GSTDetails.GSTAmount, _ = gst.Float64()
	}

	tds := decimal.NewFromFloat(fd.TDSDetails.TDSAmount)
	if fd.TDSDetails.TDSType == TDSTypeAddition {
		tds = tds.Neg()
	}

	total := subTotal.
		Add(decimal.NewFromFloat(fd.GSTDetails.GSTAmount)).
		Add(decimal.NewFromFloat(fd.RoundOff)).
		Sub(tds)
	fd.TotalFreight, _ = total.Float64()

	remaining := total.Sub(decimal.NewFromFloat(fd.AdvanceDetails.AdvanceReceived))
	fd.AdvanceDetails.RemainingFreight, _ = remaining.Float64()
}
