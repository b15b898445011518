package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SlipCompanyDetails is the party a loading slip is issued against.
type SlipCompanyDetails struct {
	CompanyID     string `json:"companyId,omitempty" bson:"companyId,omitempty"`
	CompanyName   string `json:"companyName" bson:"companyName"`
	GSTIN         string `json:"gstin,omitempty" bson:"gstin,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty" bson:"contactNumber,omitempty"`
	Address       string `json:"address,omitempty" bson:"address,omitempty"`
	City          string `json:"city,omitempty" bson:"city,omitempty"`
	State         string `json:"state,omitempty" bson:"state,omitempty"`
	PinCode       string `json:"pinCode,omitempty" bson:"pinCode,omitempty"`
}

// ReferenceDetails links the slip to an external order or contract.
type ReferenceDetails struct {
	ReferenceNumber string     `json:"referenceNumber,omitempty" bson:"referenceNumber,omitempty"`
	ReferenceDate   *time.Time `json:"referenceDate,omitempty" bson:"referenceDate,omitempty"`
}

// LoadingMaterialItem is one material scheduled for loading.
type LoadingMaterialItem struct {
	MaterialName  string      `json:"materialName" bson:"materialName"`
	PackagingType string      `json:"packagingType,omitempty" bson:"packagingType,omitempty"`
	Quantity      float64     `json:"quantity,omitempty" bson:"quantity,omitempty"`
	Weight        Measurement `json:"weight" bson:"weight"`
}

// LoadingMaterial groups the load plan of a loading slip.
type LoadingMaterial struct {
	LoadType            string                `json:"loadType,omitempty" bson:"loadType,omitempty"`
	From                string                `json:"from,omitempty" bson:"from,omitempty"`
	To                  string                `json:"to,omitempty" bson:"to,omitempty"`
	ApproxLoadingWeight Measurement           `json:"approxLoadingWeight" bson:"approxLoadingWeight"`
	Materials           []LoadingMaterialItem `json:"materials,omitempty" bson:"materials,omitempty"`
}

// DriverDetails identifies the driver taking the load.
type DriverDetails struct {
	DriverName    string `json:"driverName,omitempty" bson:"driverName,omitempty"`
	DriverMobile  string `json:"driverMobile,omitempty" bson:"driverMobile,omitempty"`
	LicenseNumber string `json:"licenseNumber,omitempty" bson:"licenseNumber,omitempty"`
}

// BasicFreight is the agreed freight with its basis (Fixed / Per MT / Per Km).
type BasicFreight struct {
	Amount float64 `json:"amount" bson:"amount"`
	Type   string  `json:"type,omitempty" bson:"type,omitempty"`
}

// LoadingFreightDetails is the money block of a loading slip. BalanceAmount is
// derived; ComputeTotals overwrites it.
type LoadingFreightDetails struct {
	BasicFreight          BasicFreight `json:"basicFreight" bson:"basicFreight"`
	ConfirmedAdvance      float64      `json:"confirmedAdvance,omitempty" bson:"confirmedAdvance,omitempty"`
	BalanceAmount         float64      `json:"balanceAmount" bson:"balanceAmount"`
	LoadingChargePayBy    string       `json:"loadingChargePayBy,omitempty" bson:"loadingChargePayBy,omitempty"`
	LoadingChargeByDriver float64      `json:"loadingChargeByDriver,omitempty" bson:"loadingChargeByDriver,omitempty"`
}

// LoadingSlip instructs a driver what to pick up and where.
type LoadingSlip struct {
	ID               string                `json:"id" bson:"_id,omitempty"`
	SlipNumber       string                `json:"slipNumber" bson:"slipNumber"`
	Date             time.Time             `json:"date" bson:"date"`
	CompanyDetails   SlipCompanyDetails    `json:"companyDetails" bson:"companyDetails"`
	ReferenceDetails ReferenceDetails      `json:"referenceDetails" bson:"referenceDetails"`
	LoadingMaterial  LoadingMaterial       `json:"loadingMaterial" bson:"loadingMaterial"`
	TruckDetails     TruckDetails          `json:"truckDetails" bson:"truckDetails"`
	DriverDetails    DriverDetails         `json:"driverDetails" bson:"driverDetails"`
	FreightDetails   LoadingFreightDetails `json:"freightDetails" bson:"freightDetails"`
	Remarks          string                `json:"remarks,omitempty" bson:"remarks,omitempty"`
	CreatedBy        string                `json:"createdBy" bson:"createdBy"`
	CreatedAt        time.Time             `json:"createdAt" bson:"createdAt"`
	UpdatedAt        *time.Time            `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// ComputeTotals recomputes balanceAmount = basicFreight.amount - confirmedAdvance.
func (ls *LoadingSlip) ComputeTotals() {
	fd := &ls.FreightDetails
	balance := decimal.NewFromFloat(fd.BasicFreight.Amount).
		Sub(decimal.NewFromFloat(fd.ConfirmedAdvance))
	fd.BalanceAmount, _ = balance.Float64()
}
