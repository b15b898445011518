package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Delivery slip status values.
const (
	DSStatusCreated        = "Created"
	DSStatusOutForDelivery = "Out for Delivery"
	DSStatusDelivered      = "Delivered"
	DSStatusFailedDelivery = "Failed Delivery"
	DSStatusCancelled      = "Cancelled"
)

// DeliverySlipStatuses lists the allowed status values in order.
var DeliverySlipStatuses = []string{
	DSStatusCreated, DSStatusOutForDelivery, DSStatusDelivered,
	DSStatusFailedDelivery, DSStatusCancelled,
}

// IsValidDeliverySlipStatus reports whether s is one of the enumerated statuses.
func IsValidDeliverySlipStatus(s string) bool {
	for _, v := range DeliverySlipStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// DeliveryParty is the sender or receiver on a delivery slip.
type DeliveryParty struct {
	Name          string `json:"name" bson:"name"`
	ContactNumber string `json:"contactNumber,omitempty" bson:"contactNumber,omitempty"`
	Address       string `json:"address,omitempty" bson:"address,omitempty"`
	City          string `json:"city,omitempty" bson:"city,omitempty"`
	State         string `json:"state,omitempty" bson:"state,omitempty"`
	PinCode       string `json:"pinCode,omitempty" bson:"pinCode,omitempty"`
}

// PartyDetails groups both delivery slip parties.
type PartyDetails struct {
	Sender   DeliveryParty `json:"sender" bson:"sender"`
	Receiver DeliveryParty `json:"receiver" bson:"receiver"`
}

// ParcelDetails references the lorry receipt the last-mile parcel belongs to.
type ParcelDetails struct {
	LorryReceiptNumber string      `json:"lorryReceiptNumber" bson:"lorryReceiptNumber"`
	NumberOfArticles   int         `json:"numberOfArticles,omitempty" bson:"numberOfArticles,omitempty"`
	Weight             Measurement `json:"weight" bson:"weight"`
	Description        string      `json:"description,omitempty" bson:"description,omitempty"`
}

// DeliveryCharges is the fixed set of eight named last-mile charges.
type DeliveryCharges struct {
	DoorDeliveryCharge float64 `json:"doorDeliveryCharge,omitempty" bson:"doorDeliveryCharge,omitempty"`
	UnloadingCharge    float64 `json:"unloadingCharge,omitempty" bson:"unloadingCharge,omitempty"`
	Hamali             float64 `json:"hamali,omitempty" bson:"hamali,omitempty"`
	CollectionCharge   float64 `json:"collectionCharge,omitempty" bson:"collectionCharge,omitempty"`
	ServiceCharge      float64 `json:"serviceCharge,omitempty" bson:"serviceCharge,omitempty"`
	StationeryCharge   float64 `json:"stationeryCharge,omitempty" bson:"stationeryCharge,omitempty"`
	DemurrageCharge    float64 `json:"demurrageCharge,omitempty" bson:"demurrageCharge,omitempty"`
	OtherCharges       float64 `json:"otherCharges,omitempty" bson:"otherCharges,omitempty"`
}

// All returns the eight named charges in a fixed order.
func (c DeliveryCharges) All() []float64 {
	return []float64{
		c.DoorDeliveryCharge, c.UnloadingCharge, c.Hamali, c.CollectionCharge,
		c.ServiceCharge, c.StationeryCharge, c.DemurrageCharge, c.OtherCharges,
	}
}

// DeliveryFreightDetails is the money block of a delivery slip.
// DeliveryCollection and TotalFreight are derived; ComputeTotals overwrites them.
type DeliveryFreightDetails struct {
	Charges            DeliveryCharges `json:"charges" bson:"charges"`
	DeliveryCollection float64         `json:"deliveryCollection" bson:"deliveryCollection"`
	GSTDetails         GSTDetails      `json:"gstDetails" bson:"gstDetails"`
	RoundOff           float64         `json:"roundOff,omitempty" bson:"roundOff,omitempty"`
	TotalFreight       float64         `json:"totalFreight" bson:"totalFreight"`
}

// DeliverySlip tracks the last-mile leg of a consignment.
type DeliverySlip struct {
	ID             string                 `json:"id" bson:"_id,omitempty"`
	SlipNumber     string                 `json:"slipNumber" bson:"slipNumber"`
	Date           time.Time              `json:"date" bson:"date"`
	PartyDetails   PartyDetails           `json:"partyDetails" bson:"partyDetails"`
	ParcelDetails  ParcelDetails          `json:"parcelDetails" bson:"parcelDetails"`
	FreightDetails DeliveryFreightDetails `json:"freightDetails" bson:"freightDetails"`
	DeliveryBy     string                 `json:"deliveryBy,omitempty" bson:"deliveryBy,omitempty"`
	Status         string                 `json:"status" bson:"status"`
	DeliveredAt    *time.Time             `json:"deliveredAt,omitempty" bson:"deliveredAt,omitempty"`
	CreatedBy      string                 `json:"createdBy" bson:"createdBy"`
	CreatedAt      time.Time              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      *time.Time             `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// ComputeTotals recomputes the derived money fields:
//
//	deliveryCollection = sum(eight named charges)
//	totalFreight       = deliveryCollection + gstAmount + roundOff
func (ds *DeliverySlip) ComputeTotals() {
	fd := &ds.FreightDetails

	collection := decimal.Zero
	for _, c := range fd.Charges.All() {
		collection = collection.Add(decimal.NewFromFloat(c))
	}
	fd.DeliveryCollection, _ = collection.Float64()

	if pct, ok := ParseGSTPercent(fd.GSTDetails.ApplicableGST); ok {
		gst := collection.Mul(pct).Div(decimal.NewFromInt(100))
		fd.GSTDetails.GSTAmount, _ = gst.Float64()
	}

	total := collection.
		Add(decimal.NewFromFloat(fd.GSTDetails.GSTAmount)).
		Add(decimal.NewFromFloat(fd.RoundOff))
	fd.TotalFreight, _ = total.Float64()
}

// TransitionStatus moves the slip to a new status. deliveredAt is stamped when
// the slip first enters "Delivered"; staying in "Delivered" keeps the original
// stamp, while leaving and re-entering stamps again.
func (ds *DeliverySlip) TransitionStatus(status string, now time.Time) {
	if status == DSStatusDelivered && ds.Status != DSStatusDelivered {
		t := now
		ds.DeliveredAt = &t
	}
	ds.Status = status
}
