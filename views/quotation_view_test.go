package views

import (
	"testing"
	"time"

	"tarapurtransport/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuotation() *models.Quotation {
	exp := time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)
	return &models.Quotation{
		QuotationNumber: "QT-2024-01",
		Date:            time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		QuoteToCompany: models.QuoteToCompany{
			CompanyName:   "B Corp",
			ContactNumber: "8888888888",
			Address:       "Plot 2",
			City:          "Mumbai",
			State:         "MH",
			PinCode:       "400001",
		},
		TripDetails: models.TripDetails{From: "Tarapur", To: "Mumbai"},
		MaterialDetails: []models.QuotationMaterial{{
			MaterialName: "Steel Coils",
			Weight:       models.Measurement{Value: 20, Unit: "MT"},
		}},
		VehicleDetails: []models.VehicleDetail{{
			VehicleType:      "Open Body",
			NumberOfVehicles: 2,
			LoadType:         "Full Load",
		}},
		FreightBreakup: models.FreightBreakup{
			Rate: models.Measurement{Value: 45000, Unit: "Fixed"},
			ExtraCharges: models.ExtraCharges{
				TollCharge:        1200,
				TotalExtraCharges: 1200,
			},
			ApplicableGST:       "12%",
			GSTAmount:           5544,
			TotalFreightWithGst: 51744,
		},
		PaymentTerms: "50% advance, balance on delivery",
		QuotationValidity: models.QuotationValidity{
			ValidUpTo:  models.ValidUpTo{Type: models.ValidUpToDate, Value: "2024-04-30"},
			ExpiryDate: &exp,
		},
		Demurrage: models.Demurrage{
			Rate:        500,
			Per:         "Day",
			GracePeriod: models.Measurement{Value: 48, Unit: "Hours"},
		},
	}
}

func TestMapQuotationView(t *testing.T) {
	v := MapQuotationView(sampleQuotation(), Letterhead{Name: "Tarapur Transport"})

	assert.Equal(t, "QT-2024-01", v.Number)
	assert.Equal(t, "15/03/2024", v.Date)
	assert.Equal(t, "B Corp", v.CompanyName)
	assert.Equal(t, []string{"Plot 2", "Mumbai - 400001", "MH"}, v.CompanyAddress)
	assert.Equal(t, "Tarapur", v.From)
	assert.Equal(t, 45000.0, v.RateAmount)
	assert.Equal(t, 51744.0, v.TotalFreightWithGst)
	assert.Equal(t, "30/04/2024", v.ValidUpTo)
}

func TestMapQuotationView_ExtraRowsOnlyNonZero(t *testing.T) {
	v := MapQuotationView(sampleQuotation(), Letterhead{})

	require.Len(t, v.ExtraRows, 1)
	assert.Equal(t, "Toll Charges", v.ExtraRows[0].Label)
	assert.Equal(t, 1200.0, v.ExtraRows[0].Amount)
}

func TestMapQuotationView_Demurrage(t *testing.T) {
	v := MapQuotationView(sampleQuotation(), Letterhead{})
	assert.Equal(t, "Rs. 500 per Day after 48 Hours", v.Demurrage)

	q := sampleQuotation()
	q.Demurrage = models.Demurrage{}
	v = MapQuotationView(q, Letterhead{})
	assert.Equal(t, "", v.Demurrage)
}

func TestMapQuotationView_Vehicles(t *testing.T) {
	v := MapQuotationView(sampleQuotation(), Letterhead{})

	require.Len(t, v.Vehicles, 1)
	assert.Equal(t, "Open Body", v.Vehicles[0].VehicleType)
	assert.Equal(t, "2", v.Vehicles[0].Count)
}
