package repository

import (
	"context"

	"tarapurtransport/models"
)

// Page is a normalized pagination request.
type Page struct {
	Number int
	Limit  int
}

// Offset returns the number of records to skip.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// NormalizePage clamps raw query values into a usable page.
func NormalizePage(number, limit int) Page {
	if number < 1 {
		number = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return Page{Number: number, Limit: limit}
}

// LorryReceiptFilter narrows lorry receipt listings. String fields match
// case-insensitively as substrings; empty fields are ignored.
type LorryReceiptFilter struct {
	Number        string
	ConsignorName string
	ConsigneeName string
	TruckNumber   string
	Status        string
}

// QuotationFilter narrows quotation listings.
type QuotationFilter struct {
	Number      string
	CompanyName string
}

// LoadingSlipFilter narrows loading slip listings.
type LoadingSlipFilter struct {
	SlipNumber  string
	TruckNumber string
	CompanyName string
}

// DeliverySlipFilter narrows delivery slip listings.
type DeliverySlipFilter struct {
	SlipNumber         string
	LorryReceiptNumber string
	Status             string
}

// All repositories scope reads and writes by the owning user: a record
// created by one user is invisible to every other user, and a cross-user id
// lookup reports ErrNotFound rather than leaking existence.

type LorryReceiptRepository interface {
	Create(ctx context.Context, lr *models.LorryReceipt) error
	List(ctx context.Context, userID string, f LorryReceiptFilter, p Page) ([]*models.LorryReceipt, int64, error)
	GetByID(ctx context.Context, userID, id string) (*models.LorryReceipt, error)
	Update(ctx context.Context, userID string, lr *models.LorryReceipt) error
	Delete(ctx context.Context, userID, id string) error
}

type QuotationRepository interface {
	Create(ctx context.Context, q *models.Quotation) error
	List(ctx context.Context, userID string, f QuotationFilter, p Page) ([]*models.Quotation, int64, error)
	GetByID(ctx context.Context, userID, id string) (*models.Quotation, error)
	Update(ctx context.Context, userID string, q *models.Quotation) error
	Delete(ctx context.Context, userID, id string) error
}

type LoadingSlipRepository interface {
	Create(ctx context.Context, ls *models.LoadingSlip) error
	List(ctx context.Context, userID string, f LoadingSlipFilter, p Page) ([]*models.LoadingSlip, int64, error)
	GetByID(ctx context.Context, userID, id string) (*models.LoadingSlip, error)
	Update(ctx context.Context, userID string, ls *models.LoadingSlip) error
	Delete(ctx context.Context, userID, id string) error
}

type DeliverySlipRepository interface {
	Create(ctx context.Context, ds *models.DeliverySlip) error
	List(ctx context.Context, userID string, f DeliverySlipFilter, p Page) ([]*models.DeliverySlip, int64, error)
	GetByID(ctx context.Context, userID, id string) (*models.DeliverySlip, error)
	Update(ctx context.Context, userID string, ds *models.DeliverySlip) error
	Delete(ctx context.Context, userID, id string) error
}

// CompanyRepository keeps the party directory that document saves feed.
// Upsert matches on name+GSTIN so repeated saves never duplicate a party.
type CompanyRepository interface {
	Upsert(ctx context.Context, c *models.Company) error
	List(ctx context.Context, nameFilter string, p Page) ([]*models.Company, int64, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.AppUser) error
	GetUserByEmail(ctx context.Context, email string) (*models.AppUser, error)
}
