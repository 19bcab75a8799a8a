package models

import (
	"time"
)

// PaymentType classifies which due bucket a payment targets.
type PaymentType string

const (
	RENT    PaymentType = "RENT"
	UTILITY PaymentType = "UTILITY"
	DEPOSIT PaymentType = "DEPOSIT"
	OTHER   PaymentType = "OTHER"
)

// KnownPaymentType reports whether t is one of the recognized payment types.
func KnownPaymentType(t PaymentType) bool {
	switch t {
	case RENT, UTILITY, DEPOSIT, OTHER:
		return true
	}
	return false
}

// PaymentStatus defines the possible states of a payment.
// A payment transitions from PENDING to exactly one terminal status.
type PaymentStatus string

const (
	PENDING   PaymentStatus = "PENDING"
	COMPLETED PaymentStatus = "COMPLETED"
	FAILED    PaymentStatus = "FAILED"
	CANCELLED PaymentStatus = "CANCELLED"
)

// TenantStatus defines whether a tenant currently holds an open lease.
type TenantStatus string

const (
	ACTIVE   TenantStatus = "ACTIVE"
	INACTIVE TenantStatus = "INACTIVE"
)

// PaymentStanding summarizes whether a tenant has any outstanding dues.
type PaymentStanding string

const (
	CURRENT PaymentStanding = "CURRENT"
	OVERDUE PaymentStanding = "OVERDUE"
)

// Tenant represents the internal domain model for a tenant's ledger state.
// The three paid totals and the wallet balance are denormalized from the
// payment history; the payment history remains authoritative. Version is a
// monotonically increasing counter guarding every ledger write.
type Tenant struct {
	Id               string          `json:"id" dynamodbav:"id"`
	PropertyId       string          `json:"property_id" dynamodbav:"property_id"`
	UnitTypeId       string          `json:"unit_type_id" dynamodbav:"unit_type_id"`
	FullName         string          `json:"full_name" dynamodbav:"full_name"`
	Phone            string          `json:"phone" dynamodbav:"phone"`
	LeaseStart       time.Time       `json:"lease_start" dynamodbav:"lease_start"`
	LeaseEnd         time.Time       `json:"lease_end" dynamodbav:"lease_end"`
	Status           TenantStatus    `json:"status" dynamodbav:"status"`
	WalletBalance    int64           `json:"wallet_balance" dynamodbav:"wallet_balance"`
	TotalRentPaid    int64           `json:"total_rent_paid" dynamodbav:"total_rent_paid"`
	TotalUtilityPaid int64           `json:"total_utility_paid" dynamodbav:"total_utility_paid"`
	TotalDepositPaid int64           `json:"total_deposit_paid" dynamodbav:"total_deposit_paid"`
	PaymentStanding  PaymentStanding `json:"payment_standing" dynamodbav:"payment_standing"`
	Version          int64           `json:"version" dynamodbav:"version"`
	CreatedAt        time.Time       `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at" dynamodbav:"updated_at"`
}

// LeaseOpenEnded reports whether the tenant's lease has no fixed end date.
func (t *Tenant) LeaseOpenEnded() bool {
	return t.LeaseEnd.IsZero()
}

// UnitType is one pricing tier within a property: monthly rent, a one-off
// deposit and a flat monthly utility charge, plus how many physical units
// exist at this tier.
type UnitType struct {
	Id             string `dynamodbav:"id"`
	Name           string `dynamodbav:"name"`
	Price          int64  `dynamodbav:"price"`
	Deposit        int64  `dynamodbav:"deposit"`
	MonthlyUtility int64  `dynamodbav:"monthly_utility"`
	Units          int    `dynamodbav:"units"`
}

// Property represents a rental property. Read-only from the ledger's
// perspective: the ledger never mutates property records.
type Property struct {
	Id              string     `dynamodbav:"id"`
	OwnerId         string     `dynamodbav:"owner_id"`
	Name            string     `dynamodbav:"name"`
	RentPaymentDate int        `dynamodbav:"rent_payment_date"` // day of month, 1-28
	UnitTypes       []UnitType `dynamodbav:"unit_types"`
	CreatedAt       time.Time  `dynamodbav:"created_at"`
}

// UnitType returns the unit type with the given id, or nil if the property
// has no such tier.
func (p *Property) UnitType(id string) *UnitType {
	for i := range p.UnitTypes {
		if p.UnitTypes[i].Id == id {
			return &p.UnitTypes[i]
		}
	}
	return nil
}

// TotalUnits returns the number of physical units across all tiers.
func (p *Property) TotalUnits() int {
	total := 0
	for _, ut := range p.UnitTypes {
		total += ut.Units
	}
	return total
}

// Payment is one entry in the append-only payment history, the authoritative
// source of truth for the ledger. TransactionId is the externally issued
// gateway transaction id; storage enforces its uniqueness.
type Payment struct {
	Id            string        `dynamodbav:"id"`
	TenantId      string        `dynamodbav:"tenant_id"`
	PropertyId    string        `dynamodbav:"property_id"`
	Amount        int64         `dynamodbav:"amount"`
	Type          PaymentType   `dynamodbav:"type"`
	Status        PaymentStatus `dynamodbav:"status"`
	PaymentDate   time.Time     `dynamodbav:"payment_date"`
	TransactionId string        `dynamodbav:"transaction_id,omitempty"`
	Reference     string        `dynamodbav:"reference,omitempty"`
	SettledAt     *time.Time    `dynamodbav:"settled_at,omitempty"`
	CreatedAt     time.Time     `dynamodbav:"created_at"`
	UpdatedAt     time.Time     `dynamodbav:"updated_at"`
}

// LedgerUpdate carries the new denormalized ledger state for a tenant,
// applied as a single conditional write against ExpectedVersion.
type LedgerUpdate struct {
	TenantId         string
	ExpectedVersion  int64
	WalletBalance    int64
	TotalRentPaid    int64
	TotalUtilityPaid int64
	TotalDepositPaid int64
	PaymentStanding  PaymentStanding
}

// ReminderRecord marks that a reminder of a given trigger type was produced
// for a tenant on a given calendar day. Used purely as a dedupe key.
type ReminderRecord struct {
	Id         string    `dynamodbav:"id"` // tenant_id#trigger#day
	TenantId   string    `dynamodbav:"tenant_id"`
	PropertyId string    `dynamodbav:"property_id"`
	Trigger    string    `dynamodbav:"trigger"`
	Day        string    `dynamodbav:"day"` // calendar day, YYYY-MM-DD
	CreatedAt  time.Time `dynamodbav:"created_at"`
}

// ReminderRecordId builds the dedupe key for a tenant, trigger type and
// calendar day.
func ReminderRecordId(tenantID, trigger string, day time.Time) string {
	return tenantID + "#" + trigger + "#" + day.Format("2006-01-02")
}
