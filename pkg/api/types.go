// Package api holds the request and response types of the ledger's HTTP
// surface. These are wire types; domain models live in pkg/models and are
// converted in pkg/mapping.
package api

import "time"

// NewTenant is the request body for creating a tenant at lease signing.
type NewTenant struct {
	Id         string    `json:"id,omitempty"`
	PropertyId string    `json:"property_id"`
	UnitTypeId string    `json:"unit_type_id"`
	FullName   string    `json:"full_name"`
	Phone      string    `json:"phone"`
	LeaseStart time.Time `json:"lease_start"`
	LeaseEnd   time.Time `json:"lease_end,omitempty"`
}

// Tenant is the wire representation of a tenant's ledger state.
type Tenant struct {
	Id               string    `json:"id"`
	PropertyId       string    `json:"property_id"`
	UnitTypeId       string    `json:"unit_type_id"`
	FullName         string    `json:"full_name"`
	Status           string    `json:"status"`
	LeaseStart       time.Time `json:"lease_start"`
	LeaseEnd         time.Time `json:"lease_end,omitempty"`
	WalletBalance    int64     `json:"wallet_balance"`
	TotalRentPaid    int64     `json:"total_rent_paid"`
	TotalUtilityPaid int64     `json:"total_utility_paid"`
	TotalDepositPaid int64     `json:"total_deposit_paid"`
	PaymentStanding  string    `json:"payment_standing"`
	Version          int64     `json:"version"`
}

// NewUnitType describes one pricing tier when registering a property.
type NewUnitType struct {
	Id             string `json:"id"`
	Name           string `json:"name"`
	Price          int64  `json:"price"`
	Deposit        int64  `json:"deposit"`
	MonthlyUtility int64  `json:"monthly_utility"`
	Units          int    `json:"units"`
}

// NewProperty is the request body for registering a property.
type NewProperty struct {
	Id              string        `json:"id,omitempty"`
	OwnerId         string        `json:"owner_id"`
	Name            string        `json:"name"`
	RentPaymentDate int           `json:"rent_payment_date"`
	UnitTypes       []NewUnitType `json:"unit_types"`
}

// Property is the wire representation of a property.
type Property struct {
	Id              string        `json:"id"`
	OwnerId         string        `json:"owner_id"`
	Name            string        `json:"name"`
	RentPaymentDate int           `json:"rent_payment_date"`
	UnitTypes       []NewUnitType `json:"unit_types"`
}

// ConfirmPayment is the request body for the payment-confirmation endpoint,
// fed by the gateway callback or manual entry.
type ConfirmPayment struct {
	TenantId      string    `json:"tenant_id"`
	PropertyId    string    `json:"property_id"`
	Amount        int64     `json:"amount"`
	Type          string    `json:"type"`
	TransactionId string    `json:"transaction_id,omitempty"`
	Reference     string    `json:"reference,omitempty"`
	PaymentDate   time.Time `json:"payment_date,omitempty"`
}

// Payment is the wire representation of a payment record.
type Payment struct {
	Id            string     `json:"id"`
	TenantId      string     `json:"tenant_id"`
	PropertyId    string     `json:"property_id"`
	Amount        int64      `json:"amount"`
	Type          string     `json:"type"`
	Status        string     `json:"status"`
	PaymentDate   time.Time  `json:"payment_date"`
	TransactionId string     `json:"transaction_id,omitempty"`
	Reference     string     `json:"reference,omitempty"`
	SettledAt     *time.Time `json:"settled_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// PaymentResult pairs the settled payment with the tenant ledger it updated.
type PaymentResult struct {
	Payment Payment `json:"payment"`
	Tenant  *Tenant `json:"tenant,omitempty"`
}
