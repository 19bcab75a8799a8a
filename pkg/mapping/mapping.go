package mapping

import (
	"github.com/kodipay/rentledger/pkg/api"
	"github.com/kodipay/rentledger/pkg/models"
)

// ToApiTenant converts a domain Tenant model to an API Tenant model.
func ToApiTenant(tenant *models.Tenant) *api.Tenant {
	return &api.Tenant{
		Id:               tenant.Id,
		PropertyId:       tenant.PropertyId,
		UnitTypeId:       tenant.UnitTypeId,
		FullName:         tenant.FullName,
		Status:           string(tenant.Status),
		LeaseStart:       tenant.LeaseStart,
		LeaseEnd:         tenant.LeaseEnd,
		WalletBalance:    tenant.WalletBalance,
		TotalRentPaid:    tenant.TotalRentPaid,
		TotalUtilityPaid: tenant.TotalUtilityPaid,
		TotalDepositPaid: tenant.TotalDepositPaid,
		PaymentStanding:  string(tenant.PaymentStanding),
		Version:          tenant.Version,
	}
}

// ToDomainNewTenant converts an API NewTenant model to a domain Tenant model.
func ToDomainNewTenant(newTenant *api.NewTenant) *models.Tenant {
	return &models.Tenant{
		Id:              newTenant.Id,
		PropertyId:      newTenant.PropertyId,
		UnitTypeId:      newTenant.UnitTypeId,
		FullName:        newTenant.FullName,
		Phone:           newTenant.Phone,
		LeaseStart:      newTenant.LeaseStart,
		LeaseEnd:        newTenant.LeaseEnd,
		Status:          models.ACTIVE,
		PaymentStanding: models.CURRENT,
	}
}

// ToApiProperty converts a domain Property model to an API Property model.
func ToApiProperty(property *models.Property) *api.Property {
	unitTypes := make([]api.NewUnitType, len(property.UnitTypes))
	for i, ut := range property.UnitTypes {
		unitTypes[i] = api.NewUnitType{
			Id:             ut.Id,
			Name:           ut.Name,
			Price:          ut.Price,
			Deposit:        ut.Deposit,
			MonthlyUtility: ut.MonthlyUtility,
			Units:          ut.Units,
		}
	}
	return &api.Property{
		Id:              property.Id,
		OwnerId:         property.OwnerId,
		Name:            property.Name,
		RentPaymentDate: property.RentPaymentDate,
		UnitTypes:       unitTypes,
	}
}

// ToDomainNewProperty converts an API NewProperty model to a domain Property model.
func ToDomainNewProperty(newProperty *api.NewProperty) *models.Property {
	unitTypes := make([]models.UnitType, len(newProperty.UnitTypes))
	for i, ut := range newProperty.UnitTypes {
		unitTypes[i] = models.UnitType{
			Id:             ut.Id,
			Name:           ut.Name,
			Price:          ut.Price,
			Deposit:        ut.Deposit,
			MonthlyUtility: ut.MonthlyUtility,
			Units:          ut.Units,
		}
	}
	return &models.Property{
		Id:              newProperty.Id,
		OwnerId:         newProperty.OwnerId,
		Name:            newProperty.Name,
		RentPaymentDate: newProperty.RentPaymentDate,
		UnitTypes:       unitTypes,
	}
}

// ToApiPayment converts a domain Payment model to an API Payment model.
func ToApiPayment(payment *models.Payment) *api.Payment {
	return &api.Payment{
		Id:            payment.Id,
		TenantId:      payment.TenantId,
		PropertyId:    payment.PropertyId,
		Amount:        payment.Amount,
		Type:          string(payment.Type),
		Status:        string(payment.Status),
		PaymentDate:   payment.PaymentDate,
		TransactionId: payment.TransactionId,
		Reference:     payment.Reference,
		SettledAt:     payment.SettledAt,
		CreatedAt:     payment.CreatedAt,
	}
}
