package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kodipay/rentledger/pkg/models"
	"github.com/kodipay/rentledger/pkg/notify"
	"github.com/kodipay/rentledger/pkg/storage"
)

// ReminderCandidate is one tenant due a reminder on a given day.
type ReminderCandidate struct {
	Tenant   models.Tenant   `json:"tenant"`
	Property models.Property `json:"property"`
	Trigger  ReminderTrigger `json:"trigger"`
	Dues     Dues            `json:"dues"`
	Message  string          `json:"message"`
}

// SweepResult reports the partial-success outcome of one reminder sweep.
// Delivery failures are counted, not fatal: "sent 4, failed 1".
type SweepResult struct {
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// ReminderScheduler decides which tenants are due a reminder and dispatches
// them with same-calendar-day dedupe.
type ReminderScheduler struct {
	Store    storage.Storage
	Notifier notify.Notifier
}

// NewReminderScheduler creates a new ReminderScheduler.
func NewReminderScheduler(store storage.Storage, notifier notify.Notifier) *ReminderScheduler {
	return &ReminderScheduler{Store: store, Notifier: notifier}
}

// DueReminders returns the tenants across an owner's properties that would
// receive a reminder if a sweep ran at asOf. Tenants already reminded today
// are excluded.
func (s *ReminderScheduler) DueReminders(ctx context.Context, ownerID string, asOf time.Time) ([]ReminderCandidate, error) {
	properties, err := s.Store.ListPropertiesByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties for owner %s: %w", ownerID, err)
	}

	var candidates []ReminderCandidate
	for i := range properties {
		propertyCandidates, err := s.candidatesForProperty(ctx, &properties[i], asOf)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, propertyCandidates...)
	}
	return candidates, nil
}

// SendReminders runs a reminder sweep over an owner's properties.
func (s *ReminderScheduler) SendReminders(ctx context.Context, ownerID string, asOf time.Time) (*SweepResult, error) {
	properties, err := s.Store.ListPropertiesByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties for owner %s: %w", ownerID, err)
	}
	return s.sweep(ctx, properties, asOf)
}

// SweepAll runs a reminder sweep over every property. Used by the scheduled
// entrypoint.
func (s *ReminderScheduler) SweepAll(ctx context.Context, asOf time.Time) (*SweepResult, error) {
	properties, err := s.Store.ListProperties(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return s.sweep(ctx, properties, asOf)
}

func (s *ReminderScheduler) sweep(ctx context.Context, properties []models.Property, asOf time.Time) (*SweepResult, error) {
	result := &SweepResult{}

	for i := range properties {
		candidates, err := s.candidatesForProperty(ctx, &properties[i], asOf)
		if err != nil {
			return nil, err
		}

		for _, c := range candidates {
			// Claim the dedupe record first: the record is persisted whether
			// or not dispatch succeeds, and a concurrent sweep loses the
			// conditional write and skips.
			record := &models.ReminderRecord{
				Id:         models.ReminderRecordId(c.Tenant.Id, string(c.Trigger), asOf),
				TenantId:   c.Tenant.Id,
				PropertyId: c.Property.Id,
				Trigger:    string(c.Trigger),
				Day:        asOf.Format("2006-01-02"),
			}
			if err := s.Store.CreateReminderRecord(ctx, record); err != nil {
				if errors.Is(err, storage.ErrReminderAlreadySent) {
					result.Skipped++
					continue
				}
				return nil, fmt.Errorf("failed to record reminder for tenant %s: %w", c.Tenant.Id, err)
			}

			msg := notify.Message{
				TenantId:   c.Tenant.Id,
				PropertyId: c.Property.Id,
				Channel:    "sms",
				Recipient:  c.Tenant.Phone,
				Body:       c.Message,
			}
			if err := s.Notifier.Send(ctx, msg); err != nil {
				slog.Error("reminder dispatch failed", "tenant_id", c.Tenant.Id, "trigger", c.Trigger, "error", err)
				result.Failed++
				continue
			}
			result.Sent++
		}
	}

	return result, nil
}

// candidatesForProperty evaluates the property's reminder trigger for asOf and
// collects the active, lease-started tenants with outstanding dues that have
// not been reminded today.
func (s *ReminderScheduler) candidatesForProperty(ctx context.Context, property *models.Property, asOf time.Time) ([]ReminderCandidate, error) {
	trigger := ReminderTriggerFor(property.RentPaymentDate, asOf)
	if trigger == TriggerNone {
		return nil, nil
	}

	tenants, err := s.Store.ListTenantsByProperty(ctx, property.Id)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants for property %s: %w", property.Id, err)
	}

	var candidates []ReminderCandidate
	for i := range tenants {
		tenant := &tenants[i]
		if tenant.Status != models.ACTIVE || asOf.Before(tenant.LeaseStart) {
			continue
		}

		unit := property.UnitType(tenant.UnitTypeId)
		if unit == nil {
			return nil, fmt.Errorf("tenant %s references unit type %s on property %s: %w",
				tenant.Id, tenant.UnitTypeId, property.Id, storage.ErrUnitTypeNotFound)
		}

		payments, err := s.Store.ListPaymentsByTenant(ctx, tenant.Id)
		if err != nil {
			return nil, fmt.Errorf("failed to list payments for tenant %s: %w", tenant.Id, err)
		}

		dues := ComputeDues(tenant, unit, payments, asOf)
		if dues.TotalDue <= 0 {
			continue
		}

		exists, err := s.Store.HasReminderRecord(ctx, models.ReminderRecordId(tenant.Id, string(trigger), asOf))
		if err != nil {
			return nil, fmt.Errorf("failed to check reminder record for tenant %s: %w", tenant.Id, err)
		}
		if exists {
			continue
		}

		candidates = append(candidates, ReminderCandidate{
			Tenant:   *tenant,
			Property: *property,
			Trigger:  trigger,
			Dues:     *dues,
			Message:  composeReminderMessage(tenant, property, dues, trigger),
		})
	}

	return candidates, nil
}

// composeReminderMessage builds the due-summary text handed to the dispatcher.
func composeReminderMessage(tenant *models.Tenant, property *models.Property, dues *Dues, trigger ReminderTrigger) string {
	lead := fmt.Sprintf("Dear %s, your rent for %s is due on day %d of this month.",
		tenant.FullName, property.Name, property.RentPaymentDate)
	if trigger == TriggerPaymentDate {
		lead = fmt.Sprintf("Dear %s, your rent for %s is due today.", tenant.FullName, property.Name)
	}
	return fmt.Sprintf("%s Outstanding: rent %d, utility %d, deposit %d (total %d).",
		lead, dues.RentDue, dues.UtilityDue, dues.DepositDue, dues.TotalDue)
}
