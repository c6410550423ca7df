package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/esenmoda/esen/internal"
	"github.com/esenmoda/esen/internal/domain"
	"github.com/esenmoda/esen/internal/store"
)

// SettingsService holds the admin-editable shipping policy. Reads are hot
// path (every cart summary); writes happen only from the admin surface.
type SettingsService interface {
	// ShippingPolicy returns the current policy.
	ShippingPolicy(ctx context.Context) domain.ShippingPolicy

	// UpdateShippingPolicy replaces the policy. Changes apply to the next
	// summary of every open cart; nothing is recomputed eagerly.
	UpdateShippingPolicy(ctx context.Context, policy domain.ShippingPolicy) error
}

type settingsService struct {
	mu     sync.RWMutex
	policy domain.ShippingPolicy
	store  store.Store
	logger *slog.Logger
}

// NewSettingsService creates a SettingsService seeded from configuration
// and overridden by the shipping policy slot when one is present.
func NewSettingsService(ctx context.Context, cfg internal.ShippingConfig, st store.Store, logger *slog.Logger) SettingsService {
	if logger == nil {
		logger = slog.Default()
	}

	s := &settingsService{
		policy: domain.ShippingPolicy{
			BaseCostCents:      cfg.BaseCostCents,
			FreeThresholdCents: cfg.FreeThresholdCents,
			FreeItemCount:      cfg.FreeItemCount,
		},
		store:  st,
		logger: logger,
	}

	if record, err := st.Load(ctx, store.SlotShippingPolicy); err == nil {
		var policy domain.ShippingPolicy
		if err := json.Unmarshal(record, &policy); err != nil {
			logger.Warn("shipping policy slot corrupt, using configured defaults", "error", err)
		} else {
			s.policy = policy
		}
	} else if !store.IsNotFound(err) {
		logger.Warn("shipping policy slot unreadable, using configured defaults", "error", err)
	}

	return s
}

func (s *settingsService) ShippingPolicy(ctx context.Context) domain.ShippingPolicy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.policy
}

func (s *settingsService) UpdateShippingPolicy(ctx context.Context, policy domain.ShippingPolicy) error {
	if policy.BaseCostCents < 0 {
		return domain.NewValidationError("settings.updateShippingPolicy", "base_cost_cents", "must not be negative")
	}
	if policy.FreeThresholdCents < 0 {
		return domain.NewValidationError("settings.updateShippingPolicy", "free_threshold_cents", "must not be negative")
	}
	if policy.FreeItemCount < 1 {
		return domain.NewValidationError("settings.updateShippingPolicy", "free_item_count", "must be at least 1")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.policy = policy

	record, err := json.Marshal(policy)
	if err != nil {
		s.logger.Error("failed to marshal shipping policy", "error", err)
		return nil
	}
	if err := s.store.Save(ctx, store.SlotShippingPolicy, record); err != nil {
		s.logger.Error("failed to persist shipping policy", "error", err)
	}
	return nil
}
