package internal

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/DrGermanius/shabfood/internal/model"
)

// AvailableActions lists what a role may do from current. Empty means nothing to offer.
func AvailableActions(role model.Role, current model.OrderStatus) []model.Action {
	return CapabilityOf(role).Actions(current)
}

// ActionMenu performs status changes through the backend. It keeps no order state.
type ActionMenu struct {
	backend IBackend
	logger  *zap.SugaredLogger
	now     func() time.Time
}

func NewActionMenu(backend IBackend, logger *zap.SugaredLogger) *ActionMenu {
	return &ActionMenu{backend: backend, logger: logger, now: time.Now}
}

func (m ActionMenu) ApplyTransition(ctx context.Context, s model.Session, orderID string, target model.OrderStatus) error {
	if !s.Authenticated(m.now()) {
		return ErrUnauthorized
	}
	if !s.Role.Mutates() {
		return fmt.Errorf("%w: %s", ErrForbiddenRole, s.Role)
	}
	if !target.Valid() {
		return fmt.Errorf("%w: unknown target %d", ErrIllegalTransition, target)
	}

	err := m.backend.UpdateOrderStatus(ctx, s.AccessToken, s.Role, orderID, target)
	if err != nil {
		m.logger.Errorf("ApplyTransition error: order %s to %s: %s", orderID, target, err.Error())
		return err
	}

	return nil
}
