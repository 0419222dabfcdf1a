package internal

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/DrGermanius/shabfood/internal/model"
)

// Capability describes what a role sees and may do on its dashboard.
type Capability struct {
	Role           model.Role
	ShowCustomerID bool
}

func CapabilityOf(role model.Role) Capability {
	return Capability{
		Role:           role,
		ShowCustomerID: role != model.RoleCustomer,
	}
}

func (c Capability) Actions(current model.OrderStatus) []model.Action {
	next := model.LegalNextStatuses(c.Role, current)
	actions := make([]model.Action, 0, len(next))
	for _, s := range next {
		d := model.DisplayOf(s)
		actions = append(actions, model.Action{Target: s, Label: d.Label, Color: d.Color})
	}
	return actions
}

// Record maps a raw order to its view-model. Invalid orders are rejected
// with the validation error.
func (c Capability) Record(o model.RawOrder) (model.OrderRecord, error) {
	if err := o.Validate(); err != nil {
		return model.OrderRecord{}, err
	}

	status := *o.Status
	d := model.DisplayOf(status)

	r := model.OrderRecord{
		ID:                o.ID,
		Time:              o.Timestamp,
		Status:            status,
		StatusLabel:       d.Label,
		StatusColor:       d.Color,
		Address:           o.Customer.Address,
		RestaurantID:      o.Restaurant.ID,
		RestaurantName:    o.Restaurant.Name,
		RestaurantAddress: o.Restaurant.Address,
		Actions:           c.Actions(status),
	}
	if c.ShowCustomerID {
		r.CustomerID = o.Customer.ID
	}
	return r, nil
}

// Records maps raw orders, silently dropping the ones that fail validation.
func (c Capability) Records(raw []model.RawOrder) []model.OrderRecord {
	records := make([]model.OrderRecord, 0, len(raw))
	for _, o := range raw {
		r, err := c.Record(o)
		if err != nil {
			continue
		}
		records = append(records, r)
	}
	return records
}

// UnionDelivererOrders is always ordered current first, then request,
// whichever fetch finished first. Absent or invalid halves are dropped.
func UnionDelivererOrders(current, request *model.RawOrder) []model.RawOrder {
	res := make([]model.RawOrder, 0, 2)
	for _, o := range []*model.RawOrder{current, request} {
		if o == nil || o.Validate() != nil {
			continue
		}
		if len(res) == 1 && res[0].ID == o.ID {
			continue
		}
		res = append(res, *o)
	}
	return res
}

// Dashboard holds the order list of a single session.
type Dashboard struct {
	capability Capability
	backend    IBackend
	menu       *ActionMenu
	logger     *zap.SugaredLogger
	now        func() time.Time

	mu      sync.Mutex
	seq     uint64
	loaded  bool
	records []model.OrderRecord
}

func NewDashboard(role model.Role, backend IBackend, logger *zap.SugaredLogger) *Dashboard {
	return &Dashboard{
		capability: CapabilityOf(role),
		backend:    backend,
		menu:       NewActionMenu(backend, logger),
		logger:     logger,
		now:        time.Now,
		records:    []model.OrderRecord{},
	}
}

func (d *Dashboard) Role() model.Role {
	return d.capability.Role
}

func (d *Dashboard) Loaded() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loaded
}

func (d *Dashboard) Records() []model.OrderRecord {
	d.mu.Lock()
	defer d.mu.Unlock()

	res := make([]model.OrderRecord, len(d.records))
	copy(res, d.records)
	return res
}

// Refresh replaces the whole list. A refresh overtaken by a newer one is
// dropped with ErrStaleRefresh; a failed one keeps the previous list.
func (d *Dashboard) Refresh(ctx context.Context, s model.Session) error {
	if !s.Authenticated(d.now()) {
		return ErrUnauthorized
	}

	d.mu.Lock()
	d.seq++
	seq := d.seq
	d.mu.Unlock()

	raw, err := d.fetch(ctx, s.AccessToken)
	if err != nil {
		d.logger.Errorf("Refresh error: %s dashboard: %s", d.capability.Role, err.Error())
		return err
	}
	records := d.capability.Records(raw)

	d.mu.Lock()
	defer d.mu.Unlock()
	if seq != d.seq {
		return ErrStaleRefresh
	}
	d.records = records
	d.loaded = true
	return nil
}

// ApplyTransition only accepts targets legal from the displayed status and
// refreshes after the backend accepted the change.
func (d *Dashboard) ApplyTransition(ctx context.Context, s model.Session, orderID string, target model.OrderStatus) (model.TransitionRecord, error) {
	d.mu.Lock()
	current, ok := d.statusOf(orderID)
	d.mu.Unlock()

	if !ok {
		return model.TransitionRecord{}, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}
	if !model.CanTransition(d.capability.Role, current, target) {
		return model.TransitionRecord{}, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, current, target)
	}

	err := d.menu.ApplyTransition(ctx, s, orderID, target)
	if err != nil {
		return model.TransitionRecord{}, err
	}

	t := model.TransitionRecord{
		OrderID:   orderID,
		Role:      s.Role,
		ActorID:   s.UserID,
		From:      current,
		To:        target,
		AppliedAt: d.now(),
	}

	if err = d.Refresh(ctx, s); err != nil && !errors.Is(err, ErrStaleRefresh) {
		d.logger.Errorf("ApplyTransition error: refresh after %s: %s", orderID, err.Error())
	}
	return t, nil
}

func (d *Dashboard) statusOf(orderID string) (model.OrderStatus, bool) {
	for _, r := range d.records {
		if r.ID == orderID {
			return r.Status, true
		}
	}
	return 0, false
}

func (d *Dashboard) fetch(ctx context.Context, token string) ([]model.RawOrder, error) {
	switch d.capability.Role {
	case model.RoleCustomer:
		return d.backend.CustomerOrders(ctx, token)
	case model.RoleRestaurant:
		return d.backend.RestaurantOrders(ctx, token)
	case model.RoleDeliverer:
		return d.fetchDeliverer(ctx, token)
	default:
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownRole, d.capability.Role)
	}
}

// fetchDeliverer runs both fetches concurrently. Any failure other than
// an auth failure counts as an absent half.
func (d *Dashboard) fetchDeliverer(ctx context.Context, token string) ([]model.RawOrder, error) {
	var (
		wg                     sync.WaitGroup
		current, request       *model.RawOrder
		currentErr, requestErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		current, currentErr = d.backend.DelivererCurrentOrder(ctx, token)
	}()
	go func() {
		defer wg.Done()
		request, requestErr = d.backend.DelivererRequestOrder(ctx, token)
	}()
	wg.Wait()

	for _, err := range []error{currentErr, requestErr} {
		if errors.Is(err, ErrUnauthorized) {
			return nil, err
		}
	}
	if currentErr != nil {
		d.logger.Errorf("Refresh error: deliverer current order: %s", currentErr.Error())
		current = nil
	}
	if requestErr != nil {
		d.logger.Errorf("Refresh error: deliverer request order: %s", requestErr.Error())
		request = nil
	}

	return UnionDelivererOrders(current, request), nil
}
