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

//go:generate mockgen -destination=mock/service.go -package=mock_internal . IService

type IService interface {
	Login(context.Context, model.LoginInput) (model.Session, string, error)
	SignUp(context.Context, model.CustomerInput) (model.Session, string, error)
	Logout(context.Context, string) error
	Session(context.Context, string) (model.Session, error)
	Dashboard(context.Context, model.Session) ([]model.OrderRecord, error)
	RefreshDashboard(context.Context, model.Session) ([]model.OrderRecord, error)
	UpdateOrderStatus(context.Context, model.Session, string, model.OrderStatus) ([]model.OrderRecord, error)
	OrderHistory(context.Context, model.Session, string) ([]model.TransitionRecord, error)
	Restaurants(context.Context) ([]model.RestaurantInfo, error)
	Restaurant(context.Context, string) (model.RestaurantInfo, error)
	PlaceOrder(context.Context, model.Session, string, []model.OrderItem) (model.PlaceOrderOutput, error)
}

type Service struct {
	Sessions *SessionManager
	backend  IBackend
	repo     IRepository
	events   IEventPublisher
	logger   *zap.SugaredLogger
	now      func() time.Time

	mu         sync.Mutex
	dashboards map[string]dashboardEntry
}

// dashboardEntry keeps the latest session seen for a dashboard so that
// abandoned ones can be evicted once that session expires.
type dashboardEntry struct {
	dashboard *Dashboard
	session   model.Session
}

func NewService(repo IRepository, backend IBackend, events IEventPublisher, secret string, logger *zap.SugaredLogger) *Service {
	return &Service{
		Sessions:   NewSessionManager(repo, backend, secret, logger),
		backend:    backend,
		repo:       repo,
		events:     events,
		logger:     logger,
		now:        time.Now,
		dashboards: make(map[string]dashboardEntry),
	}
}

func (s *Service) Login(ctx context.Context, i model.LoginInput) (model.Session, string, error) {
	session, err := s.Sessions.Login(ctx, i)
	if err != nil {
		return model.Session{}, "", err
	}
	return s.withCookieToken(session)
}

func (s *Service) SignUp(ctx context.Context, i model.CustomerInput) (model.Session, string, error) {
	session, err := s.Sessions.SignUp(ctx, i)
	if err != nil {
		return model.Session{}, "", err
	}
	return s.withCookieToken(session)
}

func (s *Service) withCookieToken(session model.Session) (model.Session, string, error) {
	t, err := s.Sessions.IssueCookieToken(session.ID)
	if err != nil {
		return model.Session{}, "", err
	}
	return session, t, nil
}

func (s *Service) Logout(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.dashboards, sessionID)
	s.mu.Unlock()

	return s.Sessions.Logout(ctx, sessionID)
}

// Session resolves a cookie token. Expired backend tokens end the session.
func (s *Service) Session(ctx context.Context, cookieToken string) (model.Session, error) {
	sid, err := s.Sessions.ParseCookieToken(cookieToken)
	if err != nil {
		return model.Session{}, err
	}

	session, err := s.Sessions.Get(ctx, sid)
	if err != nil {
		return model.Session{}, err
	}

	if sessionExpired(session, s.now()) {
		if err = s.Logout(ctx, sid); err != nil {
			s.logger.Errorf("Session error: %s", err.Error())
		}
		return model.Session{}, ErrUnauthorized
	}
	return session, nil
}

func (s *Service) Dashboard(ctx context.Context, session model.Session) ([]model.OrderRecord, error) {
	d := s.dashboardOf(session)
	if !d.Loaded() {
		if err := d.Refresh(ctx, session); err != nil && !errors.Is(err, ErrStaleRefresh) {
			return nil, err
		}
	}
	return d.Records(), nil
}

func (s *Service) RefreshDashboard(ctx context.Context, session model.Session) ([]model.OrderRecord, error) {
	d := s.dashboardOf(session)
	if err := d.Refresh(ctx, session); err != nil && !errors.Is(err, ErrStaleRefresh) {
		return nil, err
	}
	return d.Records(), nil
}

// UpdateOrderStatus journals and announces an accepted change. Neither
// step can undo it, so their failures are only logged.
func (s *Service) UpdateOrderStatus(ctx context.Context, session model.Session, orderID string, status model.OrderStatus) ([]model.OrderRecord, error) {
	if !session.Role.Mutates() {
		return nil, fmt.Errorf("%w: %s", ErrForbiddenRole, session.Role)
	}

	d := s.dashboardOf(session)
	if !d.Loaded() {
		if err := d.Refresh(ctx, session); err != nil && !errors.Is(err, ErrStaleRefresh) {
			return nil, err
		}
	}

	t, err := d.ApplyTransition(ctx, session, orderID, status)
	if err != nil {
		return nil, err
	}

	if err = s.repo.RecordTransition(ctx, t); err != nil {
		s.logger.Errorf("UpdateOrderStatus error: journal: %s", err.Error())
	}
	if err = s.events.PublishStatusChanged(ctx, NewStatusChangedEvent(t)); err != nil {
		s.logger.Errorf("UpdateOrderStatus error: publish: %s", err.Error())
	}

	return d.Records(), nil
}

func (s *Service) OrderHistory(ctx context.Context, session model.Session, orderID string) ([]model.TransitionRecord, error) {
	if !session.Authenticated(s.now()) {
		return nil, ErrUnauthorized
	}

	h, err := s.repo.GetTransitions(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(h) == 0 {
		return nil, ErrNoRecords
	}
	return h, nil
}

func (s *Service) Restaurants(ctx context.Context) ([]model.RestaurantInfo, error) {
	r, err := s.backend.Restaurants(ctx)
	if err != nil {
		return nil, err
	}
	if len(r) == 0 {
		return nil, ErrNoRecords
	}
	return r, nil
}

func (s *Service) Restaurant(ctx context.Context, id string) (model.RestaurantInfo, error) {
	return s.backend.Restaurant(ctx, id)
}

func (s *Service) PlaceOrder(ctx context.Context, session model.Session, restaurantID string, items []model.OrderItem) (model.PlaceOrderOutput, error) {
	if !session.Authenticated(s.now()) {
		return model.PlaceOrderOutput{}, ErrUnauthorized
	}
	if session.Role != model.RoleCustomer {
		return model.PlaceOrderOutput{}, fmt.Errorf("%w: only customers order", ErrForbiddenRole)
	}

	info, err := s.backend.Restaurant(ctx, restaurantID)
	if err != nil {
		return model.PlaceOrderOutput{}, err
	}

	cart := model.NewCart(info.Menu)
	for _, item := range items {
		if err = cart.Put(item); err != nil {
			return model.PlaceOrderOutput{}, err
		}
	}
	if err = cart.Validate(); err != nil {
		return model.PlaceOrderOutput{}, err
	}

	err = s.backend.CreateOrder(ctx, session.AccessToken, restaurantID, cart.Items())
	if err != nil {
		return model.PlaceOrderOutput{}, err
	}

	if err = s.dashboardOf(session).Refresh(ctx, session); err != nil && !errors.Is(err, ErrStaleRefresh) {
		s.logger.Errorf("PlaceOrder error: refresh: %s", err.Error())
	}

	return model.PlaceOrderOutput{
		RestaurantID: restaurantID,
		Items:        cart.Items(),
		Total:        cart.Total(),
	}, nil
}

// PruneExpired evicts dashboards of expired sessions and deletes expired
// session rows. It returns the number of evicted dashboards.
func (s *Service) PruneExpired(ctx context.Context) (int, error) {
	now := s.now()

	s.mu.Lock()
	evicted := 0
	for id, e := range s.dashboards {
		if sessionExpired(e.session, now) {
			delete(s.dashboards, id)
			evicted++
		}
	}
	s.mu.Unlock()

	rows, err := s.Sessions.Prune(ctx)
	if err != nil {
		return evicted, err
	}

	if evicted > 0 || rows > 0 {
		s.logger.Infof("Pruned %d dashboards and %d sessions", evicted, rows)
	}
	return evicted, nil
}

// RunJanitor prunes expired sessions every interval until ctx is done.
func (s *Service) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.PruneExpired(ctx); err != nil {
				s.logger.Errorf("Janitor error: %s", err.Error())
			}
		}
	}
}

func (s *Service) dashboardOf(session model.Session) *Dashboard {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.dashboards[session.ID]
	if !ok || e.dashboard.Role() != session.Role {
		e.dashboard = NewDashboard(session.Role, s.backend, s.logger)
	}
	e.session = session
	s.dashboards[session.ID] = e
	return e.dashboard
}
