package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/DrGermanius/shabfood/internal/model"
)

//go:generate mockgen -destination=mock/backend.go -package=mock_internal . IBackend

type IBackend interface {
	SignIn(ctx context.Context, role model.Role, userID, password string) (model.TokenResponse, error)
	SignUp(ctx context.Context, i model.CustomerInput) (model.TokenResponse, error)
	CustomerOrders(ctx context.Context, token string) ([]model.RawOrder, error)
	RestaurantOrders(ctx context.Context, token string) ([]model.RawOrder, error)
	DelivererCurrentOrder(ctx context.Context, token string) (*model.RawOrder, error)
	DelivererRequestOrder(ctx context.Context, token string) (*model.RawOrder, error)
	UpdateOrderStatus(ctx context.Context, token string, role model.Role, orderID string, status model.OrderStatus) error
	Restaurants(ctx context.Context) ([]model.RestaurantInfo, error)
	Restaurant(ctx context.Context, id string) (model.RestaurantInfo, error)
	CreateOrder(ctx context.Context, token, restaurantID string, items []model.OrderItem) error
}

// Backend talks to the shabfood API.
type Backend struct {
	client *http.Client
	logger *zap.SugaredLogger
	url    string
}

func NewBackend(url string, logger *zap.SugaredLogger) *Backend {
	return &Backend{
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
		url:    url,
	}
}

func (b Backend) SignIn(ctx context.Context, role model.Role, userID, password string) (model.TokenResponse, error) {
	q := url.Values{}
	q.Set(role.String()+"_id", userID)
	q.Set("password", password)

	var res model.TokenResponse
	body, err := b.makeRequest(ctx, http.MethodPost, "/"+role.String()+"/signin", q, "", nil)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) || rejectedWith(err, http.StatusNotFound, http.StatusNotAcceptable) {
			return res, ErrInvalidCredentials
		}
		return res, err
	}

	if err = json.Unmarshal(body, &res); err != nil {
		return res, err
	}
	if res.AccessToken == "" {
		return res, ErrInvalidCredentials
	}

	return res, nil
}

// SignUp registers a customer. The backend answers with a token right away.
func (b Backend) SignUp(ctx context.Context, i model.CustomerInput) (model.TokenResponse, error) {
	var res model.TokenResponse

	payload, err := json.Marshal(i)
	if err != nil {
		return res, err
	}

	body, err := b.makeRequest(ctx, http.MethodPut, "/customer/signup", nil, "", payload)
	if err != nil {
		switch {
		case rejectedWith(err, http.StatusConflict):
			return res, ErrLoginIsAlreadyTaken
		case rejectedWith(err, http.StatusNotAcceptable, http.StatusUnprocessableEntity):
			return res, ErrSignUpNotAcceptable
		}
		return res, err
	}

	if err = json.Unmarshal(body, &res); err != nil {
		return res, err
	}
	if res.AccessToken == "" {
		return res, fmt.Errorf("%w: sign up returned no token", ErrRejected)
	}

	return res, nil
}

func (b Backend) CustomerOrders(ctx context.Context, token string) ([]model.RawOrder, error) {
	return b.getOrders(ctx, "/customer/order/currents", token)
}

func (b Backend) RestaurantOrders(ctx context.Context, token string) ([]model.RawOrder, error) {
	return b.getOrders(ctx, "/restaurant/order/currents", token)
}

func (b Backend) DelivererCurrentOrder(ctx context.Context, token string) (*model.RawOrder, error) {
	return b.getOrder(ctx, "/deliverer/order/current", token)
}

func (b Backend) DelivererRequestOrder(ctx context.Context, token string) (*model.RawOrder, error) {
	return b.getOrder(ctx, "/deliverer/order/request", token)
}

func (b Backend) UpdateOrderStatus(ctx context.Context, token string, role model.Role, orderID string, status model.OrderStatus) error {
	q := url.Values{}
	q.Set("order_id", orderID)
	q.Set("new_status", fmt.Sprint(int(status)))

	_, err := b.makeRequest(ctx, http.MethodPost, "/"+role.String()+"/order/update", q, token, nil)
	return err
}

func (b Backend) Restaurants(ctx context.Context) ([]model.RestaurantInfo, error) {
	body, err := b.makeRequest(ctx, http.MethodGet, "/restaurant/all", nil, "", nil)
	if err != nil {
		return nil, err
	}

	var res []model.RestaurantInfo
	if err = json.Unmarshal(body, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (b Backend) Restaurant(ctx context.Context, id string) (model.RestaurantInfo, error) {
	var res model.RestaurantInfo
	body, err := b.makeRequest(ctx, http.MethodGet, "/restaurant/"+url.PathEscape(id), nil, "", nil)
	if err != nil {
		return res, err
	}

	err = json.Unmarshal(body, &res)
	return res, err
}

func (b Backend) CreateOrder(ctx context.Context, token, restaurantID string, items []model.OrderItem) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}

	q := url.Values{}
	q.Set("restaurant_id", restaurantID)

	_, err = b.makeRequest(ctx, http.MethodPut, "/customer/order/create", q, token, payload)
	return err
}

func (b Backend) getOrders(ctx context.Context, path, token string) ([]model.RawOrder, error) {
	body, err := b.makeRequest(ctx, http.MethodGet, path, nil, token, nil)
	if err != nil {
		return nil, err
	}

	var res []model.RawOrder
	if err = json.Unmarshal(body, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// getOrder returns nil without error when the backend has no such order.
func (b Backend) getOrder(ctx context.Context, path, token string) (*model.RawOrder, error) {
	body, err := b.makeRequest(ctx, http.MethodGet, path, nil, token, nil)
	if err != nil {
		if rejectedWith(err, http.StatusNotAcceptable, http.StatusNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var res model.RawOrder
	if err = json.Unmarshal(body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (b Backend) makeRequest(ctx context.Context, method, path string, query url.Values, token string, payload []byte) ([]byte, error) {
	u := b.url + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := b.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var buf bytes.Buffer
	_, err = io.Copy(&buf, res.Body)
	if err != nil {
		return nil, err
	}

	switch {
	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		return nil, ErrUnauthorized
	case res.StatusCode == http.StatusTooManyRequests:
		return nil, ErrTooManyRequests
	case res.StatusCode < 200 || res.StatusCode > 299:
		b.logger.Debugf("%s %s answered %d: %s", method, path, res.StatusCode, buf.String())
		return nil, &RejectedError{StatusCode: res.StatusCode}
	}

	return buf.Bytes(), nil
}

// RejectedError carries the backend status code of a non-2xx answer.
type RejectedError struct {
	StatusCode int
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s: status %d", ErrRejected.Error(), e.StatusCode)
}

func (e *RejectedError) Unwrap() error {
	return ErrRejected
}

func rejectedWith(err error, codes ...int) bool {
	var re *RejectedError
	if !errors.As(err, &re) {
		return false
	}
	for _, c := range codes {
		if re.StatusCode == c {
			return true
		}
	}
	return false
}
