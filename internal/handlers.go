package internal

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/DrGermanius/shabfood/internal/model"
)

const authCookie = "token"

type Handlers struct {
	Service IService
	logger  *zap.SugaredLogger
}

func NewHandlers(Service IService, logger *zap.SugaredLogger) *Handlers {
	return &Handlers{Service: Service, logger: logger}
}

// Register mounts every route under /api.
func (h *Handlers) Register(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/statuses", h.Statuses)

	ses := api.Group("/session")
	ses.Post("/signup", h.SignUp)
	ses.Post("/login", h.Login)
	ses.Post("/logout", h.Logout)

	dash := api.Group("/dashboard")
	dash.Get("/", h.GetDashboard)
	dash.Post("/refresh", h.RefreshDashboard)
	dash.Post("/orders/:id/status", h.UpdateOrderStatus)

	api.Get("/orders/:id/history", h.OrderHistory)

	rest := api.Group("/restaurants")
	rest.Get("/", h.Restaurants)
	rest.Get("/:id", h.Restaurant)
	rest.Post("/:id/orders", h.PlaceOrder)
}

type statusOutput struct {
	Code  model.OrderStatus `json:"code"`
	Label string            `json:"label"`
	Color string            `json:"color"`
}

type statusInput struct {
	Status *model.OrderStatus `json:"status"`
}

func (h *Handlers) Statuses(c *fiber.Ctx) error {
	res := make([]statusOutput, 0, len(model.Statuses()))
	for _, s := range model.Statuses() {
		d := model.DisplayOf(s)
		res = append(res, statusOutput{Code: s, Label: d.Label, Color: d.Color})
	}
	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *Handlers) Login(c *fiber.Ctx) error {
	var i model.LoginInput

	if err := c.BodyParser(&i); err != nil {
		h.logger.Errorf("Error on login request: %s", err.Error())
		return c.SendStatus(fiber.StatusBadRequest)
	}

	s, t, err := h.Service.Login(c.Context(), i)
	if err != nil {
		h.logger.Errorf("Error on login request: %s", err.Error())
		switch {
		case errors.Is(err, model.ErrUnknownRole):
			return c.SendStatus(fiber.StatusBadRequest)
		case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrRoleMismatch):
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	setAuthCookie(c, t)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"role": s.Role})
}

func (h *Handlers) SignUp(c *fiber.Ctx) error {
	var i model.CustomerInput

	if err := c.BodyParser(&i); err != nil || i.ID == "" || i.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Error on sign up request", "data": "id and password are required"})
	}

	s, t, err := h.Service.SignUp(c.Context(), i)
	if err != nil {
		h.logger.Errorf("Error on sign up request: %s", err.Error())
		switch {
		case errors.Is(err, ErrLoginIsAlreadyTaken):
			return c.SendStatus(fiber.StatusConflict)
		case errors.Is(err, ErrSignUpNotAcceptable):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"status": "error", "message": "Error on sign up request", "data": err.Error()})
		}
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	setAuthCookie(c, t)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"role": s.Role})
}

func (h *Handlers) Logout(c *fiber.Ctx) error {
	s, err := h.Service.Session(c.Context(), c.Cookies(authCookie))
	if err == nil {
		if err = h.Service.Logout(c.Context(), s.ID); err != nil {
			h.logger.Errorf("Error on logout request: %s", err.Error())
			return c.SendStatus(fiber.StatusInternalServerError)
		}
	}

	c.ClearCookie(authCookie)
	return c.SendStatus(fiber.StatusOK)
}

func (h *Handlers) GetDashboard(c *fiber.Ctx) error {
	s, err := h.Service.Session(c.Context(), c.Cookies(authCookie))
	if err != nil {
		return h.fail(c, model.Session{}, "session", err)
	}

	records, err := h.Service.Dashboard(c.Context(), s)
	if err != nil {
		return h.fail(c, s, "dashboard", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"role": s.Role, "orders": records})
}

func (h *Handlers) RefreshDashboard(c *fiber.Ctx) error {
	s, err := h.Service.Session(c.Context(), c.Cookies(authCookie))
	if err != nil {
		return h.fail(c, model.Session{}, "session", err)
	}

	records, err := h.Service.RefreshDashboard(c.Context(), s)
	if err != nil {
		return h.fail(c, s, "refresh", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"role": s.Role, "orders": records})
}

func (h *Handlers) UpdateOrderStatus(c *fiber.Ctx) error {
	s, err := h.Service.Session(c.Context(), c.Cookies(authCookie))
	if err != nil {
		return h.fail(c, model.Session{}, "session", err)
	}

	var i statusInput
	if err = c.BodyParser(&i); err != nil || i.Status == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Error on update status request", "data": "status is required"})
	}

	records, err := h.Service.UpdateOrderStatus(c.Context(), s, c.Params("id"), *i.Status)
	if err != nil {
		return h.fail(c, s, "update status", err)
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"role": s.Role, "orders": records})
}

func (h *Handlers) OrderHistory(c *fiber.Ctx) error {
	s, err := h.Service.Session(c.Context(), c.Cookies(authCookie))
	if err != nil {
		return h.fail(c, model.Session{}, "session", err)
	}

	history, err := h.Service.OrderHistory(c.Context(), s, c.Params("id"))
	if err != nil {
		return h.fail(c, s, "order history", err)
	}

	return c.Status(fiber.StatusOK).JSON(history)
}

func (h *Handlers) Restaurants(c *fiber.Ctx) error {
	r, err := h.Service.Restaurants(c.Context())
	if err != nil {
		return h.fail(c, model.Session{}, "restaurants", err)
	}

	return c.Status(fiber.StatusOK).JSON(r)
}

func (h *Handlers) Restaurant(c *fiber.Ctx) error {
	r, err := h.Service.Restaurant(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, model.Session{}, "restaurant", err)
	}

	return c.Status(fiber.StatusOK).JSON(r)
}

func (h *Handlers) PlaceOrder(c *fiber.Ctx) error {
	s, err := h.Service.Session(c.Context(), c.Cookies(authCookie))
	if err != nil {
		return h.fail(c, model.Session{}, "session", err)
	}

	var i model.PlaceOrderInput
	if err = c.BodyParser(&i); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Error on place order request", "data": err.Error()})
	}

	out, err := h.Service.PlaceOrder(c.Context(), s, c.Params("id"), i.Items)
	if err != nil {
		return h.fail(c, s, "place order", err)
	}

	return c.Status(fiber.StatusCreated).JSON(out)
}

// fail maps service errors to responses. An auth failure reported by the
// backend ends the local session as well. Other failures keep the cookie.
func (h *Handlers) fail(c *fiber.Ctx, s model.Session, op string, err error) error {
	h.logger.Errorf("Error on %s request: %s", op, err.Error())

	switch {
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrNoSession):
		return h.unauthorized(c, s)
	case errors.Is(err, ErrNoRecords):
		return c.SendStatus(fiber.StatusNoContent)
	case errors.Is(err, ErrForbiddenRole):
		return c.SendStatus(fiber.StatusForbidden)
	case errors.Is(err, ErrOrderNotFound):
		return c.SendStatus(fiber.StatusNotFound)
	case errors.Is(err, ErrIllegalTransition):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"status": "error", "message": "Error on " + op + " request", "data": err.Error()})
	case errors.Is(err, model.ErrFoodNotInMenu), errors.Is(err, model.ErrFoodUnavailable),
		errors.Is(err, model.ErrInvalidQuantity), errors.Is(err, model.ErrEmptyCart):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"status": "error", "message": "Error on " + op + " request", "data": err.Error()})
	case errors.Is(err, ErrTooManyRequests):
		return c.SendStatus(fiber.StatusTooManyRequests)
	case errors.Is(err, ErrRejected):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"status": "error", "message": "Error on " + op + " request", "data": err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Error on " + op + " request", "data": err.Error()})
}

func (h *Handlers) unauthorized(c *fiber.Ctx, s model.Session) error {
	if s.ID != "" {
		if err := h.Service.Logout(c.Context(), s.ID); err != nil {
			h.logger.Errorf("Error on logout: %s", err.Error())
		}
	}

	c.ClearCookie(authCookie)
	return c.SendStatus(fiber.StatusUnauthorized)
}

func setAuthCookie(c *fiber.Ctx, token string) {
	cookie := &fiber.Cookie{
		Name:     authCookie,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Expires:  time.Now().Add(cookieTokenTTL),
	}

	c.Cookie(cookie)
}
