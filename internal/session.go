package internal

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/DrGermanius/shabfood/internal/model"
)

const cookieTokenTTL = 24 * time.Hour

// SessionManager is the only owner of session persistence.
type SessionManager struct {
	repo    IRepository
	backend IBackend
	logger  *zap.SugaredLogger
	secret  []byte
	now     func() time.Time
}

func NewSessionManager(repo IRepository, backend IBackend, secret string, logger *zap.SugaredLogger) *SessionManager {
	return &SessionManager{
		repo:    repo,
		backend: backend,
		logger:  logger,
		secret:  []byte(secret),
		now:     time.Now,
	}
}

func (m SessionManager) Login(ctx context.Context, i model.LoginInput) (model.Session, error) {
	role, err := model.ParseRole(i.Role)
	if err != nil {
		return model.Session{}, err
	}

	tr, err := m.backend.SignIn(ctx, role, i.ID, i.Password)
	if err != nil {
		return model.Session{}, err
	}

	return m.open(ctx, role, i.ID, tr)
}

// SignUp registers a customer and opens a session with the token the backend returns.
func (m SessionManager) SignUp(ctx context.Context, i model.CustomerInput) (model.Session, error) {
	tr, err := m.backend.SignUp(ctx, i)
	if err != nil {
		return model.Session{}, err
	}

	return m.open(ctx, model.RoleCustomer, i.ID, tr)
}

func (m SessionManager) open(ctx context.Context, role model.Role, userID string, tr model.TokenResponse) (model.Session, error) {
	if tr.ObjectType != "" {
		objectRole, err := model.ParseRole(tr.ObjectType)
		if err != nil || objectRole != role {
			return model.Session{}, fmt.Errorf("%w: %s", ErrRoleMismatch, tr.ObjectType)
		}
	}

	claims, err := readBackendClaims(tr.AccessToken)
	if err != nil {
		m.logger.Errorf("Login error: %s", err.Error())
		return model.Session{}, ErrInvalidCredentials
	}
	if claims.role != "" && claims.role != role {
		return model.Session{}, fmt.Errorf("%w: %s", ErrRoleMismatch, claims.role)
	}

	s := model.Session{
		ID:          uuid.NewString(),
		Role:        role,
		UserID:      userID,
		AccessToken: tr.AccessToken,
		ExpiresAt:   claims.expiresAt,
		CreatedAt:   m.now(),
	}
	if claims.userID != "" {
		s.UserID = claims.userID
	}

	if err = m.repo.SaveSession(ctx, s); err != nil {
		return model.Session{}, err
	}
	return s, nil
}

func (m SessionManager) Get(ctx context.Context, id string) (model.Session, error) {
	return m.repo.GetSession(ctx, id)
}

func (m SessionManager) Logout(ctx context.Context, id string) error {
	return m.repo.DeleteSession(ctx, id)
}

// Prune deletes the stored sessions no cookie can reach anymore.
func (m SessionManager) Prune(ctx context.Context) (int64, error) {
	now := m.now()
	return m.repo.DeleteExpiredSessions(ctx, now, now.Add(-cookieTokenTTL))
}

// sessionExpired is true once the backend token or the cookie token has expired.
func sessionExpired(s model.Session, now time.Time) bool {
	if !s.Authenticated(now) {
		return true
	}
	return !s.CreatedAt.IsZero() && !now.Before(s.CreatedAt.Add(cookieTokenTTL))
}

func (m SessionManager) IssueCookieToken(sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"sid": sessionID,
		"exp": m.now().Add(cookieTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m SessionManager) ParseCookieToken(tokenString string) (string, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNoSession, err.Error())
	}

	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", ErrNoSession
	}
	return sid, nil
}

type backendClaims struct {
	userID    string
	role      model.Role
	expiresAt time.Time
}

// readBackendClaims decodes the backend token without verifying it: the
// signing secret belongs to the backend, which checks it on every call.
func readBackendClaims(token string) (backendClaims, error) {
	var res backendClaims

	claims := jwt.MapClaims{}
	_, _, err := new(jwt.Parser).ParseUnverified(token, claims)
	if err != nil {
		return res, err
	}

	if id, ok := claims["id"].(string); ok {
		res.userID = id
	}
	if t, ok := claims["user_type"].(string); ok {
		if res.role, err = model.ParseRole(t); err != nil {
			return res, err
		}
	}
	if exp, ok := claims["expires"].(float64); ok {
		sec := int64(exp)
		res.expiresAt = time.Unix(sec, int64((exp-float64(sec))*float64(time.Second)))
	}

	return res, nil
}
