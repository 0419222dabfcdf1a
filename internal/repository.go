package internal

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"time"

	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/DrGermanius/shabfood/internal/model"
)

const (
	sessionFields    = "id, role, user_id, access_token, expires_at, created_at"
	transitionFields = "order_id, role, actor_id, from_status, to_status, applied_at"
)

//go:embed migrations/*.sql
var migrations embed.FS

//go:generate mockgen -destination=mock/repository.go -package=mock_internal . IRepository

type IRepository interface {
	SaveSession(context.Context, model.Session) error
	GetSession(context.Context, string) (model.Session, error)
	DeleteSession(context.Context, string) error
	DeleteExpiredSessions(ctx context.Context, now, createdBefore time.Time) (int64, error)
	RecordTransition(context.Context, model.TransitionRecord) error
	GetTransitions(context.Context, string) ([]model.TransitionRecord, error)
}

type Repository struct {
	Conn   *sql.DB
	Logger *zap.SugaredLogger
}

func NewRepository(connString string, logger *zap.SugaredLogger) (*Repository, error) {
	conn, err := sql.Open("pgx", connString)
	if err != nil {
		return nil, err
	}
	if err = conn.Ping(); err != nil {
		return nil, err
	}

	if err = migrate(conn); err != nil {
		return nil, err
	}

	return &Repository{Conn: conn, Logger: logger}, nil
}

func migrate(db *sql.DB) error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, "migrations")
}

func (r Repository) SaveSession(ctx context.Context, s model.Session) error {
	expires := sql.NullTime{Time: s.ExpiresAt, Valid: !s.ExpiresAt.IsZero()}

	_, err := r.Conn.ExecContext(ctx, `INSERT INTO sessions (`+sessionFields+`) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET access_token = $4, expires_at = $5`,
		s.ID, s.Role.String(), s.UserID, s.AccessToken, expires, s.CreatedAt)
	return err
}

func (r Repository) GetSession(ctx context.Context, id string) (model.Session, error) {
	var (
		s       model.Session
		role    string
		expires sql.NullTime
	)

	row := r.Conn.QueryRowContext(ctx, "SELECT "+sessionFields+" FROM sessions WHERE id = $1", id)
	err := row.Scan(&s.ID, &role, &s.UserID, &s.AccessToken, &expires, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Session{}, ErrNoSession
		}
		return model.Session{}, err
	}

	s.Role, err = model.ParseRole(role)
	if err != nil {
		return model.Session{}, err
	}
	if expires.Valid {
		s.ExpiresAt = expires.Time
	}

	return s, nil
}

func (r Repository) DeleteSession(ctx context.Context, id string) error {
	_, err := r.Conn.ExecContext(ctx, "DELETE FROM sessions WHERE id = $1", id)
	return err
}

// DeleteExpiredSessions removes sessions whose backend token expired by now
// or that were created before createdBefore.
func (r Repository) DeleteExpiredSessions(ctx context.Context, now, createdBefore time.Time) (int64, error) {
	res, err := r.Conn.ExecContext(ctx, "DELETE FROM sessions WHERE (expires_at IS NOT NULL AND expires_at <= $1) OR created_at < $2",
		now, createdBefore)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r Repository) RecordTransition(ctx context.Context, t model.TransitionRecord) error {
	_, err := r.Conn.ExecContext(ctx, "INSERT INTO status_transitions ("+transitionFields+") VALUES ($1, $2, $3, $4, $5, $6)",
		t.OrderID, t.Role.String(), t.ActorID, int(t.From), int(t.To), t.AppliedAt)
	return err
}

func (r Repository) GetTransitions(ctx context.Context, orderID string) ([]model.TransitionRecord, error) {
	rows, err := r.Conn.QueryContext(ctx, "SELECT "+transitionFields+" FROM status_transitions WHERE order_id = $1 ORDER BY applied_at ASC", orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []model.TransitionRecord
	for rows.Next() {
		var (
			t        model.TransitionRecord
			role     string
			from, to int
		)
		err = rows.Scan(&t.OrderID, &role, &t.ActorID, &from, &to, &t.AppliedAt)
		if err != nil {
			return nil, err
		}

		t.Role = model.Role(role)
		t.From, t.To = model.OrderStatus(from), model.OrderStatus(to)
		res = append(res, t)
	}

	return res, rows.Err()
}
