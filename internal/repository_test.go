package internal_test

import (
	"context"
	"errors"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/DrGermanius/shabfood/internal"
	"github.com/DrGermanius/shabfood/internal/model"
)

var _ = Describe("Repository", func() {
	var (
		repo internal.IRepository
		mock sqlmock.Sqlmock
	)
	BeforeEach(func() {
		db, m, err := sqlmock.New()
		Expect(err).ShouldNot(HaveOccurred())

		mock = m
		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		repo = internal.Repository{
			Conn:   db,
			Logger: logger.Sugar(),
		}
	})
	AfterEach(func() {
		err := mock.ExpectationsWereMet()
		Expect(err).ShouldNot(HaveOccurred())
	})

	Context("sessions", func() {
		It("SaveSession without error", func() {
			s := model.Session{
				ID:          "sid",
				Role:        model.RoleDeliverer,
				UserID:      "+98912",
				AccessToken: "token",
				ExpiresAt:   time.Now().Add(time.Hour),
				CreatedAt:   time.Now(),
			}

			mock.ExpectExec("INSERT INTO sessions (.+) VALUES \\(\\$1, \\$2, \\$3, \\$4, \\$5, \\$6\\)").
				WithArgs(s.ID, "deliverer", s.UserID, s.AccessToken, sqlmock.AnyArg(), sqlmock.AnyArg()).
				WillReturnResult(sqlmock.NewResult(1, 1))

			err := repo.SaveSession(context.Background(), s)
			Expect(err).ShouldNot(HaveOccurred())
		})
		It("SaveSession with error", func() {
			mock.ExpectExec("INSERT INTO sessions").WillReturnError(errors.New("some error"))

			err := repo.SaveSession(context.Background(), model.Session{ID: "sid", Role: model.RoleCustomer})
			Expect(err).Should(HaveOccurred())
		})
		It("GetSession without error", func() {
			created := time.Now()
			expires := created.Add(time.Hour)

			expectedRows := sqlmock.NewRows([]string{
				"id",
				"role",
				"user_id",
				"access_token",
				"expires_at",
				"created_at",
			}).AddRow("sid", "restaurant", "shab@food.ir", "token", expires, created)

			mock.ExpectQuery("SELECT (.+) FROM sessions WHERE id = \\$1").
				WithArgs("sid").WillReturnRows(expectedRows).RowsWillBeClosed()

			s, err := repo.GetSession(context.Background(), "sid")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(s.Role).To(Equal(model.RoleRestaurant))
			Expect(s.UserID).To(Equal("shab@food.ir"))
			Expect(s.ExpiresAt.Equal(expires)).To(BeTrue())
		})
		It("GetSession without expiry", func() {
			expectedRows := sqlmock.NewRows([]string{
				"id",
				"role",
				"user_id",
				"access_token",
				"expires_at",
				"created_at",
			}).AddRow("sid", "customer", "a@b.c", "token", nil, time.Now())

			mock.ExpectQuery("SELECT (.+) FROM sessions WHERE id = \\$1").
				WithArgs("sid").WillReturnRows(expectedRows)

			s, err := repo.GetSession(context.Background(), "sid")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(s.ExpiresAt.IsZero()).To(BeTrue())
		})
		It("GetSession with error no session", func() {
			mock.ExpectQuery("SELECT (.+) FROM sessions WHERE id = \\$1").
				WithArgs("sid").WillReturnRows(sqlmock.NewRows([]string{"id"}))

			_, err := repo.GetSession(context.Background(), "sid")
			Expect(err).Should(MatchError(internal.ErrNoSession))
		})
		It("DeleteExpiredSessions without error", func() {
			now := time.Now()
			createdBefore := now.Add(-24 * time.Hour)

			mock.ExpectExec("DELETE FROM sessions WHERE \\(expires_at IS NOT NULL AND expires_at <= \\$1\\) OR created_at < \\$2").
				WithArgs(now, createdBefore).WillReturnResult(sqlmock.NewResult(0, 2))

			n, err := repo.DeleteExpiredSessions(context.Background(), now, createdBefore)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(n).To(Equal(int64(2)))
		})
		It("DeleteExpiredSessions with error", func() {
			mock.ExpectExec("DELETE FROM sessions WHERE").WillReturnError(errors.New("some error"))

			_, err := repo.DeleteExpiredSessions(context.Background(), time.Now(), time.Now())
			Expect(err).Should(HaveOccurred())
		})
		It("DeleteSession without error", func() {
			mock.ExpectExec("DELETE FROM sessions WHERE id = \\$1").
				WithArgs("sid").WillReturnResult(sqlmock.NewResult(0, 1))

			err := repo.DeleteSession(context.Background(), "sid")
			Expect(err).ShouldNot(HaveOccurred())
		})
	})

	Context("status transitions", func() {
		It("RecordTransition without error", func() {
			t := model.TransitionRecord{
				OrderID:   "o1",
				Role:      model.RoleRestaurant,
				ActorID:   "shab@food.ir",
				From:      model.StatusRestaurantPending,
				To:        model.StatusCancel,
				AppliedAt: time.Now(),
			}

			mock.ExpectExec("INSERT INTO status_transitions (.+) VALUES").
				WithArgs("o1", "restaurant", "shab@food.ir", 0, -1, sqlmock.AnyArg()).
				WillReturnResult(sqlmock.NewResult(1, 1))

			err := repo.RecordTransition(context.Background(), t)
			Expect(err).ShouldNot(HaveOccurred())
		})
		It("GetTransitions without error", func() {
			applied := time.Now()

			expectedRows := sqlmock.NewRows([]string{
				"order_id",
				"role",
				"actor_id",
				"from_status",
				"to_status",
				"applied_at",
			}).
				AddRow("o1", "restaurant", "shab@food.ir", 0, 1, applied).
				AddRow("o1", "deliverer", "+98912", 2, 3, applied.Add(time.Minute))

			mock.ExpectQuery("SELECT (.+) FROM status_transitions WHERE order_id = \\$1 ORDER BY applied_at ASC").
				WithArgs("o1").WillReturnRows(expectedRows).RowsWillBeClosed()

			h, err := repo.GetTransitions(context.Background(), "o1")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(h).To(HaveLen(2))
			Expect(h[0].To).To(Equal(model.StatusRestaurantAccept))
			Expect(h[1].Role).To(Equal(model.RoleDeliverer))
			Expect(h[1].From).To(Equal(model.StatusDelivererPending))
		})
		It("GetTransitions with error", func() {
			mock.ExpectQuery("SELECT (.+) FROM status_transitions WHERE order_id = \\$1").
				WithArgs("o1").WillReturnError(errors.New("some error"))

			_, err := repo.GetTransitions(context.Background(), "o1")
			Expect(err).Should(HaveOccurred())
		})
	})
})
