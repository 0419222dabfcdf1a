package internal_test

import (
	"context"
	"errors"
	"time"

	"github.com/golang/mock/gomock"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/DrGermanius/shabfood/internal"
	mock_internal "github.com/DrGermanius/shabfood/internal/mock"
	"github.com/DrGermanius/shabfood/internal/model"
)

var _ = Describe("ActionMenu", func() {
	var (
		ctrl *gomock.Controller
		back *mock_internal.MockIBackend
		menu *internal.ActionMenu
	)
	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())

		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		back = mock_internal.NewMockIBackend(ctrl)
		menu = internal.NewActionMenu(back, logger.Sugar())
	})
	AfterEach(func() {
		ctrl.Finish()
	})

	Context("AvailableActions", func() {
		It("restaurant at pending offers accept and cancel", func() {
			actions := internal.AvailableActions(model.RoleRestaurant, model.StatusRestaurantPending)
			Expect(actions).To(Equal([]model.Action{
				{Target: model.StatusRestaurantAccept, Label: "RESTAURANT_ACCEPT", Color: model.ColorPrimary},
				{Target: model.StatusCancel, Label: "CANCEL", Color: model.ColorError},
			}))
		})
		It("deliverer offers its table only", func() {
			Expect(targets(internal.AvailableActions(model.RoleDeliverer, model.StatusDelivering))).
				To(Equal([]model.OrderStatus{model.StatusDone, model.StatusCancel}))
			Expect(targets(internal.AvailableActions(model.RoleDeliverer, model.StatusDelivererPending))).
				To(Equal([]model.OrderStatus{model.StatusDelivering}))
			Expect(internal.AvailableActions(model.RoleDeliverer, model.StatusRestaurantPending)).To(BeEmpty())
			Expect(internal.AvailableActions(model.RoleDeliverer, model.StatusRestaurantAccept)).To(BeEmpty())
		})
		It("customer never gets actions", func() {
			for code := -3; code <= 7; code++ {
				Expect(internal.AvailableActions(model.RoleCustomer, model.OrderStatus(code))).To(BeEmpty())
			}
		})
		It("targets are exactly the legal next statuses", func() {
			for _, role := range []model.Role{model.RoleCustomer, model.RoleRestaurant, model.RoleDeliverer} {
				for code := -2; code <= 6; code++ {
					current := model.OrderStatus(code)
					Expect(targets(internal.AvailableActions(role, current))).
						To(Equal(model.LegalNextStatuses(role, current)), "%s at %d", role, code)
				}
			}
		})
		It("labels come from the display mapping", func() {
			for _, a := range internal.AvailableActions(model.RoleRestaurant, model.StatusRestaurantAccept) {
				Expect(a.Label).To(Equal(model.DisplayOf(a.Target).Label))
				Expect(a.Color).To(Equal(model.DisplayOf(a.Target).Color))
			}
		})
	})

	Context("ApplyTransition", func() {
		It("ApplyTransition without error", func() {
			s := session(model.RoleRestaurant)
			back.EXPECT().UpdateOrderStatus(gomock.Any(), s.AccessToken, model.RoleRestaurant, "o1", model.StatusRestaurantAccept).Return(nil)

			err := menu.ApplyTransition(context.Background(), s, "o1", model.StatusRestaurantAccept)
			Expect(err).ShouldNot(HaveOccurred())
		})
		It("ApplyTransition with backend error", func() {
			s := session(model.RoleDeliverer)
			e := errors.New("some error")
			back.EXPECT().UpdateOrderStatus(gomock.Any(), s.AccessToken, model.RoleDeliverer, "o1", model.StatusDelivering).Return(e)

			err := menu.ApplyTransition(context.Background(), s, "o1", model.StatusDelivering)
			Expect(err).Should(Equal(e))
		})
		It("ApplyTransition with error customer", func() {
			err := menu.ApplyTransition(context.Background(), session(model.RoleCustomer), "o1", model.StatusCancel)
			Expect(err).Should(MatchError(internal.ErrForbiddenRole))
		})
		It("ApplyTransition with error no token", func() {
			s := session(model.RoleRestaurant)
			s.AccessToken = ""

			err := menu.ApplyTransition(context.Background(), s, "o1", model.StatusCancel)
			Expect(err).Should(MatchError(internal.ErrUnauthorized))
		})
		It("ApplyTransition with error expired token", func() {
			s := session(model.RoleRestaurant)
			s.ExpiresAt = time.Now().Add(-time.Minute)

			err := menu.ApplyTransition(context.Background(), s, "o1", model.StatusCancel)
			Expect(err).Should(MatchError(internal.ErrUnauthorized))
		})
		It("ApplyTransition with error unknown target", func() {
			err := menu.ApplyTransition(context.Background(), session(model.RoleRestaurant), "o1", model.OrderStatus(8))
			Expect(err).Should(MatchError(internal.ErrIllegalTransition))
		})
	})
})
