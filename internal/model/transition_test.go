package model_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/DrGermanius/shabfood/internal/model"
)

var (
	roles    = []model.Role{model.RoleCustomer, model.RoleRestaurant, model.RoleDeliverer}
	anyCodes = func() []model.OrderStatus {
		var res []model.OrderStatus
		for code := -3; code <= 7; code++ {
			res = append(res, model.OrderStatus(code))
		}
		return res
	}()
)

var _ = Describe("Transitions", func() {
	DescribeTable("LegalNextStatuses",
		func(role model.Role, current model.OrderStatus, expected []model.OrderStatus) {
			Expect(model.LegalNextStatuses(role, current)).To(Equal(expected))
		},
		Entry("restaurant at pending", model.RoleRestaurant, model.StatusRestaurantPending,
			[]model.OrderStatus{model.StatusRestaurantAccept, model.StatusCancel}),
		Entry("restaurant at accept", model.RoleRestaurant, model.StatusRestaurantAccept,
			[]model.OrderStatus{model.StatusDelivererPending, model.StatusDone, model.StatusCancel}),
		Entry("restaurant at deliverer pending", model.RoleRestaurant, model.StatusDelivererPending,
			[]model.OrderStatus{model.StatusCancel}),
		Entry("restaurant at delivering", model.RoleRestaurant, model.StatusDelivering, []model.OrderStatus{}),
		Entry("deliverer at deliverer pending", model.RoleDeliverer, model.StatusDelivererPending,
			[]model.OrderStatus{model.StatusDelivering}),
		Entry("deliverer at delivering", model.RoleDeliverer, model.StatusDelivering,
			[]model.OrderStatus{model.StatusDone, model.StatusCancel}),
		Entry("deliverer at restaurant pending", model.RoleDeliverer, model.StatusRestaurantPending, []model.OrderStatus{}),
		Entry("deliverer at restaurant accept", model.RoleDeliverer, model.StatusRestaurantAccept, []model.OrderStatus{}),
	)

	It("customer never has a legal transition", func() {
		for _, s := range anyCodes {
			Expect(model.LegalNextStatuses(model.RoleCustomer, s)).To(BeEmpty())
		}
	})

	It("terminal statuses have no transition for any role", func() {
		for _, r := range roles {
			Expect(model.LegalNextStatuses(r, model.StatusDone)).To(BeEmpty())
			Expect(model.LegalNextStatuses(r, model.StatusCancel)).To(BeEmpty())
		}
	})

	It("unknown codes have no transition for any role", func() {
		for _, r := range roles {
			Expect(model.LegalNextStatuses(r, model.OrderStatus(9))).To(BeEmpty())
		}
	})

	It("never offers the current status or an unknown code", func() {
		for _, r := range roles {
			for _, s := range anyCodes {
				for _, target := range model.LegalNextStatuses(r, s) {
					Expect(target).NotTo(Equal(s))
					Expect(target.Valid()).To(BeTrue())
					Expect(model.CanTransition(r, s, target)).To(BeTrue())
				}
			}
		}
	})

	It("returns the same answer on repeated calls", func() {
		for _, r := range roles {
			for _, s := range anyCodes {
				Expect(model.LegalNextStatuses(r, s)).To(Equal(model.LegalNextStatuses(r, s)))
			}
		}
	})

	It("returns a copy of the table row", func() {
		next := model.LegalNextStatuses(model.RoleRestaurant, model.StatusRestaurantPending)
		next[0] = model.StatusDone

		Expect(model.LegalNextStatuses(model.RoleRestaurant, model.StatusRestaurantPending)).
			To(Equal([]model.OrderStatus{model.StatusRestaurantAccept, model.StatusCancel}))
	})

	It("CanTransition rejects edges outside the table", func() {
		Expect(model.CanTransition(model.RoleRestaurant, model.StatusRestaurantPending, model.StatusDone)).To(BeFalse())
		Expect(model.CanTransition(model.RoleDeliverer, model.StatusDelivererPending, model.StatusDelivererPending)).To(BeFalse())
		Expect(model.CanTransition(model.RoleCustomer, model.StatusRestaurantPending, model.StatusCancel)).To(BeFalse())
	})

	DescribeTable("NewTransitionTable with error",
		func(edges model.TransitionTable) {
			_, err := model.NewTransitionTable(edges)
			Expect(err).Should(HaveOccurred())
			Expect(err).Should(MatchError(model.ErrInvalidTransitionTable))
		},
		Entry("self-loop", model.TransitionTable{
			model.StatusDelivererPending: {model.StatusDelivererPending},
		}),
		Entry("edge out of done", model.TransitionTable{
			model.StatusDone: {model.StatusRestaurantPending},
		}),
		Entry("edge out of cancel", model.TransitionTable{
			model.StatusCancel: {model.StatusRestaurantAccept},
		}),
		Entry("unknown target", model.TransitionTable{
			model.StatusRestaurantPending: {model.OrderStatus(7)},
		}),
		Entry("unknown source", model.TransitionTable{
			model.OrderStatus(-5): {model.StatusCancel},
		}),
		Entry("duplicate edge", model.TransitionTable{
			model.StatusDelivering: {model.StatusDone, model.StatusDone},
		}),
	)

	It("NewTransitionTable without error", func() {
		t, err := model.NewTransitionTable(model.TransitionTable{
			model.StatusRestaurantPending: {model.StatusCancel},
			model.StatusDone:              {},
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(t.Next(model.StatusRestaurantPending)).To(Equal([]model.OrderStatus{model.StatusCancel}))
		Expect(t.Next(model.StatusDone)).To(BeEmpty())
	})

	It("MustTransitionTable panics on a broken table", func() {
		Expect(func() {
			model.MustTransitionTable(model.TransitionTable{model.StatusDone: {model.StatusCancel}})
		}).To(Panic())
	})
})
