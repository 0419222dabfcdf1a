package model_test

import (
	"math"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/DrGermanius/shabfood/internal/model"
)

var _ = Describe("Status", func() {
	DescribeTable("DisplayOf known codes",
		func(s model.OrderStatus, label, color string) {
			Expect(model.DisplayOf(s)).To(Equal(model.Display{Label: label, Color: color}))
			Expect(s.String()).To(Equal(label))
		},
		Entry("restaurant pending", model.StatusRestaurantPending, "RESTAURANT_PENDING", model.ColorWarning),
		Entry("restaurant accept", model.StatusRestaurantAccept, "RESTAURANT_ACCEPT", model.ColorPrimary),
		Entry("deliverer pending", model.StatusDelivererPending, "DELIVERER_PENDING", model.ColorSecondary),
		Entry("delivering", model.StatusDelivering, "DELIVERING", model.ColorPrimary),
		Entry("done", model.StatusDone, "DONE", model.ColorSuccess),
		Entry("cancel", model.StatusCancel, "CANCEL", model.ColorError),
	)

	It("DisplayOf falls back for codes outside the enumeration", func() {
		for _, code := range []int{math.MinInt32, -100, -2, 5, 6, 42, math.MaxInt32} {
			d := model.DisplayOf(model.OrderStatus(code))
			Expect(d.Label).To(Equal(model.UnknownStatusLabel))
			Expect(d.Color).To(Equal(model.ColorDefault))
		}
	})

	It("DisplayOf returns the same value on repeated calls", func() {
		for code := -3; code <= 6; code++ {
			s := model.OrderStatus(code)
			first := model.DisplayOf(s)
			for i := 0; i < 3; i++ {
				Expect(model.DisplayOf(s)).To(Equal(first))
			}
		}
	})

	It("Statuses covers the six codes once", func() {
		statuses := model.Statuses()
		Expect(statuses).To(HaveLen(6))
		Expect(statuses).To(ConsistOf(
			model.StatusCancel,
			model.StatusRestaurantPending,
			model.StatusRestaurantAccept,
			model.StatusDelivererPending,
			model.StatusDelivering,
			model.StatusDone,
		))
		for _, s := range statuses {
			Expect(s.Valid()).To(BeTrue())
			Expect(model.DisplayOf(s).Label).NotTo(Equal(model.UnknownStatusLabel))
		}
	})

	It("only done and cancel are terminal", func() {
		for _, s := range model.Statuses() {
			Expect(s.Terminal()).To(Equal(s == model.StatusDone || s == model.StatusCancel))
		}
	})

	It("Valid rejects codes outside the enumeration", func() {
		Expect(model.OrderStatus(-2).Valid()).To(BeFalse())
		Expect(model.OrderStatus(5).Valid()).To(BeFalse())
	})
})

var _ = Describe("Role", func() {
	DescribeTable("ParseRole",
		func(in string, expected model.Role) {
			r, err := model.ParseRole(in)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(r).To(Equal(expected))
		},
		Entry("customer", "customer", model.RoleCustomer),
		Entry("backend object type", "Restaurant", model.RoleRestaurant),
		Entry("padded", " Deliverer ", model.RoleDeliverer),
	)

	It("ParseRole with error", func() {
		_, err := model.ParseRole("admin")
		Expect(err).Should(HaveOccurred())
		Expect(err).Should(MatchError(model.ErrUnknownRole))
	})

	It("only restaurant and deliverer mutate", func() {
		Expect(model.RoleCustomer.Mutates()).To(BeFalse())
		Expect(model.RoleRestaurant.Mutates()).To(BeTrue())
		Expect(model.RoleDeliverer.Mutates()).To(BeTrue())
		Expect(model.Role("").Mutates()).To(BeFalse())
	})
})
