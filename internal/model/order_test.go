package model_test

import (
	"encoding/json"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/DrGermanius/shabfood/internal/model"
)

var _ = Describe("RawOrder", func() {
	It("decodes the backend shape", func() {
		body := `{"id":"o1","status":2,"timestamp":"2022-01-01 10:00:00",
			"customer":{"id":"+989120000000","address":"Tehran"},
			"restaurant":{"id":"r@shab.ir","name":"Shab","address":"Valiasr"}}`

		var o model.RawOrder
		Expect(json.Unmarshal([]byte(body), &o)).ShouldNot(HaveOccurred())
		Expect(o.Validate()).ShouldNot(HaveOccurred())
		Expect(*o.Status).To(Equal(model.StatusDelivererPending))
		Expect(o.Customer.Address).To(Equal("Tehran"))
		Expect(o.Restaurant.Name).To(Equal("Shab"))
	})

	It("Validate with error missing id", func() {
		var o model.RawOrder
		Expect(json.Unmarshal([]byte(`{"status":1}`), &o)).ShouldNot(HaveOccurred())
		Expect(o.Validate()).Should(MatchError(model.ErrMissingOrderID))
	})

	It("Validate with error missing status", func() {
		var o model.RawOrder
		Expect(json.Unmarshal([]byte(`{"id":"o1"}`), &o)).ShouldNot(HaveOccurred())
		Expect(o.Validate()).Should(MatchError(model.ErrMissingStatus))
	})

	It("keeps unknown status codes valid", func() {
		var o model.RawOrder
		Expect(json.Unmarshal([]byte(`{"id":"o1","status":17}`), &o)).ShouldNot(HaveOccurred())
		Expect(o.Validate()).ShouldNot(HaveOccurred())
	})
})

var _ = Describe("Session", func() {
	It("Authenticated needs a token", func() {
		Expect(model.Session{}.Authenticated(time.Now())).To(BeFalse())
		Expect(model.Session{AccessToken: "t"}.Authenticated(time.Now())).To(BeTrue())
	})

	It("Authenticated is false after expiry", func() {
		now := time.Now()
		s := model.Session{AccessToken: "t", ExpiresAt: now.Add(time.Minute)}
		Expect(s.Authenticated(now)).To(BeTrue())
		Expect(s.Authenticated(now.Add(2 * time.Minute))).To(BeFalse())
	})
})
