package handler // params.go defines the request field schemas for order operations

import (
	"github.com/labstack/echo/v4"

	"github.com/ticketlane/ticket-orders/internal/model"
	"github.com/ticketlane/ticket-orders/internal/store"
)

// requiredOrderFields is the creation schema: every listed field must be a
// non-empty string in the submitted body. Validation reports the first
// missing field, so the slice order is part of the contract.
var requiredOrderFields = []struct {
	name string
	get  func(*model.Order) string
}{
	{"firstName", func(o *model.Order) string { return o.FirstName }},
	{"lastName", func(o *model.Order) string { return o.LastName }},
	{"shippingAddress", func(o *model.Order) string { return o.ShippingAddress }},
	{"phoneNumber", func(o *model.Order) string { return o.PhoneNumber }},
	{"zipcode", func(o *model.Order) string { return o.Zipcode }},
	{"paymentMethod", func(o *model.Order) string { return o.PaymentMethod }},
	{"cardNumber", func(o *model.Order) string { return o.CardNumber }},
	{"cvv", func(o *model.Order) string { return o.CVV }},
	{"expDate", func(o *model.Order) string { return o.ExpDate }},
	{"billingAddress", func(o *model.Order) string { return o.BillingAddress }},
	{"date", func(o *model.Order) string { return o.Date }},
	{"quantity", func(o *model.Order) string { return o.Quantity }},
	{"price", func(o *model.Order) string { return o.Price }},
	{"section", func(o *model.Order) string { return o.Section }},
	{"row", func(o *model.Order) string { return o.Row }},
	{"teams", func(o *model.Order) string { return o.Teams }},
	{"location", func(o *model.Order) string { return o.Location }},
	{"email", func(o *model.Order) string { return o.Email }},
}

// missingOrderField returns the name of the first required creation field
// that is absent or empty, and whether such a field exists.
func missingOrderField(o *model.Order) (string, bool) {
	for _, f := range requiredOrderFields {
		if f.get(o) == "" {
			return f.name, true
		}
	}
	return "", false
}

// updateForm carries the only fields an order update may touch. Fields
// absent from the body bind to "" and blank the stored value: an update
// replaces all four fields, it is not a partial patch.
type updateForm struct {
	PhoneNumber     string `json:"phoneNumber" form:"phoneNumber"`
	Email           string `json:"email" form:"email"`
	ShippingAddress string `json:"shippingAddress" form:"shippingAddress"`
	Zipcode         string `json:"zipcode" form:"zipcode"`
}

func (f *updateForm) update() store.OrderUpdate {
	return store.OrderUpdate{
		PhoneNumber:     f.PhoneNumber,
		Email:           f.Email,
		ShippingAddress: f.ShippingAddress,
		Zipcode:         f.Zipcode,
	}
}

// searchQuery extracts the optional free-text filter from a list request.
func searchQuery(c echo.Context) string {
	return c.QueryParam("query")
}
