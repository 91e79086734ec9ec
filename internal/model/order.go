package model

// Order is a ticket purchase record. Every field is submitted as a string
// at creation time and stored as-is; OrderNumber is assigned by the server
// and doubles as the record's key in the order collection.
//
// Only PhoneNumber, Email, ShippingAddress and Zipcode may change after
// creation. The remaining fields are frozen once the order exists.
type Order struct {
	OrderNumber     string `json:"orderNumber" form:"orderNumber"`
	FirstName       string `json:"firstName" form:"firstName"`
	LastName        string `json:"lastName" form:"lastName"`
	ShippingAddress string `json:"shippingAddress" form:"shippingAddress"`
	PhoneNumber     string `json:"phoneNumber" form:"phoneNumber"`
	Zipcode         string `json:"zipcode" form:"zipcode"`
	PaymentMethod   string `json:"paymentMethod" form:"paymentMethod"`
	CardNumber      string `json:"cardNumber" form:"cardNumber"`
	CVV             string `json:"cvv" form:"cvv"`
	ExpDate         string `json:"expDate" form:"expDate"`
	BillingAddress  string `json:"billingAddress" form:"billingAddress"`
	Date            string `json:"date" form:"date"`
	Quantity        string `json:"quantity" form:"quantity"`
	Price           string `json:"price" form:"price"`
	Section         string `json:"section" form:"section"`
	Row             string `json:"row" form:"row"`
	Teams           string `json:"teams" form:"teams"`
	Location        string `json:"location" form:"location"`
	Email           string `json:"email" form:"email"`
}

// SearchText is the text a free-text query is matched against.
func (o *Order) SearchText() string {
	return o.FirstName + o.LastName
}
