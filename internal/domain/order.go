package domain

import "time"

// Order-related domain errors.
var (
	ErrOrderNotFound  = &Error{Code: ENOTFOUND, Message: "Order not found"}
	ErrEmptyOrder     = &Error{Code: EINVALID, Message: "Order must contain at least one item"}
	ErrInvalidStatus  = &Error{Code: EINVALID, Message: "Invalid order status"}
	ErrInvalidPayment = &Error{Code: EINVALID, Message: "Invalid payment method"}
)

// OrderStatus is the fulfillment state of a placed order.
// Any status may be set directly by an admin; there is no forward-only rule.
type OrderStatus string

const (
	OrderStatusPending         OrderStatus = "pending"
	OrderStatusPaymentApproved OrderStatus = "payment_approved"
	OrderStatusShipped         OrderStatus = "shipped"
	OrderStatusDelivered       OrderStatus = "delivered"
)

// ValidOrderStatus reports whether s is one of the four enumerated statuses.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusPaymentApproved, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

// PaymentMethod is how the buyer settles an order.
// There is no card processing; both methods are offline settlement records.
type PaymentMethod string

const (
	PaymentMobile       PaymentMethod = "mobile_payment"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
)

// ValidPaymentMethod reports whether m is a known payment method.
func ValidPaymentMethod(m PaymentMethod) bool {
	return m == PaymentMobile || m == PaymentBankTransfer
}

// GiftDetails is optional gift information attached to an order.
type GiftDetails struct {
	RecipientName  string `json:"recipient_name"`
	RecipientEmail string `json:"recipient_email"`
	Message        string `json:"message"`
}

// Order is a placed order. Lines are a snapshot copy of the cart at checkout
// time, decoupled from the live cart and catalog; only Status is mutable.
type Order struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	CreatedAt     time.Time     `json:"created_at"`
	Lines         []CartLine    `json:"lines"`
	TotalCents    int64         `json:"total_cents"`
	Status        OrderStatus   `json:"status"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Gift          *GiftDetails  `json:"gift,omitempty"`
}
