package order

import "fmt"

// Status is the fulfillment state of an order.
type Status string

const (
	StatusPending         Status = "pending"
	StatusOrdered         Status = "ordered"
	StatusShipping        Status = "shipping"
	StatusCompleted       Status = "completed"
	StatusCancelled       Status = "cancelled"
	StatusAwaitingPayment Status = "awaiting_payment"
)

// NewStatus parses a status string into a Status value object.
func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid order status: %s", s)
	}
	return status, nil
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusOrdered, StatusShipping,
		StatusCompleted, StatusCancelled, StatusAwaitingPayment:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsCancelled() bool {
	return s == StatusCancelled
}

func (s Status) IsCompleted() bool {
	return s == StatusCompleted
}

// AllStatuses returns every valid status in timeline order.
func AllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusOrdered,
		StatusShipping,
		StatusCompleted,
		StatusCancelled,
		StatusAwaitingPayment,
	}
}

// PaymentStatus is the payment state of an order's service fee.
type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// NewPaymentStatus parses a payment status string into a value object.
func NewPaymentStatus(s string) (PaymentStatus, error) {
	status := PaymentStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid payment status: %s", s)
	}
	return status, nil
}

func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentUnpaid, PaymentPaid, PaymentRefunded:
		return true
	default:
		return false
	}
}

func (p PaymentStatus) String() string {
	return string(p)
}

// AllPaymentStatuses returns every valid payment status.
func AllPaymentStatuses() []PaymentStatus {
	return []PaymentStatus{PaymentUnpaid, PaymentPaid, PaymentRefunded}
}
