package domain

// Status is the order lifecycle state. Orders move along a fixed
// progression; cancellation is only possible before processing begins.
type Status string

const (
	StatusPendingPayment  Status = "pending_payment"
	StatusPaymentReceived Status = "payment_received"
	StatusProcessing      Status = "processing"
	StatusShipped         Status = "shipped"
	StatusDelivered       Status = "delivered"
	StatusCancelled       Status = "cancelled"
)

// transitions maps each state to the states reachable from it.
// delivered and cancelled are terminal.
var transitions = map[Status][]Status{
	StatusPendingPayment:  {StatusPaymentReceived, StatusCancelled},
	StatusPaymentReceived: {StatusProcessing, StatusCancelled},
	StatusProcessing:      {StatusShipped},
	StatusShipped:         {StatusDelivered},
	StatusDelivered:       {},
	StatusCancelled:       {},
}

// Valid reports whether s is one of the enumerated order states.
func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// Terminal reports whether no further transition leaves s.
func (s Status) Terminal() bool { return len(transitions[s]) == 0 }

// CanTransition reports whether moving from s to next is legal.
func (s Status) CanTransition(next Status) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// Next returns the single forward step from s, if any. Cancellation is
// offered separately via CanTransition(StatusCancelled).
func (s Status) Next() (Status, bool) {
	for _, t := range transitions[s] {
		if t != StatusCancelled {
			return t, true
		}
	}
	return "", false
}

// Label is the display name used on gallery and admin pages.
func (s Status) Label() string {
	switch s {
	case StatusPendingPayment:
		return "Pending Payment"
	case StatusPaymentReceived:
		return "Payment Received"
	case StatusProcessing:
		return "Processing"
	case StatusShipped:
		return "Shipped"
	case StatusDelivered:
		return "Delivered"
	case StatusCancelled:
		return "Cancelled"
	}
	return string(s)
}
