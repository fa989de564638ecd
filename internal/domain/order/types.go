package order

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo encodes the one-way lifecycle. pending→completed is the
// point-of-sale finalize shortcut; cancelled orders are never resurrected.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusPaid || next == StatusCancelled || next == StatusCompleted
	case StatusPaid:
		return next == StatusCompleted
	default:
		return false
	}
}

type PaymentMethod string

const (
	PaymentWhatsApp    PaymentMethod = "whatsapp"
	PaymentMercadoPago PaymentMethod = "mercadopago"
	PaymentPOS         PaymentMethod = "pos"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentWhatsApp, PaymentMercadoPago, PaymentPOS:
		return true
	default:
		return false
	}
}
