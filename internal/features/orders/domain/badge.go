package domain

// Semantic is the presentation tone of a status badge.
type Semantic string

const (
	SemanticSuccess Semantic = "success"
	SemanticInfo    Semantic = "info"
	SemanticWarning Semantic = "warning"
	SemanticError   Semantic = "error"
	SemanticNeutral Semantic = "neutral"
)

// Badge is the resolved presentation of a status.
type Badge struct {
	Semantic Semantic `json:"semantic"`
	Label    string   `json:"label"`
	Class    string   `json:"class"`
}

// BadgeClass maps a status to its semantic tone. It applies equally to order
// and group statuses.
func BadgeClass(status OrderStatus) Semantic {
	switch status {
	case OrderStatusDelivered, OrderStatusPickedUp:
		return SemanticSuccess
	case OrderStatusPartiallyDelivered:
		return SemanticWarning
	case OrderStatusInTransit, OrderStatusReadyForPickup:
		return SemanticInfo
	case OrderStatusCancelled:
		return SemanticError
	default:
		return SemanticNeutral
	}
}

// BadgeFor resolves the full badge for a status.
func BadgeFor(status OrderStatus) Badge {
	semantic := BadgeClass(status)
	label := string(status)
	if label == "" {
		label = "Unknown"
	}
	return Badge{
		Semantic: semantic,
		Label:    label,
		Class:    "badge badge-" + string(semantic),
	}
}
