package domain

// CanReturnItem reports whether items of group may be returned.
// Both the group and the order status are checked because a group can lag the
// order's aggregate status.
func CanReturnItem(order *RawOrder, group FulfillmentGroup) bool {
	if order == nil || !order.CanReturn {
		return false
	}
	return group.Status.Received() || order.Status.Received()
}

// CanCancelItem reports whether items of group may still be cancelled.
// Cancellation closes as soon as the group is in transit or received.
func CanCancelItem(order *RawOrder, group FulfillmentGroup) bool {
	if order == nil || !order.CanCancel {
		return false
	}
	if order.Status == OrderStatusCancelled {
		return false
	}
	return !group.Status.FulfillmentStarted()
}
