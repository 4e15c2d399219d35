package order

// Presentation describes how a status is rendered. Every surface that shows
// order status (tracking page, admin list and detail, dashboard, bot) must go
// through this mapping so labels never drift between screens.
type Presentation struct {
	Label   string
	Color   string
	Emoji   string
	Ordinal int
}

var statusPresentations = map[Status]Presentation{
	StatusPending:         {Label: "Chờ duyệt", Color: "bg-yellow-500", Emoji: "⏳", Ordinal: 0},
	StatusOrdered:         {Label: "Đã đặt", Color: "bg-blue-500", Emoji: "📦", Ordinal: 1},
	StatusShipping:        {Label: "Đang giao", Color: "bg-purple-500", Emoji: "🚚", Ordinal: 2},
	StatusCompleted:       {Label: "Thành công", Color: "bg-green-500", Emoji: "✅", Ordinal: 3},
	StatusCancelled:       {Label: "Đã hủy", Color: "bg-red-500", Emoji: "❌", Ordinal: 4},
	StatusAwaitingPayment: {Label: "Chờ thanh toán", Color: "bg-orange-500", Emoji: "💰", Ordinal: 5},
}

var paymentPresentations = map[PaymentStatus]Presentation{
	PaymentUnpaid:   {Label: "Chưa thanh toán", Color: "bg-orange-500", Emoji: "⏳", Ordinal: 0},
	PaymentPaid:     {Label: "Đã thanh toán", Color: "bg-green-500", Emoji: "✅", Ordinal: 1},
	PaymentRefunded: {Label: "Đã hoàn tiền", Color: "bg-gray-500", Emoji: "↩️", Ordinal: 2},
}

// fallbackPresentation is returned for unknown codes so rendering never fails.
var fallbackPresentation = Presentation{
	Label:   "Không xác định",
	Color:   "bg-gray-400",
	Emoji:   "⏳",
	Ordinal: -1,
}

// ProjectStatus returns the display mapping for a status code. Unknown codes
// get a neutral fallback instead of an error.
func ProjectStatus(s Status) Presentation {
	if p, ok := statusPresentations[s]; ok {
		return p
	}
	return fallbackPresentation
}

// ProjectPaymentStatus returns the display mapping for a payment status code.
// Unknown codes get a neutral fallback instead of an error.
func ProjectPaymentStatus(p PaymentStatus) Presentation {
	if pr, ok := paymentPresentations[p]; ok {
		return pr
	}
	return fallbackPresentation
}

// TimelineStatuses returns the four statuses rendered on the customer
// tracking timeline, in order.
func TimelineStatuses() []Status {
	return []Status{StatusPending, StatusOrdered, StatusShipping, StatusCompleted}
}
