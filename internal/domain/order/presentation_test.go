package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectStatus(t *testing.T) {
	tests := []struct {
		status Status
		label  string
		color  string
	}{
		{StatusPending, "Chờ duyệt", "bg-yellow-500"},
		{StatusOrdered, "Đã đặt", "bg-blue-500"},
		{StatusShipping, "Đang giao", "bg-purple-500"},
		{StatusCompleted, "Thành công", "bg-green-500"},
		{StatusCancelled, "Đã hủy", "bg-red-500"},
		{StatusAwaitingPayment, "Chờ thanh toán", "bg-orange-500"},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			p := ProjectStatus(tt.status)
			assert.Equal(t, tt.label, p.Label)
			assert.Equal(t, tt.color, p.Color)
			assert.NotEmpty(t, p.Emoji)
		})
	}
}

func TestProjectStatusFallback(t *testing.T) {
	p := ProjectStatus(Status("definitely_not_a_status"))
	assert.Equal(t, "Không xác định", p.Label)
	assert.Equal(t, "bg-gray-400", p.Color)
	assert.Equal(t, -1, p.Ordinal)
}

func TestProjectPaymentStatus(t *testing.T) {
	tests := []struct {
		status PaymentStatus
		label  string
	}{
		{PaymentUnpaid, "Chưa thanh toán"},
		{PaymentPaid, "Đã thanh toán"},
		{PaymentRefunded, "Đã hoàn tiền"},
	}
	for _, tt := range tests {
		p := ProjectPaymentStatus(tt.status)
		assert.Equal(t, tt.label, p.Label)
	}

	fallback := ProjectPaymentStatus(PaymentStatus("barter"))
	assert.Equal(t, "Không xác định", fallback.Label)
}

func TestAllStatusesCoveredByProjection(t *testing.T) {
	for _, st := range AllStatuses() {
		p := ProjectStatus(st)
		assert.NotEqual(t, -1, p.Ordinal, "status %s should have a real projection", st)
	}
	for _, ps := range AllPaymentStatuses() {
		p := ProjectPaymentStatus(ps)
		assert.NotEqual(t, -1, p.Ordinal, "payment status %s should have a real projection", ps)
	}
}

func TestTimelineStatuses(t *testing.T) {
	timeline := TimelineStatuses()
	assert.Equal(t, []Status{StatusPending, StatusOrdered, StatusShipping, StatusCompleted}, timeline)
	for i, st := range timeline {
		assert.Equal(t, i, ProjectStatus(st).Ordinal)
	}
}
