package bot

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	orderdto "anishop/internal/application/order/dto"
	"anishop/internal/domain/order"
	"anishop/internal/infrastructure/telegram"
)

var vnPrinter = message.NewPrinter(language.Vietnamese)

// FormatVND renders a fee with Vietnamese digit grouping, e.g. 20.000₫.
func FormatVND(amount int64) string {
	return vnPrinter.Sprintf("%d₫", amount)
}

const helpMessage = `<b>ANI Shop — đặt hàng hộ</b>

/order — đặt đơn hàng mới
/track &lt;mã đơn&gt; — tra cứu đơn hàng
/tk &lt;mã đơn&gt; — viết tắt của /track
/cancel — hủy thao tác đang dở
/help — xem lại hướng dẫn này

Gửi /order để bắt đầu, bot sẽ hỏi từng thông tin một.`

func orderPlacedMessage(placed *PlacedOrder) string {
	var b strings.Builder
	b.WriteString("✅ <b>Đặt hàng thành công!</b>\n\n")
	fmt.Fprintf(&b, "Mã đơn hàng: <code>%s</code>\n", telegram.EscapeHTML(placed.OrderCode))
	if placed.ServiceFee > 0 {
		fmt.Fprintf(&b, "Phí dịch vụ: %s\n", FormatVND(placed.ServiceFee))
	} else {
		b.WriteString("Phí dịch vụ: miễn phí\n")
	}
	fmt.Fprintf(&b, "\nTra cứu tiến độ bằng /track %s", telegram.EscapeHTML(placed.OrderCode))
	return b.String()
}

func orderDetailsMessage(view *orderdto.OrderView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s <b>Đơn hàng %s</b>\n\n", view.Status.Emoji, telegram.EscapeHTML(view.OrderCode))
	fmt.Fprintf(&b, "Trạng thái: %s\n", telegram.EscapeHTML(view.Status.Label))
	fmt.Fprintf(&b, "Thanh toán: %s\n", telegram.EscapeHTML(view.PaymentStatus.Label))
	fmt.Fprintf(&b, "Số lượng: %d\n", view.Quantity)
	fmt.Fprintf(&b, "Phí dịch vụ: %s\n", FormatVND(view.ServiceFee))
	if view.TrackingCode != nil && *view.TrackingCode != "" {
		fmt.Fprintf(&b, "Mã vận đơn: <code>%s</code>\n", telegram.EscapeHTML(*view.TrackingCode))
	}
	fmt.Fprintf(&b, "Ngày đặt: %s", view.CreatedAt.Format("02/01/2006 15:04"))
	return b.String()
}

func orderUpdateMessage(ev OrderUpdate) string {
	st := order.ProjectStatus(order.Status(ev.Status))
	ps := order.ProjectPaymentStatus(order.PaymentStatus(ev.PaymentStatus))

	var b strings.Builder
	fmt.Fprintf(&b, "%s <b>Cập nhật đơn hàng %s</b>\n\n", st.Emoji, telegram.EscapeHTML(ev.OrderCode))
	fmt.Fprintf(&b, "Trạng thái: %s\n", telegram.EscapeHTML(st.Label))
	fmt.Fprintf(&b, "Thanh toán: %s\n", telegram.EscapeHTML(ps.Label))
	if ev.TrackingCode != nil && *ev.TrackingCode != "" {
		fmt.Fprintf(&b, "Mã vận đơn: <code>%s</code>\n", telegram.EscapeHTML(*ev.TrackingCode))
	}
	return strings.TrimRight(b.String(), "\n")
}
