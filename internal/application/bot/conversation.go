package bot

import (
	"context"
	"strconv"
	"strings"

	"anishop/internal/infrastructure/telegram"
	"anishop/internal/shared/errors"
	"anishop/internal/shared/logger"
)

// ConversationHandler drives the per-chat ordering conversation. Each chat
// is either idle (no session) or waiting on one step of the order form;
// /cancel returns to idle from any step.
type ConversationHandler struct {
	bot      Sender
	sessions SessionStore
	subs     SubscriptionStore
	api      Backend
	logger   logger.Interface
}

func NewConversationHandler(bot Sender, sessions SessionStore, subs SubscriptionStore, api Backend, logger logger.Interface) *ConversationHandler {
	return &ConversationHandler{
		bot:      bot,
		sessions: sessions,
		subs:     subs,
		api:      api,
		logger:   logger,
	}
}

func (h *ConversationHandler) HandleUpdate(ctx context.Context, update telegram.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}
	chatID := update.Message.Chat.ID
	text := strings.TrimSpace(update.Message.Text)

	if strings.HasPrefix(text, "/") {
		h.handleCommand(ctx, chatID, text)
		return
	}

	session, err := h.sessions.Get(ctx, chatID)
	if err != nil {
		h.logger.Errorw("failed to load bot session", "error", err, "chat_id", chatID)
		h.send(ctx, chatID, "Có lỗi xảy ra, vui lòng thử lại sau.")
		return
	}
	if session == nil {
		h.send(ctx, chatID, "Gửi /order để đặt hàng hoặc /track <mã đơn> để tra cứu. Gõ /help để xem hướng dẫn.")
		return
	}

	h.handleStep(ctx, session, text)
}

func (h *ConversationHandler) handleCommand(ctx context.Context, chatID int64, text string) {
	fields := strings.Fields(text)
	command := fields[0]
	// Group chats address commands as /order@BotName.
	if at := strings.Index(command, "@"); at > 0 {
		command = command[:at]
	}

	switch command {
	case "/start", "/help", "/menu":
		h.send(ctx, chatID, helpMessage)

	case "/order":
		session := &Session{ChatID: chatID, Step: StepProductLink}
		if err := h.sessions.Save(ctx, session); err != nil {
			h.logger.Errorw("failed to start bot session", "error", err, "chat_id", chatID)
			h.send(ctx, chatID, "Có lỗi xảy ra, vui lòng thử lại sau.")
			return
		}
		h.send(ctx, chatID, "🛒 Bắt đầu đặt hàng. Gửi link sản phẩm bạn muốn mua (gõ /cancel để hủy bất cứ lúc nào).")

	case "/track", "/tk":
		if len(fields) < 2 {
			h.sendTrackedOrders(ctx, chatID)
			return
		}
		h.sendOrderDetails(ctx, chatID, fields[1])

	case "/cancel":
		if err := h.sessions.Delete(ctx, chatID); err != nil {
			h.logger.Warnw("failed to delete bot session", "error", err, "chat_id", chatID)
		}
		h.send(ctx, chatID, "Đã hủy thao tác hiện tại.")

	default:
		h.send(ctx, chatID, "Lệnh không hợp lệ. Gõ /help để xem danh sách lệnh.")
	}
}

func (h *ConversationHandler) handleStep(ctx context.Context, session *Session, text string) {
	chatID := session.ChatID

	switch session.Step {
	case StepProductLink:
		if !strings.HasPrefix(text, "http://") && !strings.HasPrefix(text, "https://") {
			h.send(ctx, chatID, "Link sản phẩm phải bắt đầu bằng http:// hoặc https://. Gửi lại link nhé.")
			return
		}
		session.Draft.ProductLink = text
		h.advance(ctx, session, StepQuantity, "Số lượng cần mua?")

	case StepQuantity:
		quantity, err := strconv.Atoi(text)
		if err != nil || quantity < 1 {
			h.send(ctx, chatID, "Số lượng phải là số nguyên dương. Gửi lại số lượng nhé.")
			return
		}
		session.Draft.Quantity = quantity
		h.advance(ctx, session, StepNotes, "Ghi chú thêm cho đơn hàng (màu, size...)? Gửi \"-\" nếu không có.")

	case StepNotes:
		if text != "-" {
			session.Draft.Notes = text
		}
		h.advance(ctx, session, StepRecipientName, "Tên người nhận hàng?")

	case StepRecipientName:
		session.Draft.RecipientName = text
		h.advance(ctx, session, StepAddress, "Địa chỉ nhận hàng?")

	case StepAddress:
		session.Draft.Address = text
		h.advance(ctx, session, StepContact, "Số điện thoại hoặc liên hệ của người nhận?")

	case StepContact:
		session.Draft.Contact = text
		h.submit(ctx, session)

	default:
		// Unknown step, likely from an older bot version. Reset to idle.
		h.logger.Warnw("unknown bot session step", "step", session.Step, "chat_id", chatID)
		if err := h.sessions.Delete(ctx, chatID); err != nil {
			h.logger.Warnw("failed to delete bot session", "error", err, "chat_id", chatID)
		}
		h.send(ctx, chatID, "Phiên đặt hàng đã hết hạn. Gửi /order để bắt đầu lại.")
	}
}

// advance stores the updated draft, moves to the next step and asks the next
// question.
func (h *ConversationHandler) advance(ctx context.Context, session *Session, nextStep, question string) {
	session.Step = nextStep
	if err := h.sessions.Save(ctx, session); err != nil {
		h.logger.Errorw("failed to save bot session", "error", err, "chat_id", session.ChatID)
		h.send(ctx, session.ChatID, "Có lỗi xảy ra, vui lòng gửi /order để bắt đầu lại.")
		return
	}
	h.send(ctx, session.ChatID, question)
}

func (h *ConversationHandler) submit(ctx context.Context, session *Session) {
	chatID := session.ChatID

	req := PlaceOrderRequest{
		ProductLink:    session.Draft.ProductLink,
		Quantity:       session.Draft.Quantity,
		RecipientName:  session.Draft.RecipientName,
		PhoneOrContact: session.Draft.Contact,
		Address:        session.Draft.Address,
	}
	if session.Draft.Notes != "" {
		notes := session.Draft.Notes
		req.Notes = &notes
	}

	placed, err := h.api.PlaceOrder(ctx, req)

	// The conversation is over either way; a failed submission starts fresh.
	if delErr := h.sessions.Delete(ctx, chatID); delErr != nil {
		h.logger.Warnw("failed to delete bot session", "error", delErr, "chat_id", chatID)
	}

	if err != nil {
		switch {
		case errors.IsRateLimitedError(err):
			h.send(ctx, chatID, "Hôm nay shop đã nhận đủ đơn hàng. Vui lòng quay lại vào ngày mai nhé!")
		case errors.IsValidationError(err):
			h.send(ctx, chatID, "Thông tin đơn hàng chưa hợp lệ: "+telegram.EscapeHTML(err.Error())+"\nGửi /order để thử lại.")
		default:
			h.logger.Errorw("failed to place order via backend", "error", err, "chat_id", chatID)
			h.send(ctx, chatID, "Có lỗi xảy ra khi đặt hàng, vui lòng thử lại sau.")
		}
		return
	}

	if err := h.subs.Subscribe(ctx, chatID, placed.OrderCode); err != nil {
		h.logger.Warnw("failed to subscribe chat to order", "error", err, "order_code", placed.OrderCode)
	}

	h.send(ctx, chatID, orderPlacedMessage(placed))
}

func (h *ConversationHandler) sendOrderDetails(ctx context.Context, chatID int64, code string) {
	view, err := h.api.GetOrder(ctx, code)
	if err != nil {
		if errors.IsNotFoundError(err) {
			h.send(ctx, chatID, "Không tìm thấy đơn hàng với mã này. Kiểm tra lại mã đơn nhé.")
			return
		}
		h.logger.Errorw("failed to look up order via backend", "error", err, "order_code", code)
		h.send(ctx, chatID, "Có lỗi xảy ra khi tra cứu, vui lòng thử lại sau.")
		return
	}

	// Tracking an order opts the chat into its status pushes.
	if err := h.subs.Subscribe(ctx, chatID, view.OrderCode); err != nil {
		h.logger.Warnw("failed to subscribe chat to order", "error", err, "order_code", view.OrderCode)
	}

	h.send(ctx, chatID, orderDetailsMessage(view))
}

func (h *ConversationHandler) sendTrackedOrders(ctx context.Context, chatID int64) {
	codes, err := h.subs.OrdersForChat(ctx, chatID)
	if err != nil {
		h.logger.Warnw("failed to load chat subscriptions", "error", err, "chat_id", chatID)
		codes = nil
	}
	if len(codes) == 0 {
		h.send(ctx, chatID, "Dùng: /track <mã đơn hàng>")
		return
	}

	var b strings.Builder
	b.WriteString("Các đơn hàng bạn đang theo dõi:\n")
	for _, code := range codes {
		b.WriteString("• /track " + telegram.EscapeHTML(code) + "\n")
	}
	h.send(ctx, chatID, strings.TrimRight(b.String(), "\n"))
}

func (h *ConversationHandler) send(ctx context.Context, chatID int64, text string) {
	if err := h.bot.SendMessage(ctx, chatID, text); err != nil {
		h.logger.Errorw("failed to send telegram message", "error", err, "chat_id", chatID)
	}
}
