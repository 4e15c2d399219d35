package email

import (
	"context"
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"

	"anishop/internal/domain/setting"
	sharedConfig "anishop/internal/shared/config"
	"anishop/internal/shared/logger"
)

// OrderConfirmation is the data rendered into the confirmation mail.
type OrderConfirmation struct {
	OrderCode     string
	RecipientName string
	ProductLink   string
	Quantity      int
	ServiceFee    int64
	StatusLabel   string
}

// SettingsSMTPService sends mail through SMTP. Connection parameters come
// from site settings when the admin has configured them, falling back to the
// static config otherwise, so mail setup changes need no redeploy.
type SettingsSMTPService struct {
	fallback sharedConfig.EmailConfig
	settings setting.Repository
	logger   logger.Interface
}

func NewSettingsSMTPService(fallback sharedConfig.EmailConfig, settings setting.Repository, logger logger.Interface) *SettingsSMTPService {
	return &SettingsSMTPService{
		fallback: fallback,
		settings: settings,
		logger:   logger,
	}
}

// SendOrderConfirmation sends the placement confirmation. Callers treat this
// as best effort; a failure must never fail the order.
func (s *SettingsSMTPService) SendOrderConfirmation(ctx context.Context, to string, data OrderConfirmation) error {
	host, port, user, password, from := s.resolveSMTP(ctx)
	if host == "" {
		return fmt.Errorf("no SMTP host configured")
	}

	subject := fmt.Sprintf("Xác nhận đơn hàng %s", data.OrderCode)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Cảm ơn bạn đã đặt hàng!</h2>
			<p>Mã đơn hàng của bạn: <strong>%s</strong></p>
			<p>Người nhận: %s</p>
			<p>Số lượng: %d</p>
			<p>Phí dịch vụ: %d₫</p>
			<p>Trạng thái: %s</p>
			<p>Dùng mã đơn hàng để tra cứu tiến độ bất cứ lúc nào.</p>
		</body>
		</html>
	`, data.OrderCode, data.RecipientName, data.Quantity, data.ServiceFee, data.StatusLabel)

	plainBody := fmt.Sprintf(`Cảm ơn bạn đã đặt hàng!

Mã đơn hàng: %s
Người nhận: %s
Số lượng: %d
Phí dịch vụ: %d₫
Trạng thái: %s

Dùng mã đơn hàng để tra cứu tiến độ bất cứ lúc nào.
`, data.OrderCode, data.RecipientName, data.Quantity, data.ServiceFee, data.StatusLabel)

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	dialer := gomail.NewDialer(host, port, user, password)
	if err := dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// resolveSMTP merges site settings over the static fallback config.
func (s *SettingsSMTPService) resolveSMTP(ctx context.Context) (host string, port int, user, password, from string) {
	host = s.fallback.SMTPHost
	port = s.fallback.SMTPPort
	user = s.fallback.SMTPUser
	password = s.fallback.SMTPPassword
	from = s.fallback.FromAddress

	keys := []string{
		setting.KeySMTPHost, setting.KeySMTPPort, setting.KeySMTPUser,
		setting.KeySMTPPassword, setting.KeyMailFrom,
	}
	values, err := s.settings.GetMany(ctx, keys)
	if err != nil {
		s.logger.Warnw("failed to load mail settings, using config fallback", "error", err)
		return
	}

	if v, ok := values[setting.KeySMTPHost]; ok && v != "" {
		host = v
	}
	if v, ok := values[setting.KeySMTPPort]; ok && v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			port = p
		}
	}
	if v, ok := values[setting.KeySMTPUser]; ok && v != "" {
		user = v
	}
	if v, ok := values[setting.KeySMTPPassword]; ok && v != "" {
		password = v
	}
	if v, ok := values[setting.KeyMailFrom]; ok && v != "" {
		from = v
	}
	return
}
