package channels

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"review_hub/config"
	"review_hub/internal/logger"
)

// SendPilotConfirmationEmail gửi email xác nhận đăng ký pilot cho lead.
// Không cấu hình SMTP thì bỏ qua, đăng ký pilot không phụ thuộc vào email.
func SendPilotConfirmationEmail(cfg *config.Configuration, recipient string, businessName string) error {
	log := logger.GetAppLogger()

	if cfg.SMTP_Host == "" || recipient == "" {
		log.WithField("recipient", recipient).Debug("✉️ [EMAIL] Chưa cấu hình SMTP hoặc thiếu địa chỉ nhận, bỏ qua gửi email")
		return nil
	}

	htmlContent := fmt.Sprintf(
		`<p>Xin chào %s,</p>
<p>Cảm ơn bạn đã đăng ký tham gia chương trình pilot. Chúng tôi sẽ liên hệ trong thời gian sớm nhất.</p>
<p>Review Hub</p>`,
		businessName,
	)

	msg := gomail.NewMessage()
	msg.SetHeader("From", fmt.Sprintf("%s <%s>", cfg.SMTP_FromName, cfg.SMTP_FromEmail))
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", "Xác nhận đăng ký pilot")
	msg.SetBody("text/html", htmlContent)

	dialer := gomail.NewDialer(cfg.SMTP_Host, cfg.SMTP_Port, cfg.SMTP_Username, cfg.SMTP_Password)
	if err := dialer.DialAndSend(msg); err != nil {
		log.WithError(err).WithField("recipient", recipient).Error("✉️ [EMAIL] Gửi email xác nhận pilot thất bại")
		return err
	}

	log.WithField("recipient", recipient).Info("✉️ [EMAIL] Đã gửi email xác nhận pilot")
	return nil
}
