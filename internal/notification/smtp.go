package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"quickstay/internal/config"
	"quickstay/internal/pkg/stay"
)

type SMTPSender struct {
	cfg config.SMTP
}

func NewSMTPSender(cfg config.SMTP) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) SendBookingConfirmation(_ context.Context, msg BookingConfirmation) error {
	body := buildConfirmationBody(msg)

	headers := []string{
		fmt.Sprintf("From: %s", s.cfg.From),
		fmt.Sprintf("To: %s", msg.RecipientEmail),
		"Subject: Hotel Booking Details",
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
	}
	raw := strings.Join(headers, "\r\n") + "\r\n\r\n" + body

	addr := s.cfg.Host + ":" + s.cfg.Port
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	return smtp.SendMail(addr, auth, s.cfg.From, []string{msg.RecipientEmail}, []byte(raw))
}

func buildConfirmationBody(msg BookingConfirmation) string {
	var b strings.Builder
	b.WriteString("<h2>Your Booking Details</h2>")
	fmt.Fprintf(&b, "<p>Dear %s,</p>", msg.RecipientName)
	b.WriteString("<p>Thank you for your booking! Here are your details:</p><ul>")
	fmt.Fprintf(&b, "<li><strong>Booking ID:</strong> %d</li>", msg.BookingID)
	fmt.Fprintf(&b, "<li><strong>Hotel Name:</strong> %s</li>", msg.HotelName)
	fmt.Fprintf(&b, "<li><strong>Location:</strong> %s</li>", msg.HotelAddress)
	fmt.Fprintf(&b, "<li><strong>Check-in Date:</strong> %s</li>", msg.CheckIn.Format(stay.DateLayout))
	fmt.Fprintf(&b, "<li><strong>Total Amount:</strong> %s%.2f</li>", msg.Currency, msg.TotalPrice)
	b.WriteString("</ul><p>We look forward to welcoming you!</p>")
	return b.String()
}
