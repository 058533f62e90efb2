package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"

	"classbook/config"
	"classbook/infras/otel"
	"classbook/shared/constant"
)

// ErrNotConfigured reports that no SMTP host is configured, so the
// approval email cannot go out. Callers must surface this, not swallow it.
var ErrNotConfigured = errors.New("smtp is not configured")

// ApprovalRequestMail carries everything the approver needs to decide on a
// booking without opening the application.
type ApprovalRequestMail struct {
	To           string
	ApproverName string
	BookingID    string
	RoomNo       string
	Date         string
	TimeSlot     string
	BookedBy     string
	Reason       string
}

type Mailer interface {
	SendBookingApprovalRequest(ctx context.Context, mail ApprovalRequestMail) error
}

type mailerImpl struct {
	config *config.Config
	otel   otel.Otel
}

func New(config *config.Config, otel otel.Otel) Mailer {
	return &mailerImpl{
		config: config,
		otel:   otel,
	}
}

func (m *mailerImpl) SendBookingApprovalRequest(ctx context.Context, mail ApprovalRequestMail) (err error) {
	_, scope := m.otel.NewScope(ctx, constant.OtelMailerScopeName, constant.OtelMailerScopeName+".SendBookingApprovalRequest")
	defer scope.End()
	defer scope.TraceIfError(err)

	smtpConf := m.config.SMTP
	if smtpConf.Host == "" || smtpConf.Port == "" || smtpConf.Username == "" {
		log.Warn().
			Str("to", mail.To).
			Str("bookingID", mail.BookingID).
			Msg("SMTP not configured, cannot send approval request email")

		return ErrNotConfigured
	}

	approveLink := m.decisionLink(mail.BookingID, constant.BookingStatusApproved)
	rejectLink := m.decisionLink(mail.BookingID, constant.BookingStatusRejected)

	subject := fmt.Sprintf("Booking approval needed: room %s on %s, %s", mail.RoomNo, mail.Date, mail.TimeSlot)
	body := buildApprovalBody(mail, approveLink, rejectLink)

	from := fmt.Sprintf("%s <%s>", smtpConf.FromName, smtpConf.Username)
	auth := smtp.PlainAuth("", smtpConf.Username, smtpConf.Password, smtpConf.Host)
	addr := net.JoinHostPort(smtpConf.Host, smtpConf.Port)

	message := buildMessage(from, mail.To, subject, body)

	err = smtp.SendMail(addr, auth, smtpConf.Username, []string{mail.To}, message)
	if err != nil {
		log.Error().Err(err).Str("to", mail.To).Str("bookingID", mail.BookingID).Msg("Failed to send approval request email")

		return fmt.Errorf("failed to send approval request email: %w", err)
	}

	log.Info().Str("to", mail.To).Str("bookingID", mail.BookingID).Msg("Approval request email sent")

	return nil
}

func (m *mailerImpl) decisionLink(bookingID, action string) string {
	query := url.Values{}
	query.Set(constant.RequestParamBookingID, bookingID)
	query.Set(constant.RequestParamAction, action)

	return fmt.Sprintf("%s/v1/approvals?%s", strings.TrimRight(m.config.App.BaseURL, "/"), query.Encode())
}

type mailBody struct {
	plain string
	html  string
}

func buildApprovalBody(mail ApprovalRequestMail, approveLink, rejectLink string) mailBody {
	plain := fmt.Sprintf(
		"Hi %s,\n\n"+
			"%s has requested room %s on %s for the %s slot.\n"+
			"Reason: %s\n\n"+
			"Approve: %s\n"+
			"Reject:  %s\n",
		mail.ApproverName, mail.BookedBy, mail.RoomNo, mail.Date, mail.TimeSlot, mail.Reason, approveLink, rejectLink,
	)

	html := fmt.Sprintf(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Booking approval</title>
<style>
body { background:#f5f7fb; font-family:Arial, Helvetica, sans-serif; color:#222; }
.container { max-width:640px; margin:20px auto; }
.card { background:#fff; border:1px solid #e6eef6; padding:24px; border-radius:8px; }
.btn { display:inline-block; padding:12px 20px; color:#fff; text-decoration:none; border-radius:6px; margin:16px 8px 0 0; }
.approve { background:#1a9c4b; }
.reject { background:#d23f3f; }
</style>
</head>
<body>
<div class="container">
  <div class="card">
    <h2>Booking approval needed</h2>
    <p>Hi %s,</p>
    <p><strong>%s</strong> has requested room <strong>%s</strong> on <strong>%s</strong> for the <strong>%s</strong> slot.</p>
    <p>Reason: %s</p>
    <a class="btn approve" href="%s" target="_blank">Approve</a>
    <a class="btn reject" href="%s" target="_blank">Reject</a>
  </div>
</div>
</body>
</html>`,
		mail.ApproverName, mail.BookedBy, mail.RoomNo, mail.Date, mail.TimeSlot, mail.Reason, approveLink, rejectLink,
	)

	return mailBody{plain: plain, html: html}
}

func buildMessage(from, to, subject string, body mailBody) []byte {
	boundary := "----=_APPROVAL_EMAIL_BOUNDARY"

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", to))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary))

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(body.plain + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(body.html + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	return []byte(sb.String())
}
