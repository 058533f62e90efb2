package mailer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"classbook/config"
	"classbook/infras/mailer"
	otelMocks "classbook/infras/otel/mocks"
)

func TestMailer_SendBookingApprovalRequest(t *testing.T) {
	mail := mailer.ApprovalRequestMail{
		To:           "approver@school.test",
		ApproverName: "Head Admin",
		BookingID:    "booking-1",
		RoomNo:       "R101",
		Date:         "2025-03-31",
		TimeSlot:     "9:00 - 10:00",
		BookedBy:     "requester1",
		Reason:       "parent meeting",
	}

	t.Run("fails loudly when smtp is not configured", func(t *testing.T) {
		m := mailer.New(&config.Config{}, otelMocks.NewOtel())

		err := m.SendBookingApprovalRequest(context.Background(), mail)

		assert.ErrorIs(t, err, mailer.ErrNotConfigured)
	})

	t.Run("fails loudly when smtp has no username", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.SMTP.Host = "smtp.school.test"
		cfg.SMTP.Port = "587"

		m := mailer.New(cfg, otelMocks.NewOtel())

		err := m.SendBookingApprovalRequest(context.Background(), mail)

		assert.ErrorIs(t, err, mailer.ErrNotConfigured)
	})
}
