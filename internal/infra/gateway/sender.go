package gateway

import (
	"context"

	"storefront/internal/domain/notification"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"
)

// ChannelSender routes a queued message to whichever channel its recipient
// has: phone recipients go out over WhatsApp, email-only recipients over
// SMTP. Both channels are idempotent from the queue's point of view; a
// duplicate send is a duplicate message, never an error.
type ChannelSender struct {
	whatsapp *WhatsAppClient
	email    *SMTPEmailSender
}

var _ commands.MessageSender = (*ChannelSender)(nil)

func NewChannelSender(whatsapp *WhatsAppClient, email *SMTPEmailSender) *ChannelSender {
	return &ChannelSender{whatsapp: whatsapp, email: email}
}

func (s *ChannelSender) Send(ctx context.Context, m *notification.Message) error {
	switch {
	case m.Phone != "":
		return s.whatsapp.SendText(ctx, m.Phone, m.Content)
	case m.Email != "":
		return s.email.SendText(m.Email, subjectFor(m.Type), m.Content)
	default:
		return errs.New("message has no recipient")
	}
}

func subjectFor(t notification.Type) string {
	switch t {
	case notification.TypeRestock:
		return "Back in stock"
	case notification.TypeRecovery:
		return "Your order is waiting"
	default:
		return "We miss you"
	}
}
