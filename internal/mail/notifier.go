package mail

import (
	"context"
	"fmt"

	"github.com/nikolayk812/partsdepot/internal/domain"
	"github.com/nikolayk812/partsdepot/internal/port"
)

// Notifier renders the transactional emails and hands them to a Mailer.
type Notifier struct {
	mailer    port.Mailer
	templates *templates
	shopInbox string
}

func NewNotifier(mailer port.Mailer, shopInbox string) (*Notifier, error) {
	t, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("parseTemplates: %w", err)
	}

	return &Notifier{
		mailer:    mailer,
		templates: t,
		shopInbox: shopInbox,
	}, nil
}

func (n *Notifier) OrderConfirmation(ctx context.Context, order domain.Order) error {
	return n.send(ctx, templateOrderConfirmation, order.CustomerEmail,
		fmt.Sprintf("Your order %s", order.Number),
		map[string]any{"Order": order})
}

func (n *Notifier) PartnerReceived(ctx context.Context, partner domain.Partner) error {
	return n.send(ctx, templatePartnerReceived, partner.Email,
		"We received your partner application",
		map[string]any{"Partner": partner})
}

func (n *Notifier) PartnerReviewed(ctx context.Context, partner domain.Partner) error {
	return n.send(ctx, templatePartnerReviewed, partner.Email,
		fmt.Sprintf("Your partner application was %s", partner.Status),
		map[string]any{"Partner": partner})
}

func (n *Notifier) ContactMessage(ctx context.Context, msg domain.ContactMessage) error {
	subject := msg.Subject
	if subject == "" {
		subject = "Contact form message"
	}

	return n.send(ctx, templateContactMessage, n.shopInbox,
		fmt.Sprintf("[contact] %s", subject),
		map[string]any{"Message": msg})
}

func (n *Notifier) send(ctx context.Context, name, to, subject string, data any) error {
	if to == "" {
		return fmt.Errorf("recipient is empty")
	}

	html, err := n.templates.render(name, data)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if err := n.mailer.Send(ctx, port.Email{
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	}); err != nil {
		return fmt.Errorf("mailer.Send: %w", err)
	}

	return nil
}
