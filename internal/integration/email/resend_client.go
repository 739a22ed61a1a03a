package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/strategic-planning/backend/internal/application/adapter"
	domainerror "github.com/strategic-planning/backend/internal/domain/error"
)

// ResendClient implements the adapter.EmailSender interface using Resend.
type ResendClient struct {
	client *resend.Client
	from   string
}

// NewResendClient creates a new Resend client.
func NewResendClient(apiKey, fromName, fromEmail string) *ResendClient {
	return &ResendClient{
		client: resend.NewClient(apiKey),
		from:   fmt.Sprintf("%s <%s>", fromName, fromEmail),
	}
}

// Send sends an email via Resend.
func (c *ResendClient) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	to := input.To
	if input.Name != "" {
		to = fmt.Sprintf("%s <%s>", input.Name, input.To)
	}

	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: input.Subject,
		Html:    input.HTML,
		Text:    input.Text,
	}
	if input.Template != "" {
		params.Tags = []resend.Tag{{Name: "template", Value: input.Template}}
	}

	resp, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		if isPermanentError(err) {
			return nil, domainerror.NewEmailError(
				domainerror.ErrCodePermanentEmailFailure,
				"permanent email failure",
				err,
			)
		}
		return nil, domainerror.NewEmailError(
			domainerror.ErrCodeTemporaryEmailFailure,
			"temporary email failure",
			err,
		)
	}

	return &adapter.SendEmailResult{
		ResendID: resp.Id,
	}, nil
}

// permanentErrorMarkers appear in Resend errors that retrying cannot fix.
// Rate limits (429) and 5xx responses are retried.
var permanentErrorMarkers = []string{
	"401",
	"403",
	"422",
	"unauthorized",
	"forbidden",
	"validation",
	"invalid",
	"bad request",
}

func isPermanentError(err error) bool {
	if err == nil {
		return false
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range permanentErrorMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

var _ adapter.EmailSender = (*ResendClient)(nil)
