package email

import (
	"context"
	"fmt"

	resend "github.com/resend/resend-go/v2"
	"github.com/rs/zerolog/log"
)

// Service delivers match-request notifications through Resend.
type Service struct {
	client *resend.Client
	from   string
}

// NewService creates a new email service.
func NewService(apiKey, from string) *Service {
	return &Service{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

// SendMatchRequest delivers a confirmation request to the counterpart
// team's creator. A failure here is surfaced to the caller; the request
// phase has made no data mutation that would need rolling back.
func (s *Service) SendMatchRequest(ctx context.Context, request MatchRequest) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{request.Email},
		Subject: request.Subject,
		Html:    renderMatchRequest(request),
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		log.Error().Err(err).
			Str("action", string(request.Action)).
			Str("club", request.ClubName).
			Msg("failed to send match request email")
		return fmt.Errorf("failed to send match request email: %w", err)
	}
	return nil
}

func renderMatchRequest(request MatchRequest) string {
	link := fmt.Sprintf("%s?token=%s", request.ConfirmURL, request.Token)
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <style>
        body {
            font-family: Arial, sans-serif;
            background-color: #f4f4f4;
            margin: 0;
            padding: 20px;
        }
        .container {
            background-color: #ffffff;
            max-width: 600px;
            margin: 0 auto;
            padding: 20px;
            box-shadow: 0 0 10px rgba(0,0,0,0.1);
        }
        .button {
            display: block;
            width: 220px;
            height: 50px;
            margin: 20px auto;
            background-color: #007BFF;
            color: #ffffff;
            font-size: 16px;
            text-align: center;
            line-height: 50px;
            text-decoration: none;
            border-radius: 5px;
        }
    </style>
</head>
<body>
    <div class="container">
        <h2>%s</h2>
        <p>%s has a request for %s.</p>
        <table>
            <tr><td>Current schedule</td><td>%s</td></tr>
            <tr><td>Proposed schedule</td><td>%s</td></tr>
            <tr><td>Reason</td><td>%s</td></tr>
        </table>
        <a href="%s" class="button">Confirm</a>
        <p>If you did not expect this request you can ignore this email.</p>
    </div>
</body>
</html>`,
		request.Subject,
		request.SenderName,
		request.ClubName,
		request.OriginalSchedule,
		request.NewSchedule,
		request.Reason,
		link,
	)
}
