package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"freelancehub_backend/internal/models"
)

// Service renders and sends the product's notification emails.
type Service struct {
	provider Provider
	baseURL  string
}

func NewService(provider Provider, frontendBaseURL string) *Service {
	return &Service{provider: provider, baseURL: frontendBaseURL}
}

var notificationTmpl = template.Must(template.New("notification").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">{{.Title}}</h2>
  <p>Hi {{.Name}},</p>
  <p>{{.Message}}</p>
  {{if .ActionURL}}
  <div style="margin: 24px 0;">
    <a href="{{.ActionURL}}"
       style="background-color: #4CAF50; color: white; padding: 12px 24px; text-decoration: none; border-radius: 4px;">
      {{.ActionLabel}}
    </a>
  </div>
  {{end}}
  <p style="color: #888; font-size: 12px;">
    You are receiving this because of your notification settings. You can change them in your profile.
  </p>
</div>`))

type notificationEmailData struct {
	Title       string
	Name        string
	Message     string
	ActionURL   string
	ActionLabel string
}

// SendNotification emails a persisted notification to its recipient.
// The action link points at the related entity when one is attached.
func (s *Service) SendNotification(ctx context.Context, to, recipientName string, n *models.Notification) error {
	data := notificationEmailData{
		Title:   n.Title,
		Name:    recipientName,
		Message: n.Message,
	}
	if url, label := s.actionLink(n.Related()); url != "" {
		data.ActionURL = url
		data.ActionLabel = label
	}

	var body bytes.Buffer
	if err := notificationTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("render notification email: %w", err)
	}

	return s.provider.Send(ctx, to, n.Title, body.String())
}

func (s *Service) actionLink(ref models.RelatedRef) (url, label string) {
	if ref.IsZero() {
		return "", ""
	}
	switch ref.Type {
	case models.RelatedTypeJob:
		return fmt.Sprintf("%s/jobs/%s", s.baseURL, ref.ID), "View Job"
	case models.RelatedTypeApplication:
		return fmt.Sprintf("%s/applications/%s", s.baseURL, ref.ID), "View Application"
	case models.RelatedTypeContract:
		return fmt.Sprintf("%s/contracts/%s", s.baseURL, ref.ID), "View Contract"
	case models.RelatedTypeMeeting:
		return fmt.Sprintf("%s/meetings/%s", s.baseURL, ref.ID), "View Meeting"
	case models.RelatedTypeWorkProgress:
		return fmt.Sprintf("%s/contracts", s.baseURL), "View Progress"
	case models.RelatedTypeMessage:
		return fmt.Sprintf("%s/messages", s.baseURL), "Open Chat"
	}
	return "", ""
}
