package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"expatmart/config"
	"expatmart/internal/domain/entity"
	"expatmart/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

const (
	defaultEmailAPIURL   = "https://api.useplunk.com/v1/send"
	defaultSenderTimeout = 10 * time.Second
	maxErrorBodyBytes    = 512
)

type emailSender struct {
	cfg        config.EmailConfig
	httpClient *http.Client
}

type emailSendBody struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	From    string `json:"from,omitempty"`
	Reply   string `json:"reply,omitempty"`
}

// NewEmailSender creates the EMAIL channel adapter for a Plunk-style
// transactional email API.
func NewEmailSender(cfg *config.Config) service.ChannelSender {
	emailCfg := config.EmailConfig{}
	if cfg.Email != nil {
		emailCfg = *cfg.Email
	}
	if emailCfg.APIURL == "" {
		emailCfg.APIURL = defaultEmailAPIURL
	}
	timeout := emailCfg.Timeout
	if timeout <= 0 {
		timeout = defaultSenderTimeout
	}

	return &emailSender{
		cfg:        emailCfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (s *emailSender) Channel() entity.Channel {
	return entity.ChannelEmail
}

func (s *emailSender) Send(ctx context.Context, msg *service.ChannelMessage) (*service.ChannelReceipt, error) {
	if s.cfg.APIKey == "" {
		return nil, errors.New("email api key not configured")
	}
	if strings.TrimSpace(msg.Email) == "" {
		return nil, errors.New("recipient has no email address")
	}

	payload, err := json.Marshal(emailSendBody{
		To:      msg.Email,
		Subject: msg.Title,
		Body:    msg.Body,
		From:    s.cfg.From,
		Reply:   s.cfg.ReplyTo,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.APIURL, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	body, err := doProviderRequest(s.httpClient, req, "email")
	if err != nil {
		return nil, err
	}

	// Plunk answers {"success":true,"emails":[{"email":"<id>",...}]}
	messageID := gjson.GetBytes(body, "emails.0.email").String()
	if messageID == "" {
		messageID = gjson.GetBytes(body, "id").String()
	}

	return &service.ChannelReceipt{ProviderMessageID: messageID}, nil
}

// doProviderRequest sends req and returns the body of a 2xx response.
func doProviderRequest(client *http.Client, req *http.Request, provider string) ([]byte, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s request failed", provider)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s response", provider)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if len(body) > maxErrorBodyBytes {
			body = body[:maxErrorBodyBytes]
		}
		if len(body) > 0 {
			return nil, errors.Errorf("%s send failed: status=%d body=%s", provider, resp.StatusCode, body)
		}

		return nil, errors.Errorf("%s send failed: status=%d", provider, resp.StatusCode)
	}

	return body, nil
}
