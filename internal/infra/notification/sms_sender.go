package notification

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"expatmart/config"
	"expatmart/internal/domain/entity"
	"expatmart/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/valyala/fasttemplate"
)

// maxSMSLength keeps a message within ten concatenated segments.
const maxSMSLength = 1600

type smsSender struct {
	cfg        config.SMSConfig
	endpoint   string
	httpClient *http.Client
}

// NewSMSSender creates the SMS channel adapter. The API URL may reference the
// account as {accountSid}, e.g. .../Accounts/{accountSid}/Messages.json.
func NewSMSSender(cfg *config.Config) service.ChannelSender {
	smsCfg := config.SMSConfig{}
	if cfg.SMS != nil {
		smsCfg = *cfg.SMS
	}
	timeout := smsCfg.Timeout
	if timeout <= 0 {
		timeout = defaultSenderTimeout
	}

	endpoint := fasttemplate.ExecuteString(smsCfg.APIURL, "{", "}", map[string]any{
		"accountSid": url.PathEscape(smsCfg.AccountSID),
	})

	return &smsSender{
		cfg:        smsCfg,
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (s *smsSender) Channel() entity.Channel {
	return entity.ChannelSMS
}

func (s *smsSender) Send(ctx context.Context, msg *service.ChannelMessage) (*service.ChannelReceipt, error) {
	if s.endpoint == "" || s.cfg.AccountSID == "" {
		return nil, errors.New("sms gateway not configured")
	}
	if strings.TrimSpace(msg.Phone) == "" {
		return nil, errors.New("recipient has no phone number")
	}

	text := msg.Body
	if msg.Title != "" {
		text = msg.Title + ": " + msg.Body
	}
	if len(text) > maxSMSLength {
		text = text[:maxSMSLength]
	}

	form := url.Values{}
	form.Set("To", msg.Phone)
	form.Set("From", s.cfg.From)
	form.Set("Body", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(s.cfg.AccountSID, s.cfg.AuthToken)

	body, err := doProviderRequest(s.httpClient, req, "sms")
	if err != nil {
		return nil, err
	}

	return &service.ChannelReceipt{ProviderMessageID: gjson.GetBytes(body, "sid").String()}, nil
}
