package webhookpubsub

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/google/uuid"
)

// Webhook is an HTTP endpoint subscribed to a topic. A non-empty secret
// makes invocations carry a signed Authorization header.
type Webhook struct {
	ID       string `json:"id"`
	Topic    string `json:"topic"`
	Endpoint string `json:"endpoint"`
	Secret   string `json:"secret"`
}

func NewWebhook(topic, endpoint, secret string) (*Webhook, error) {
	if _, err := url.ParseRequestURI(endpoint); err != nil {
		return nil, fmt.Errorf("webhook endpoint must be a valid URI")
	}
	id := uuid.New().String()
	return &Webhook{id, topic, endpoint, secret}, nil
}

func (h *Webhook) IsSecured() bool {
	return len(h.Secret) > 0
}

func (h *Webhook) Serialize() []byte {
	b, _ := json.Marshal(*h)
	return b
}
