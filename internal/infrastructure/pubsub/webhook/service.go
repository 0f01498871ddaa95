package webhookpubsub

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"
	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"github.com/vulpemventures/dexd/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// TopicAll subscribes a webhook to every published topic.
const TopicAll = "*"

var (
	// ErrInvalidTopic is thrown when subscribing to an unknown topic
	ErrInvalidTopic = errors.New("invalid topic")

	validTopics = map[string]struct{}{
		ports.TopicPoolCreated:       {},
		ports.TopicLiquidityProvided: {},
		ports.TopicLiquidityRemoved:  {},
		ports.TopicTradeSettled:      {},
		ports.TopicPriceQuoted:       {},
		TopicAll:                     {},
	}
)

type webhookService struct {
	hooksByTopic map[string][]*Webhook
	httpClient   *hookClient
	cb           *gobreaker.CircuitBreaker

	lock *sync.RWMutex
}

// NewWebhookPubSubService returns a ports.PubSub delivering every published
// message to the webhooks subscribed to its topic via HTTP POST. Deliveries
// go through a circuit breaker so that a dead endpoint cannot pile up
// timed-out requests.
func NewWebhookPubSubService(requestTimeout time.Duration) ports.PubSub {
	return &webhookService{
		hooksByTopic: map[string][]*Webhook{},
		httpClient:   newHookClient(requestTimeout),
		cb:           newCircuitBreaker(),
		lock:         &sync.RWMutex{},
	}
}

func (ws *webhookService) Subscribe(topic, endpoint, secret string) (string, error) {
	if _, ok := validTopics[topic]; !ok {
		return "", ErrInvalidTopic
	}

	hook, err := NewWebhook(topic, endpoint, secret)
	if err != nil {
		return "", err
	}

	ws.lock.Lock()
	defer ws.lock.Unlock()

	ws.hooksByTopic[topic] = append(ws.hooksByTopic[topic], hook)
	return hook.ID, nil
}

// Unsubscribe removes the hook with the given id. Nothing is done in case
// no hook with such id is actually subscribed.
func (ws *webhookService) Unsubscribe(topic, id string) error {
	ws.lock.Lock()
	defer ws.lock.Unlock()

	hooks := ws.hooksByTopic[topic]
	for i, hook := range hooks {
		if hook.ID == id {
			ws.hooksByTopic[topic] = append(hooks[:i], hooks[i+1:]...)
			break
		}
	}
	return nil
}

// Publish makes a POST request to every webhook endpoint subscribed to the
// given topic, concurrently.
func (ws *webhookService) Publish(topic string, message string) error {
	hooks := ws.hooksForTopic(topic)

	eg := &errgroup.Group{}
	for i := range hooks {
		hook := hooks[i]
		eg.Go(func() error { return ws.doRequest(hook, message) })
	}
	return eg.Wait()
}

func (ws *webhookService) hooksForTopic(topic string) []*Webhook {
	ws.lock.RLock()
	defer ws.lock.RUnlock()

	hooks := make([]*Webhook, 0, len(ws.hooksByTopic[topic]))
	hooks = append(hooks, ws.hooksByTopic[topic]...)
	if topic != TopicAll {
		hooks = append(hooks, ws.hooksByTopic[TopicAll]...)
	}
	return hooks
}

func (ws *webhookService) doRequest(hook *Webhook, payload string) error {
	_, err := ws.cb.Execute(func() (interface{}, error) {
		headers := map[string]string{
			"Content-Type": "application/json",
		}
		if hook.IsSecured() {
			token := jwt.New(jwt.SigningMethodHS256)
			secret := []byte(hook.Secret)
			tokenString, _ := token.SignedString(secret)
			headers["Authorization"] = fmt.Sprintf("Bearer %s", tokenString)
		}

		status, resp, err := ws.httpClient.invoke(hook.Endpoint, payload, headers)
		if err != nil {
			return nil, err
		}
		if status != http.StatusOK {
			return nil, fmt.Errorf(resp)
		}
		return nil, nil
	})

	return err
}

func newCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: "webhook",
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests > 20 && failureRatio >= 0.7
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if to == gobreaker.StateOpen {
				log.Warn("webhook endpoints seem down, stop allowing requests")
			}
			if from == gobreaker.StateOpen && to == gobreaker.StateHalfOpen {
				log.Info("checking webhook endpoints status")
			}
			if from == gobreaker.StateHalfOpen && to == gobreaker.StateClosed {
				log.Info("webhook endpoints seem ok, restart allowing requests")
			}
		},
	})
}
