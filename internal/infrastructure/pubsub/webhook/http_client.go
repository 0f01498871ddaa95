package webhookpubsub

import (
	"io"
	"net/http"
	"strings"
	"time"
)

// hookClient is the http.Client used to invoke subscribed endpoints. Every
// invocation is a POST of the JSON event payload, bounded by the configured
// timeout.
type hookClient struct {
	*http.Client
}

func newHookClient(requestTimeout time.Duration) *hookClient {
	return &hookClient{&http.Client{Timeout: requestTimeout}}
}

func (c *hookClient) invoke(
	endpoint, payload string, headers map[string]string,
) (int, string, error) {
	req, err := http.NewRequest("POST", endpoint, strings.NewReader(payload))
	if err != nil {
		return 0, "", err
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	rs, err := c.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer rs.Body.Close()

	body, err := io.ReadAll(rs.Body)
	if err != nil {
		return -1, "", err
	}
	return rs.StatusCode, string(body), nil
}
