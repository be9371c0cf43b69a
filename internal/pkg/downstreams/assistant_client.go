package downstreams

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/git-abhijeet/credit-risk/internal/pkg/consts"
	"github.com/git-abhijeet/credit-risk/internal/pkg/logger"
)

// AssistantClient proxies chat messages to the external assistant API. The
// assistant is a slower upstream than the model service, so it runs under
// its own longer timeout.
type AssistantClient struct {
	url           string
	apiKey        string
	defaultUserID string
	timeout       time.Duration
	httpClient    *http.Client
}

func NewAssistantClient(url, apiKey, defaultUserID string, timeout time.Duration) *AssistantClient {
	return &AssistantClient{
		url:           url,
		apiKey:        apiKey,
		defaultUserID: defaultUserID,
		timeout:       timeout,
		httpClient:    &http.Client{},
	}
}

type assistantRequest struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// assistantResponse tolerates the several reply field names upstream
// versions have used.
type assistantResponse struct {
	Reply   string `json:"reply"`
	Answer  string `json:"answer"`
	Output  string `json:"output"`
	Text    string `json:"text"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Ask forwards a message and normalizes whatever comes back to a single
// reply string.
func (c *AssistantClient) Ask(ctx context.Context, message, userID string) (string, error) {
	if userID == "" {
		userID = c.defaultUserID
	}

	body, err := json.Marshal(assistantRequest{Message: message, UserID: userID})
	if err != nil {
		return "", err
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error(ctx, "assistant : upstream unreachable: %v", err)
		return "", consts.ErrorAssistantUpstreamFailed
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", consts.ErrorAssistantUpstreamFailed
	}

	var data assistantResponse
	contentType := resp.Header.Get("Content-Type")
	if strings.Contains(contentType, "application/json") {
		if err := json.Unmarshal(respBody, &data); err != nil {
			data = assistantResponse{}
		}
	} else {
		data = assistantResponse{Reply: string(respBody)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Error(ctx, "assistant : upstream returned status %d", resp.StatusCode)
		return "", consts.ErrorAssistantUpstreamFailed
	}

	for _, candidate := range []string{data.Reply, data.Answer, data.Output, data.Text, data.Message} {
		if candidate != "" {
			return candidate, nil
		}
	}
	return "", nil
}
