package ml

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"healthdesk/internal/models"
)

type metadataResponse struct {
	Version string   `json:"version"`
	Classes []string `json:"classes"`
}

type predictRequest struct {
	Features models.FeatureRecord `json:"features"`
}

// RemoteClassifier calls an external model server over HTTP. Requests are
// never retried.
type RemoteClassifier struct {
	httpClient *resty.Client

	mu      sync.RWMutex
	version string
	classes []string
	loaded  bool
}

// NewRemoteClassifier builds a client for baseURL. A zero timeout leaves the
// request unbounded. version, when set, overrides the server's metadata.
func NewRemoteClassifier(baseURL string, timeout time.Duration, version string) *RemoteClassifier {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &RemoteClassifier{httpClient: client, version: version}
}

// Refresh fetches the server metadata and marks the classifier loaded.
func (c *RemoteClassifier) Refresh(ctx context.Context) error {
	var meta metadataResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&meta).
		Get("/metadata")
	if err != nil {
		return fmt.Errorf("classifier metadata request failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("classifier metadata returned %d: %s", resp.StatusCode(), strings.TrimSpace(resp.String()))
	}
	if len(meta.Classes) == 0 {
		return fmt.Errorf("classifier metadata lists no classes")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.version == "" {
		c.version = meta.Version
	}
	c.classes = append([]string(nil), meta.Classes...)
	c.loaded = true
	return nil
}

func (c *RemoteClassifier) Version() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

func (c *RemoteClassifier) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

func (c *RemoteClassifier) Predict(ctx context.Context, features models.FeatureRecord) (*Output, error) {
	var out Output
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(predictRequest{Features: features}).
		SetResult(&out).
		Post("/predict")
	if err != nil {
		return nil, fmt.Errorf("classifier request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("classifier returned %d: %s", resp.StatusCode(), strings.TrimSpace(resp.String()))
	}

	c.mu.RLock()
	classes := c.classes
	c.mu.RUnlock()
	if classes == nil {
		return &out, nil
	}
	return alignClasses(&out, classes)
}

// alignClasses reorders out to the label order announced by the metadata. A
// response whose label set differs is rejected.
func alignClasses(out *Output, classes []string) (*Output, error) {
	if len(out.Classes) != len(classes) || len(out.Probabilities) != len(out.Classes) {
		return nil, fmt.Errorf("classifier returned classes %v, expected %v", out.Classes, classes)
	}
	index := make(map[string]int, len(out.Classes))
	for i, class := range out.Classes {
		index[class] = i
	}
	if _, ok := index[out.Label]; !ok {
		return nil, fmt.Errorf("classifier returned unknown label %q, expected one of %v", out.Label, classes)
	}

	aligned := &Output{
		Label:         out.Label,
		Classes:       append([]string(nil), classes...),
		Probabilities: make([]float64, len(classes)),
	}
	for i, class := range classes {
		j, ok := index[class]
		if !ok {
			return nil, fmt.Errorf("classifier returned classes %v, expected %v", out.Classes, classes)
		}
		aligned.Probabilities[i] = out.Probabilities[j]
	}
	return aligned, nil
}
