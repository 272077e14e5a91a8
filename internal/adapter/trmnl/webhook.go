// Package trmnl pushes merge variables to a TRMNL private plugin webhook.
package trmnl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "trmnl-weather/1.0"

// Webhook posts merge variables to https://trmnl.com/api/custom_plugins/{uuid}.
type Webhook struct {
	client     *resty.Client
	pluginUUID string
	logger     *slog.Logger
}

// NewWebhook creates a webhook client for the plugin identified by pluginUUID.
// Server errors are retried; TRMNL rate-limit responses are not.
func NewWebhook(baseURL, pluginUUID string, timeout time.Duration, logger *slog.Logger) *Webhook {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("User-Agent", userAgent).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return err != nil || resp.StatusCode() >= http.StatusInternalServerError
		})

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logger.Debug("trmnl webhook response",
			"status", resp.StatusCode(),
			"duration", resp.Time(),
			"bytes", len(resp.Body()),
		)
		return nil
	})

	return &Webhook{
		client:     client,
		pluginUUID: pluginUUID,
		logger:     logger,
	}
}

type payload struct {
	MergeVariables map[string]any `json:"merge_variables"`
}

// Push sends mergeVars to the plugin. Any status of 400 or above is an error
// carrying the status and response body.
func (w *Webhook) Push(ctx context.Context, mergeVars map[string]any) error {
	resp, err := w.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload{MergeVariables: mergeVars}).
		Post("/" + url.PathEscape(w.pluginUUID))
	if err != nil {
		return fmt.Errorf("trmnl webhook request: %w", err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("trmnl webhook error: status %d: %s", resp.StatusCode(), resp.String())
	}
	w.logger.Info("pushed merge variables to trmnl", "variables", len(mergeVars))
	return nil
}
