package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: newHTTPClient(baseURL),
	}
}

func (c *Client) GeneratePlan(ctx context.Context, planReq PlanRequest) (*PlanResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	u.Path = "/api/v1/tools/study-planner"

	body, err := json.Marshal(planReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plan request: %w", err)
	}

	slog.DebugContext(ctx, "requesting study plan from agent",
		slog.String("url", u.String()),
		slog.String("topic", planReq.Topic),
		slog.Int("duration_value", planReq.DurationValue),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "failed to send plan request to agent",
			slog.String("url", u.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.ErrorContext(ctx, "unexpected status code from agent planner",
			slog.String("url", u.String()),
			slog.Int("status_code", resp.StatusCode),
		)
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var planResp PlanResponse
	if err := json.Unmarshal(respBody, &planResp); err != nil {
		slog.ErrorContext(ctx, "failed to decode plan response from agent",
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	slog.DebugContext(ctx, "study plan generated",
		slog.Int("plan_items", len(planResp.Plan)),
	)

	return &planResp, nil
}

func (c *Client) SendReminder(ctx context.Context, remReq ReminderRequest) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse base URL: %w", err)
	}
	u.Path = "/api/v1/tools/study-reminder"

	body, err := json.Marshal(remReq)
	if err != nil {
		return "", fmt.Errorf("failed to marshal reminder request: %w", err)
	}

	slog.DebugContext(ctx, "sending reminder through agent",
		slog.String("url", u.String()),
		slog.String("email", remReq.Email),
		slog.String("subtopic", remReq.CurrentSubtopic),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "failed to send reminder request to agent",
			slog.String("url", u.String()),
			slog.String("error", err.Error()),
		)
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.ErrorContext(ctx, "unexpected status code from agent reminder tool",
			slog.String("url", u.String()),
			slog.Int("status_code", resp.StatusCode),
		)
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	var remResp ReminderResponse
	if err := json.Unmarshal(respBody, &remResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	return remResp.Result, nil
}
