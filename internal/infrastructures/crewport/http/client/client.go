package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	derr "github.com/CrewShift/roster-adapter/internal/domain/errors"
	"github.com/CrewShift/roster-adapter/internal/infrastructures/crewport/dto"
)

type Client struct {
	scheduleURL string
	httpClient  *http.Client
}

func NewClient(scheduleURL string, httpClient *http.Client) *Client {
	return &Client{
		scheduleURL: scheduleURL,
		httpClient:  httpClient,
	}
}

// GetSchedule posts the fixed userId payload and normalizes the two response
// shapes the portal is known to serve: a bare DayRecord array, or an object
// wrapping it under "schedule". Anything else is a format error.
func (c *Client) GetSchedule(ctx context.Context, userID string) ([]dto.DayRecord, error) {
	payload, err := json.Marshal(dto.GetScheduleRequest{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.scheduleURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: do request: %v", derr.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
			return nil, fmt.Errorf("%w: unexpected status: %s", derr.ErrSourceUnavailable, resp.Status)
		}
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", derr.ErrSourceUnavailable, err)
	}

	return decodeSchedule(body)
}

func decodeSchedule(body []byte) ([]dto.DayRecord, error) {
	var days []dto.DayRecord
	if err := json.Unmarshal(body, &days); err == nil && days != nil {
		return days, nil
	}

	var wrapped dto.GetScheduleResponse
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Schedule != nil {
		return wrapped.Schedule, nil
	}

	return nil, fmt.Errorf("%w: response is neither a schedule array nor a schedule object", derr.ErrBadRosterFormat)
}
