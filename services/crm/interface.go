package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/black-sheep-marketing/blacksheep-calendar/models"
)

// bookedTag is stamped on every contact that completes a demo-call booking.
const bookedTag = "demo-call-booked"

// Service records demo-call bookings in the marketing CRM.
type Service interface {
	TagBookedContact(ctx context.Context, booking models.Booking) error
}

// DefaultCRMService posts to the CRM's contact-tagging endpoint. An empty
// base URL disables it so local development needs no CRM account.
type DefaultCRMService struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewDefaultCRMService(baseURL, apiKey string, httpClient *http.Client) *DefaultCRMService {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &DefaultCRMService{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

type tagContactRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Company  string `json:"company,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Tag      string `json:"tag"`
	BookedAt string `json:"bookedAt"`
}

func (c *DefaultCRMService) TagBookedContact(ctx context.Context, booking models.Booking) error {
	if c.baseURL == "" {
		return nil
	}

	payload, err := json.Marshal(tagContactRequest{
		Email:    booking.Email,
		Name:     booking.Name,
		Company:  booking.Company,
		Phone:    booking.Phone,
		Tag:      bookedTag,
		BookedAt: booking.Start.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to encode crm payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/contacts/tags", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("crm tag request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("crm tag request returned status %d", resp.StatusCode)
	}
	return nil
}
