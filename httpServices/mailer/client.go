package mailer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"car-service-booking/logger"
)

const defaultBaseURL = "https://api.resend.com"

// Client sends transactional email through a Resend-compatible API. When no
// API key is configured the client logs and skips sends instead of failing.
type Client struct {
	baseURL    string
	apiKey     string
	from       string
	httpClient *http.Client
}

// NewClient builds a mail client from RESEND_API_KEY, RESEND_BASE_URL and
// MAIL_FROM environment variables.
func NewClient() *Client {
	base := strings.TrimRight(os.Getenv("RESEND_BASE_URL"), "/")
	if base == "" {
		base = defaultBaseURL
	}
	from := os.Getenv("MAIL_FROM")
	if from == "" {
		from = "Car Service <noreply@carservice.local>"
	}
	return &Client{
		baseURL:    base,
		apiKey:     os.Getenv("RESEND_API_KEY"),
		from:       from,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Send delivers one HTML email. Failures are returned, not retried.
func (c *Client) Send(to, subject, htmlBody string) error {
	if c.apiKey == "" {
		logger.Warning(fmt.Sprintf("Email skipped (no API key configured): %s to %s", subject, to))
		return nil
	}

	payload := SendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		HTML:    htmlBody,
	}

	reqBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/emails", bytes.NewBuffer(reqBody))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("api error: status=%d body=%s", resp.StatusCode, string(body))
	}

	var sendResp SendEmailResponse
	if err := json.Unmarshal(body, &sendResp); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	logger.Info(fmt.Sprintf("Email sent: %s to %s (id=%s)", subject, to, sendResp.ID))
	return nil
}

// SendInvoice sends the booking invoice email.
func (c *Client) SendInvoice(to string, data InvoiceData) error {
	subject := fmt.Sprintf("Booking Confirmed — Invoice for Booking #%d", data.BookingID)
	return c.Send(to, subject, RenderInvoice(data))
}

// SendCancellation sends the booking cancellation email.
func (c *Client) SendCancellation(to string, data CancellationData) error {
	subject := fmt.Sprintf("Booking #%d Cancelled", data.BookingID)
	return c.Send(to, subject, RenderCancellation(data))
}

// SendCompletion sends the service-completed email.
func (c *Client) SendCompletion(to string, data CompletionData) error {
	subject := fmt.Sprintf("Your Car is Ready — Booking #%d", data.BookingID)
	return c.Send(to, subject, RenderCompletion(data))
}
