package functions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"contractor_estimates/internal/domain/entities"
	"contractor_estimates/internal/domain/wizard"
	"contractor_estimates/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	GenerateEstimatePath = "/generate-estimate"
	MeasurePath          = "/measure"
	SendEstimatePath     = "/send-estimate"

	maxErrorBody = 4 << 10
)

var ErrFunctionsNotConfigured = errors.New("functions base url not configured")

// Client calls the hosted functions (estimate generation, measurement assist,
// estimate mail) as JSON POST endpoints under one base URL.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  *zap.Logger
}

var (
	_ interfaces.IEstimateGenerator  = (*Client)(nil)
	_ interfaces.IMeasurementService = (*Client)(nil)
	_ interfaces.IEstimateMailer     = (*Client)(nil)
)

// NewClient builds a functions client. httpClient may be nil. Per-call deadlines
// come from the caller's context; the client timeout is only a backstop.
func NewClient(baseURL, apiKey string, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    httpClient,
		logger:  logger,
	}
}

type sendEstimateRequest struct {
	LeadID       string                     `json:"leadId"`
	ContractorID string                     `json:"contractorId"`
	Contact      entities.ContactInfo       `json:"contact"`
	Estimate     *entities.EstimateDocument `json:"estimate"`
}

func (c *Client) GenerateEstimate(ctx context.Context, req interfaces.GenerateEstimateRequest) (entities.EstimateDocument, error) {
	var doc entities.EstimateDocument
	if err := c.post(ctx, GenerateEstimatePath, req, &doc); err != nil {
		return entities.EstimateDocument{}, err
	}
	return doc, nil
}

func (c *Client) Measure(ctx context.Context, req entities.MeasurementRequest) (entities.MeasurementResult, error) {
	var res entities.MeasurementResult
	if err := c.post(ctx, MeasurePath, req, &res); err != nil {
		return entities.MeasurementResult{}, err
	}
	return res, nil
}

func (c *Client) SendEstimate(ctx context.Context, lead entities.Lead) error {
	return c.post(ctx, SendEstimatePath, sendEstimateRequest{
		LeadID:       lead.ID,
		ContractorID: lead.ContractorID,
		Contact:      lead.Contact,
		Estimate:     lead.Estimate,
	}, nil)
}

// post sends body as JSON and decodes a 2xx response into out (when non-nil).
// Failures are classified into the wizard taxonomy: 404 → ErrNotFound,
// 408/504 and deadlines → ErrTimeout, anything else → ErrNetwork.
func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	if c.baseURL == "" {
		return fmt.Errorf("%w: %w", wizard.ErrNetwork, ErrFunctionsNotConfigured)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("[functions][client] request failed",
			zap.String("path", path),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w: %s: %v", wizard.ErrTimeout, path, err)
		}
		return fmt.Errorf("%w: %s: %v", wizard.ErrNetwork, path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("[functions][client] response",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return classifyStatus(path, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s: decode response: %v", wizard.ErrNetwork, path, err)
	}
	return nil
}

func classifyStatus(path string, status int, body string) error {
	switch status {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s returned %d", wizard.ErrNotFound, path, status)
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %s returned %d", wizard.ErrTimeout, path, status)
	default:
		return fmt.Errorf("%w: %s returned %d: %s", wizard.ErrNetwork, path, status, body)
	}
}
