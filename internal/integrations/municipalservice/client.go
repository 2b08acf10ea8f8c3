package municipalservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-TramitesService/internal/domain"
)

// Logger is the subset of the application logger the client uses
type Logger interface {
	Info(format string, v ...any)
	Error(format string, v ...any)
}

// Client is an HTTP client for the municipal-data API (served by the auth
// service, which aggregates the simulated municipal registries).
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a municipal-data client with the given timeout
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetRecordSnapshot fetches the citizen's municipal record by RUT and
// converts it into a point-in-time snapshot.
func (c *Client) GetRecordSnapshot(ctx context.Context, rut string) (*domain.CitizenRecordSnapshot, error) {
	url := fmt.Sprintf("%s/internal/usuarios/%s/datos-municipales", c.baseURL, rut)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid RUT format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrRecordNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var rec municipalRecord
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return toSnapshot(&rec), nil
}

// GetRecordSnapshotWithGracefulDegradation fetches the snapshot, downgrading
// transport and decoding failures to ErrServiceDegraded so the caller can
// choose to proceed without a record check. A missing record is still
// reported as ErrRecordNotFound.
func (c *Client) GetRecordSnapshotWithGracefulDegradation(ctx context.Context, rut string) (*domain.CitizenRecordSnapshot, error) {
	c.log.Info("Fetching municipal record for rut=%s", rut)

	snapshot, err := c.GetRecordSnapshot(ctx, rut)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			c.log.Info("No municipal record found for rut=%s", rut)
			return nil, err
		}

		c.log.Error("Municipal databases unavailable, applying graceful degradation for rut=%s: %v", rut, err)
		return nil, fmt.Errorf("%w: rut=%s, error=%v", ErrServiceDegraded, rut, err)
	}

	c.log.Info("Municipal record fetched for rut=%s (%d pending court fines)", rut, snapshot.PendingCourtFines())
	return snapshot, nil
}
