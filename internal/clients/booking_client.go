package clients

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	json "github.com/goccy/go-json"

	"moviebook/internal/models"
	"moviebook/internal/providers"
	"moviebook/internal/structures"
)

const defaultPeerTimeout = 5 * time.Second

type BookingClientInterface interface {
	BookingsByUser(ctx context.Context, userid string) (*models.BookingRecord, error)
	AddBooking(ctx context.Context, userid, date, movieid string) (int, []byte, error)
}

// BookingClient lets the user facade talk to the booking service.
type BookingClient struct {
	baseURL string
	client  *http.Client
	logger  providers.Logger
}

func NewBookingClient(conf *structures.Config, logger providers.Logger) BookingClientInterface {
	timeout := conf.Peers.Timeout
	if timeout <= 0 {
		timeout = defaultPeerTimeout
	}
	return &BookingClient{
		baseURL: conf.Peers.BookingURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *BookingClient) BookingsByUser(ctx context.Context, userid string) (*models.BookingRecord, error) {
	endpoint := c.baseURL + "/bookings/" + url.PathEscape(userid)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrUpstreamUnavailable, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var rec models.BookingRecord
		if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
			return nil, fmt.Errorf("%w: %s", models.ErrUpstreamUnavailable, err)
		}
		return &rec, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, models.ErrUserNotFound
	default:
		return nil, fmt.Errorf("%w: booking service answered %d", models.ErrUpstreamUnavailable, resp.StatusCode)
	}
}

// AddBooking forwards a booking request and relays the raw status and
// body so the facade can pass the booking service's verdict through
// unchanged.
func (c *BookingClient) AddBooking(ctx context.Context, userid, date, movieid string) (int, []byte, error) {
	payload, err := json.Marshal(map[string]string{"date": date, "movieid": movieid})
	if err != nil {
		return 0, nil, err
	}

	endpoint := c.baseURL + "/bookings/" + url.PathEscape(userid)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %s", models.ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %s", models.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %s", models.ErrUpstreamUnavailable, err)
	}
	return resp.StatusCode, body, nil
}
