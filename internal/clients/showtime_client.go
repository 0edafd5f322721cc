package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"time"

	json "github.com/goccy/go-json"

	"moviebook/internal/models"
	"moviebook/internal/providers"
	"moviebook/internal/services"
	"moviebook/internal/structures"
)

const defaultOracleTimeout = 3 * time.Second

// ShowtimeClient is the availability oracle: one fresh GET against the
// showtime service per check, bounded by the configured timeout. No
// caching and no retries — showtimes change between calls and a stale
// answer is worse than a slow one.
type ShowtimeClient struct {
	baseURL string
	client  *http.Client
	logger  providers.Logger
}

func NewShowtimeClient(conf *structures.Config, logger providers.Logger) services.AvailabilityOracle {
	timeout := conf.Oracle.Timeout
	if timeout <= 0 {
		timeout = defaultOracleTimeout
	}
	return &ShowtimeClient{
		baseURL: conf.Oracle.BaseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type showtimeResponse struct {
	Date   string   `json:"date"`
	Movies []string `json:"movies"`
}

// CheckAvailability resolves the schedule for date and tests movieid
// membership. Transport errors, non-2xx answers and unknown dates all
// map to models.ErrOracleUnreachable — never silently to "available".
func (c *ShowtimeClient) CheckAvailability(ctx context.Context, date, movieid string) error {
	endpoint := c.baseURL + "/showmovies/" + url.PathEscape(date)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: %s", models.ErrOracleUnreachable, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", models.ErrOracleUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: showtime service answered %d for date %s", models.ErrOracleUnreachable, resp.StatusCode, date)
	}

	var st showtimeResponse
	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		return fmt.Errorf("%w: %s", models.ErrOracleUnreachable, err)
	}

	if !slices.Contains(st.Movies, movieid) {
		return models.ErrMovieUnavailable
	}
	return nil
}
