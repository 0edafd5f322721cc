package clients

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	json "github.com/goccy/go-json"

	"moviebook/internal/models"
	"moviebook/internal/providers"
	"moviebook/internal/structures"
)

type MovieClientInterface interface {
	MovieWithID(ctx context.Context, id string) (json.RawMessage, error)
}

// MovieClient queries the movie service's GraphQL endpoint.
type MovieClient struct {
	baseURL string
	client  *http.Client
	logger  providers.Logger
}

func NewMovieClient(conf *structures.Config, logger providers.Logger) MovieClientInterface {
	timeout := conf.Peers.Timeout
	if timeout <= 0 {
		timeout = defaultPeerTimeout
	}
	return &MovieClient{
		baseURL: conf.Peers.MovieURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

const movieWithIDQuery = `query ($id: String!) {
  movie_with_id(_id: $id) {
    title
    rating
    actors {
      firstname
      lastname
      birthyear
    }
  }
}`

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// MovieWithID returns the movie details payload for one movie id, or
// models.ErrMovieNotFound when the catalog has no such movie.
func (c *MovieClient) MovieWithID(ctx context.Context, id string) (json.RawMessage, error) {
	payload, err := json.Marshal(graphqlRequest{
		Query:     movieWithIDQuery,
		Variables: map[string]any{"id": id},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/graphql", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: movie service answered %d", models.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var gr graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrUpstreamUnavailable, err)
	}
	if len(gr.Errors) > 0 {
		return nil, fmt.Errorf("movie query failed: %s", gr.Errors[0].Message)
	}

	var data struct {
		Movie json.RawMessage `json:"movie_with_id"`
	}
	if err := json.Unmarshal(gr.Data, &data); err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrUpstreamUnavailable, err)
	}
	if len(data.Movie) == 0 || string(data.Movie) == "null" {
		return nil, models.ErrMovieNotFound
	}
	return data.Movie, nil
}
