package controllers

import (
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/graphql-go/graphql"

	"moviebook/internal/models"
	"moviebook/internal/providers"
	"moviebook/internal/services"
)

// MovieController exposes the movie catalog as a GraphQL endpoint:
// queries by id, title, director and rating, cast resolution through
// the actor store, and mutations that rewrite the catalog snapshot.
type MovieController struct {
	logger  providers.Logger
	service services.MovieServiceInterface
	schema  graphql.Schema
}

func NewMovieController(logger providers.Logger, service services.MovieServiceInterface) (*MovieController, error) {
	mc := &MovieController{
		logger:  logger,
		service: service,
	}

	actorType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Actor",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.String},
			"firstname": &graphql.Field{Type: graphql.String},
			"lastname":  &graphql.Field{Type: graphql.String},
			"birthyear": &graphql.Field{Type: graphql.Int},
		},
	})

	movieType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Movie",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: graphql.String},
			"title":    &graphql.Field{Type: graphql.String},
			"director": &graphql.Field{Type: graphql.String},
			"rating":   &graphql.Field{Type: graphql.Float},
			"actors": &graphql.Field{
				Type: graphql.NewList(actorType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					movie, ok := p.Source.(*models.Movie)
					if !ok {
						return nil, nil
					}
					return mc.service.ActorsFor(movie.ID), nil
				},
			},
		},
	})

	movieInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "MovieInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"id":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"title":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"director": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"rating":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"all_movies": &graphql.Field{
				Type: graphql.NewList(movieType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return mc.service.AllMovies(), nil
				},
			},
			"movie_with_id": &graphql.Field{
				Type: movieType,
				Args: graphql.FieldConfigArgument{
					"_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					movie, err := mc.service.MovieWithID(p.Args["_id"].(string))
					if err != nil {
						// Unknown id resolves to null, like the lookup
						// endpoints of the other services.
						return nil, nil
					}
					return movie, nil
				},
			},
			"movie_with_title": &graphql.Field{
				Type: graphql.NewList(movieType),
				Args: graphql.FieldConfigArgument{
					"_title": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return mc.service.MovieWithTitle(p.Args["_title"].(string)), nil
				},
			},
			"movie_with_director": &graphql.Field{
				Type: graphql.NewList(movieType),
				Args: graphql.FieldConfigArgument{
					"_director": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return mc.service.MovieWithDirector(p.Args["_director"].(string)), nil
				},
			},
			"movie_with_rating": &graphql.Field{
				Type: graphql.NewList(movieType),
				Args: graphql.FieldConfigArgument{
					"_rating": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return mc.service.MovieWithRating(p.Args["_rating"].(float64))
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"update_movie_rate": &graphql.Field{
				Type: movieType,
				Args: graphql.FieldConfigArgument{
					"_id":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"_rate": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return mc.service.UpdateRate(p.Args["_id"].(string), p.Args["_rate"].(float64))
				},
			},
			"add_movie": &graphql.Field{
				Type: movieType,
				Args: graphql.FieldConfigArgument{
					"movie_input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(movieInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input, ok := p.Args["movie_input"].(map[string]interface{})
					if !ok {
						return nil, models.ErrInvalidInput
					}
					movie := &models.Movie{
						ID:       input["id"].(string),
						Title:    input["title"].(string),
						Director: input["director"].(string),
						Rating:   input["rating"].(float64),
					}
					return mc.service.AddMovie(movie)
				},
			},
			"delete_movie": &graphql.Field{
				Type: movieType,
				Args: graphql.FieldConfigArgument{
					"_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return mc.service.DeleteMovie(p.Args["_id"].(string))
				},
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
	if err != nil {
		return nil, err
	}
	mc.schema = schema
	return mc, nil
}

type graphqlPayload struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

func (mc *MovieController) GraphQL(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload graphqlPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         mc.schema,
		RequestString:  payload.Query,
		OperationName:  payload.OperationName,
		VariableValues: payload.Variables,
		Context:        r.Context(),
	})

	status := http.StatusOK
	if result.HasErrors() {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, result)
}
