package catalogapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"aquarium-catalog/internal/domain/species"
	"aquarium-catalog/internal/platform/httpclient"
	"aquarium-catalog/internal/ports/catalog"
)

const (
	DefaultBaseURL = "http://127.0.0.1:5000"

	pathSearch = "/api/search"
)

var _ catalog.Catalog = (*Client)(nil)

// ErrNullBody: el backend respondió 2xx con un JSON null.
var ErrNullBody = errors.New("catalogapi: response body is null")

// Client implementa catalog.Catalog contra el backend REST.
type Client struct {
	http *httpclient.Client
}

func NewClient(hc *httpclient.Client) *Client {
	return &Client{http: hc}
}

func listPath(kind species.Kind) string {
	// el backend pluraliza distinto cada familia
	if kind == species.KindFish {
		return "/api/fishes"
	}
	return "/api/" + kind.Noun() + "s"
}

func detailPath(kind species.Kind, name string) string {
	return "/api/" + kind.Noun() + "/" + url.PathEscape(name)
}

func (c *Client) ListSpecies(ctx context.Context, kind species.Kind) ([]species.Summary, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown species kind %q", kind)
	}

	// "[]" decodifica a slice vacío no-nil; solo null deja nil
	var out []species.Summary
	if err := c.http.GetJSON(ctx, listPath(kind), &out); err != nil {
		return nil, upstreamError(err, fmt.Sprintf("Could not load %s list.", kind.Noun()))
	}
	if out == nil {
		return nil, ErrNullBody
	}
	return out, nil
}

func (c *Client) GetFish(ctx context.Context, name string) (species.Fish, error) {
	return getDetail[species.Fish](ctx, c, species.KindFish, name)
}

func (c *Client) GetPlant(ctx context.Context, name string) (species.Plant, error) {
	return getDetail[species.Plant](ctx, c, species.KindPlant, name)
}

// getDetail decodifica en *T para distinguir null de un objeto.
func getDetail[T any](ctx context.Context, c *Client, kind species.Kind, name string) (T, error) {
	var zero T
	if name == "" {
		return zero, errors.New("species name required")
	}

	var out *T
	err := c.http.GetJSON(ctx, detailPath(kind, name), &out)
	switch {
	case httpclient.StatusOf(err) == http.StatusNotFound:
		return zero, species.ErrNotFound
	case err != nil:
		return zero, upstreamError(err, fmt.Sprintf("Could not load %s details.", kind.Noun()))
	case out == nil:
		return zero, ErrNullBody
	}
	return *out, nil
}

type searchRequest struct {
	Query string `json:"query"`
}

// Search hace POST /api/search. En un no-2xx el mensaje es el campo
// "response" del body si existe, si no el body crudo.
func (c *Client) Search(ctx context.Context, query string) (species.SearchResult, error) {
	var out *species.SearchResult
	err := c.http.PostJSON(ctx, pathSearch, searchRequest{Query: query}, &out)
	if err == nil {
		if out == nil {
			return species.SearchResult{}, ErrNullBody
		}
		return *out, nil
	}

	var he *httpclient.HTTPError
	if errors.As(err, &he) {
		msg, ok := he.JSONField("response")
		if !ok {
			msg = he.Body
		}
		return species.SearchResult{}, &species.APIError{Status: he.StatusCode, Message: msg}
	}
	return species.SearchResult{}, err
}

// upstreamError traduce *HTTPError a *species.APIError con un mensaje fijo;
// errores de red/decode se devuelven tal cual.
func upstreamError(err error, msg string) error {
	var he *httpclient.HTTPError
	if errors.As(err, &he) {
		return &species.APIError{Status: he.StatusCode, Message: msg}
	}
	return err
}
