package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"aquarium-catalog/internal/platform/logger"
)

const (
	// MaxBodyBytes limita lo que se lee de cualquier respuesta.
	MaxBodyBytes = 1 << 20
)

// Config del cliente. Timeout 0 = sin timeout propio (solo el ctx del request).
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	Transport http.RoundTripper
	UserAgent string
	Logger    logger.Logger
}

// Client envuelve *http.Client con helpers JSON para los adapters.
type Client struct {
	HTTP      *http.Client
	BaseURL   string // si está seteado, DoJSON acepta paths relativos
	userAgent string
	log       logger.Logger
}

// New crea un Client a partir de Config. Valida BaseURL si viene.
func New(cfg Config) (*Client, error) {
	tr := cfg.Transport
	if tr == nil {
		tr = http.DefaultTransport
	}
	c := &Client{
		HTTP: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: tr,
		},
		userAgent: strings.TrimSpace(cfg.UserAgent),
		log:       cfg.Logger,
	}
	if c.log == nil {
		c.log = logger.Nop()
	}

	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		return c, nil
	}
	u, err := url.ParseRequestURI(base)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url: unsupported scheme %q", u.Scheme)
	}
	c.BaseURL = strings.TrimRight(base, "/")
	return c, nil
}

// HTTPError representa una respuesta no-2xx.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("http error: status=%d body=%s", e.StatusCode, e.Body)
}

// JSONField devuelve body[key] si el body es un objeto JSON y el campo es string.
func (e *HTTPError) JSONField(key string) (string, bool) {
	var m map[string]any
	if err := json.Unmarshal([]byte(e.Body), &m); err != nil {
		return "", false
	}
	s, ok := m[key].(string)
	return s, ok
}

// StatusOf devuelve el status de un *HTTPError envuelto en err (0 si no hay).
func StatusOf(err error) int {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.StatusCode
	}
	return 0
}

// GetJSON es DoJSON con GET y sin body.
func (c *Client) GetJSON(ctx context.Context, pathOrURL string, out any) error {
	return c.DoJSON(ctx, http.MethodGet, pathOrURL, nil, nil, out)
}

// PostJSON es DoJSON con POST.
func (c *Client) PostJSON(ctx context.Context, pathOrURL string, in, out any) error {
	return c.DoJSON(ctx, http.MethodPost, pathOrURL, nil, in, out)
}

// DoJSON hace un request JSON.
// - pathOrURL: URL absoluta o path relativo a BaseURL
// - in: body (nil => sin body)
// - out: destino del decode (nil => se ignora el body; si no, body vacío es error)
// Status no-2xx => *HTTPError con el body (recortado).
func (c *Client) DoJSON(
	ctx context.Context,
	method string,
	pathOrURL string,
	headers map[string]string,
	in any,
	out any,
) error {
	if c == nil || c.HTTP == nil {
		return errors.New("httpclient: nil client")
	}

	fullURL, err := c.resolveURL(pathOrURL)
	if err != nil {
		return err
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("httpclient: marshal json: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return fmt.Errorf("httpclient: new request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	for k, v := range headers {
		if strings.TrimSpace(k) == "" {
			continue
		}
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.log.Debug("upstream request failed", map[string]any{
			"method": method,
			"url":    fullURL,
			"error":  err.Error(),
		})
		return fmt.Errorf("httpclient: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes))
	if err != nil {
		return fmt.Errorf("httpclient: read body: %w", err)
	}

	c.log.Debug("upstream request", map[string]any{
		"method":     method,
		"url":        fullURL,
		"status":     resp.StatusCode,
		"latency_ms": time.Since(start).Milliseconds(),
	})

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	if out == nil {
		return nil
	}
	// body vacío con destino => error de parse, igual que cualquier JSON inválido
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("httpclient: unmarshal json: %w", err)
	}
	return nil
}

func (c *Client) resolveURL(pathOrURL string) (string, error) {
	pathOrURL = strings.TrimSpace(pathOrURL)
	if pathOrURL == "" {
		return "", errors.New("httpclient: empty url")
	}

	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		return pathOrURL, nil
	}

	if c.BaseURL == "" {
		return "", errors.New("httpclient: relative path requires BaseURL")
	}

	if !strings.HasPrefix(pathOrURL, "/") {
		pathOrURL = "/" + pathOrURL
	}
	return c.BaseURL + pathOrURL, nil
}
