package termstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// NewClient creates a Store backed by the HTTPS API of the
// translation-management service.
func NewClient(cfg Config) (Store, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("api token is required")
	}
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("project id is required")
	}

	// Ensure timeout defaults if not set
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Create custom transport with strict timeouts
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &httpStore{
		base:    strings.TrimRight(cfg.Endpoint, "/"),
		token:   cfg.Token,
		project: cfg.ProjectID,
		http:    &http.Client{Transport: transport},
	}, nil
}

type httpStore struct {
	base    string
	token   string
	project string
	http    *http.Client
}

// Wire schema for the versioned JSON API. Counts and the export URL live
// under a top-level "data" field.
type termsPayload struct {
	Data struct {
		Terms []struct {
			Term string `json:"term"`
		} `json:"terms"`
	} `json:"data"`
}

type countsPayload struct {
	Data struct {
		Parsed  int `json:"parsed"`
		Added   int `json:"added"`
		Deleted int `json:"deleted"`
	} `json:"data"`
}

type exportPayload struct {
	Data struct {
		URL string `json:"url"`
	} `json:"data"`
}

func (s *httpStore) ListTerms(ctx context.Context, language string) (KeySet, error) {
	const op = "list terms"

	url := fmt.Sprintf("%s/api/v2/projects/%s/terms?language=%s", s.base, s.project, language)
	body, err := s.do(ctx, op, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	var payload termsPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &RemoteError{Op: op, Detail: fmt.Sprintf("malformed response: %v", err)}
	}

	set := make(KeySet, len(payload.Data.Terms))
	for _, t := range payload.Data.Terms {
		set.Add(t.Term)
	}
	return set, nil
}

func (s *httpStore) AddTerms(ctx context.Context, keys KeySet) (MutationCounts, error) {
	return s.mutateTerms(ctx, "add terms", http.MethodPost, keys, func(p countsPayload) int {
		return p.Data.Added
	})
}

func (s *httpStore) DeleteTerms(ctx context.Context, keys KeySet) (MutationCounts, error) {
	return s.mutateTerms(ctx, "delete terms", http.MethodDelete, keys, func(p countsPayload) int {
		return p.Data.Deleted
	})
}

// mutateTerms sends the keys in sorted order so identical sets always produce
// identical request bodies.
func (s *httpStore) mutateTerms(ctx context.Context, op, method string, keys KeySet, succeeded func(countsPayload) int) (MutationCounts, error) {
	request := struct {
		Terms []string `json:"terms"`
	}{Terms: keys.Sorted()}

	reqBody, err := json.Marshal(request)
	if err != nil {
		return MutationCounts{}, fmt.Errorf("failed to encode %s request: %w", op, err)
	}

	url := fmt.Sprintf("%s/api/v2/projects/%s/terms", s.base, s.project)
	body, err := s.do(ctx, op, method, url, reqBody)
	if err != nil {
		return MutationCounts{}, err
	}

	var payload countsPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return MutationCounts{}, &RemoteError{Op: op, Detail: fmt.Sprintf("malformed response: %v", err)}
	}

	return MutationCounts{
		Requested: keys.Len(),
		Parsed:    payload.Data.Parsed,
		Succeeded: succeeded(payload),
	}, nil
}

func (s *httpStore) RequestExport(ctx context.Context, language string, format ExportFormat) (string, error) {
	const op = "request export"

	request := struct {
		Language string `json:"language"`
		Format   string `json:"format"`
	}{Language: language, Format: string(format)}

	reqBody, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s request: %w", op, err)
	}

	url := fmt.Sprintf("%s/api/v2/projects/%s/exports", s.base, s.project)
	body, err := s.do(ctx, op, http.MethodPost, url, reqBody)
	if err != nil {
		return "", err
	}

	var payload exportPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", &RemoteError{Op: op, Detail: fmt.Sprintf("malformed response: %v", err)}
	}
	if payload.Data.URL == "" {
		return "", &RemoteError{Op: op, Detail: "response carries no download url"}
	}
	return payload.Data.URL, nil
}

func (s *httpStore) FetchExport(ctx context.Context, url string) ([]byte, error) {
	// The download URL is pre-signed by the service; no auth header here.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build fetch request: %w", err)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, &TransportError{Op: "fetch export", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RemoteError{Op: "fetch export", Status: resp.StatusCode, Detail: "export url unavailable"}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: "fetch export", Err: err}
	}
	return data, nil
}

// do performs one authenticated API round-trip and returns the raw body for
// 2xx responses. Status and body handling is identical across endpoints.
func (s *httpStore) do(ctx context.Context, op, method, url string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := strings.TrimSpace(string(respBody))
		if len(detail) > 200 {
			detail = detail[:200]
		}
		return nil, &RemoteError{Op: op, Status: resp.StatusCode, Detail: detail}
	}

	return respBody, nil
}
