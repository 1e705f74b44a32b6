// Package client holds HTTP clients for the services' own peers.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/nevseti/fincloud-system/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// FinanceClient fetches operations from the finance service. The caller's
// bearer token is forwarded unchanged, so scope enforcement happens at the
// finance side with the caller's own identity.
type FinanceClient struct {
	baseURL string
	http    *http.Client
}

func NewFinanceClient(baseURL string) *FinanceClient {
	return &FinanceClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// FetchOperations calls GET /operations, optionally filtered to one branch.
func (c *FinanceClient) FetchOperations(ctx context.Context, bearer string, branchFilter int) ([]*domain.Operation, error) {
	endpoint := c.baseURL + "/operations"
	if branchFilter != domain.BranchAll {
		endpoint += "?branch_id=" + url.QueryEscape(strconv.Itoa(branchFilter))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build finance request: %w", err)
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call finance service: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, domain.ErrUnauthorized
	case http.StatusForbidden:
		return nil, domain.ErrForbidden
	default:
		return nil, fmt.Errorf("finance service returned status %d", resp.StatusCode)
	}

	var operations []*domain.Operation
	if err := json.NewDecoder(resp.Body).Decode(&operations); err != nil {
		return nil, fmt.Errorf("decode finance response: %w", err)
	}
	return operations, nil
}
