package ports

import (
	"context"
	"time"

	"github.com/nevseti/fincloud-system/internal/core/auth"
	"github.com/nevseti/fincloud-system/internal/core/domain"
	"github.com/nevseti/fincloud-system/internal/core/ledger"
)

// OperationFetcher retrieves operations from the finance service on behalf
// of a caller. bearer is the caller's own token, forwarded unchanged so the
// finance service applies the same scope rules.
type OperationFetcher interface {
	FetchOperations(ctx context.Context, bearer string, branchFilter int) ([]*domain.Operation, error)
}

// SummaryCache stores rendered summaries for a short TTL. A missing entry
// is reported via ok=false, not an error.
type SummaryCache interface {
	Get(ctx context.Context, key string) (*SummaryResult, bool, error)
	Set(ctx context.Context, key string, summary *SummaryResult, ttl time.Duration) error
}

// SummaryResult is the report view: aggregated totals plus the most recent
// operations in the caller's scope, oldest first.
type SummaryResult struct {
	ledger.Summary
	Recent []*domain.Operation `json:"recent"`
}

// SummaryInput carries the parameters of a summary request.
type SummaryInput struct {
	Caller auth.Claims
	// Bearer is the raw token the caller presented, forwarded downstream.
	Bearer          string
	RequestedBranch int
	// RecentLimit caps the recent-operations list; non-positive uses the
	// service default.
	RecentLimit int
}

// ReportService builds scoped financial summaries.
type ReportService interface {
	Summary(ctx context.Context, input SummaryInput) (*SummaryResult, error)
}
