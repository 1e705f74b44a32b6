package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/nevseti/fincloud-system/internal/core/auth"
	"github.com/nevseti/fincloud-system/internal/core/domain"
	"github.com/nevseti/fincloud-system/internal/core/ledger"
	"github.com/nevseti/fincloud-system/internal/core/ports"
)

const defaultRecentLimit = 10

// ReportService builds scoped financial summaries. Operations are fetched
// from the finance service with the caller's own token, so the scope rules
// are enforced twice: here before the call, and again downstream. Rendered
// summaries are cached briefly per caller scope.
type ReportService struct {
	fetcher  ports.OperationFetcher
	cache    ports.SummaryCache
	cacheTTL time.Duration
	logger   zerolog.Logger
}

func NewReportService(fetcher ports.OperationFetcher, cache ports.SummaryCache, cacheTTL time.Duration, logger zerolog.Logger) *ReportService {
	if cacheTTL <= 0 {
		cacheTTL = 30 * time.Second
	}
	return &ReportService{fetcher: fetcher, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// Summary aggregates the operations visible to the caller and attaches the
// most recent ones, oldest first.
func (s *ReportService) Summary(ctx context.Context, input ports.SummaryInput) (*ports.SummaryResult, error) {
	decision := auth.Evaluate(input.Caller, auth.ActionReadSummary, input.RequestedBranch)
	if !decision.Allowed {
		return nil, domain.ErrForbidden
	}

	limit := input.RecentLimit
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	key := cacheKey(input.Caller, decision.BranchFilter, limit)
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.Warn().Err(err).Msg("summary cache read failed, rebuilding")
		} else if ok {
			return cached, nil
		}
	}

	operations, err := s.fetcher.FetchOperations(ctx, input.Bearer, decision.BranchFilter)
	if err != nil {
		return nil, fmt.Errorf("fetch operations: %w", err)
	}

	summary := ledger.Aggregate(operations, domain.BranchAll)

	result := &ports.SummaryResult{
		Summary: summary,
		Recent:  recent(operations, limit),
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, result, s.cacheTTL); err != nil {
			s.logger.Warn().Err(err).Msg("summary cache write failed")
		}
	}

	return result, nil
}

// recent returns the last limit operations ordered oldest first.
func recent(operations []*domain.Operation, limit int) []*domain.Operation {
	sorted := make([]*domain.Operation, len(operations))
	copy(sorted, operations)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].CreatedAt.Before(sorted[j].CreatedAt) })

	if len(sorted) > limit {
		sorted = sorted[len(sorted)-limit:]
	}
	return sorted
}

// cacheKey partitions cached summaries by effective scope, never by raw
// token, so two tokens for the same user share an entry and the secret
// material stays out of Redis.
func cacheKey(caller auth.Claims, branchFilter, limit int) string {
	return fmt.Sprintf("summary:%d:%s:%d:%d", caller.UserID, caller.Role, branchFilter, limit)
}
