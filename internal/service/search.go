package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"casafinder/internal/catalog"
	"casafinder/internal/extractor"
	"casafinder/internal/metrics"
	"casafinder/internal/model"
)

// Catalog is the external property source. One search means one full
// fetch; failures must surface as catalog.ErrUnavailable.
type Catalog interface {
	FetchAll(ctx context.Context) ([]model.Casa, error)
}

// SearchLogger records the search trail for later analysis. A nil
// logger disables the trail entirely.
type SearchLogger interface {
	LogSearch(ctx context.Context, searchID, query string, criteria model.SearchCriteria, resultCount int, casaIDs []int64, tookMs int) error
	LogFeedback(ctx context.Context, searchID string, casaID int64, action string) error
}

// HouseSearch orchestrates one conversational search turn: classify the
// message, refine the criteria, fetch the catalog, score and rank.
type HouseSearch struct {
	catalog Catalog
	logs    SearchLogger
	metrics *metrics.SearchMetrics
	logger  *slog.Logger
}

// NewHouseSearch creates the search service. logs may be nil.
func NewHouseSearch(cat Catalog, logs SearchLogger, m *metrics.SearchMetrics, logger *slog.Logger) *HouseSearch {
	if logger == nil {
		logger = slog.Default()
	}
	return &HouseSearch{
		catalog: cat,
		logs:    logs,
		metrics: m,
		logger:  logger,
	}
}

// Search scores the full catalog against the criteria and returns the
// ranked matches. An empty criteria record almost always means an
// upstream extraction miss, so it answers with an empty list without
// touching the network.
func (s *HouseSearch) Search(ctx context.Context, criteria model.SearchCriteria) ([]model.CasaMatch, error) {
	if criteria.IsEmpty() {
		s.logger.Warn("search called with empty criteria, skipping catalog fetch")
		return []model.CasaMatch{}, nil
	}

	casas, err := s.catalog.FetchAll(ctx)
	if err != nil {
		if errors.Is(err, catalog.ErrUnavailable) {
			s.metrics.ObserveCatalogFailure()
		}
		return nil, err
	}

	return RankMatches(casas, criteria), nil
}

// HandleTurn processes one chat message end to end. The caller carries
// the conversation state in req.Previous; the returned Criteria is what
// it should send back on the next turn.
func (s *HouseSearch) HandleTurn(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error) {
	start := time.Now()

	resp := &model.ChatResponse{
		SearchID:     uuid.NewString(),
		IsHouseQuery: extractor.IsHouseQuery(req.Message),
		Matches:      []model.CasaMatch{},
	}
	if !resp.IsHouseQuery {
		resp.Took = time.Since(start).Milliseconds()
		return resp, nil
	}

	criteria := RefineCriteria(req.Message, req.Previous)
	resp.Criteria = criteria
	resp.Summary = FormatCriteria(criteria)
	if req.Previous != nil && !req.Previous.IsEmpty() && !IsNewSearch(req.Message) {
		resp.Refinement = DescribeRefinement(*req.Previous, criteria)
	}

	if criteria.IsEmpty() {
		resp.Took = time.Since(start).Milliseconds()
		s.metrics.ObserveSearch("no_criteria", time.Since(start).Seconds(), 0)
		return resp, nil
	}

	matches, err := s.Search(ctx, criteria)
	if err != nil {
		s.metrics.ObserveSearch("error", time.Since(start).Seconds(), 0)
		return nil, err
	}

	resp.Matches = matches
	resp.ResultsText = FormatMatches(matches)
	resp.Took = time.Since(start).Milliseconds()
	s.metrics.ObserveSearch("ok", time.Since(start).Seconds(), len(matches))

	s.logSearch(resp, req.Message)

	return resp, nil
}

// logSearch writes the search trail without blocking the reply.
func (s *HouseSearch) logSearch(resp *model.ChatResponse, query string) {
	if s.logs == nil {
		return
	}
	casaIDs := make([]int64, len(resp.Matches))
	for i, m := range resp.Matches {
		casaIDs[i] = m.Casa.ObjectID
	}
	searchID := resp.SearchID
	criteria := resp.Criteria
	took := resp.Took
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.logs.LogSearch(ctx, searchID, query, criteria, len(casaIDs), casaIDs, int(took)); err != nil {
			s.logger.Warn("failed to log search", "search_id", searchID, "error", err)
		}
	}()
}

// Feedback records a user action against a previously returned search.
func (s *HouseSearch) Feedback(ctx context.Context, searchID string, casaID int64, action string) error {
	if s.logs == nil {
		return nil
	}
	return s.logs.LogFeedback(ctx, searchID, casaID, action)
}
