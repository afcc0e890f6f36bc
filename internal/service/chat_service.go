package service

import (
	"context"
	"errors"

	"campusfaq/internal/cache"
	"campusfaq/internal/engine"
	"campusfaq/internal/model"
	"campusfaq/internal/repository"

	"github.com/sirupsen/logrus"
)

var ErrEmptyQuery = errors.New("query must not be empty")

// ChatService answers free-text questions against the FAQ corpus. It loads a
// point-in-time corpus snapshot (cache first, Mongo on a miss) and runs the
// pure matching engine over it; the engine itself never touches storage.
type ChatService struct {
	faqRepo     repository.FAQRepo
	corpusCache cache.CorpusCache
	statsCache  cache.StatsCache
	weights     engine.Weights
	log         *logrus.Entry
}

// NewChatService creates a new chat service
func NewChatService(faqRepo repository.FAQRepo, corpusCache cache.CorpusCache, statsCache cache.StatsCache, log *logrus.Entry) *ChatService {
	return &ChatService{
		faqRepo:     faqRepo,
		corpusCache: corpusCache,
		statsCache:  statsCache,
		weights:     engine.DefaultWeights(),
		log:         log,
	}
}

// Ask resolves one query to a MatchResult
func (s *ChatService) Ask(ctx context.Context, query string) (*model.MatchResult, error) {
	if query == "" {
		return nil, ErrEmptyQuery
	}

	corpus, err := s.loadCorpus(ctx)
	if err != nil {
		return nil, err
	}

	result := engine.Match(query, corpus, s.weights)

	s.log.WithFields(logrus.Fields{
		"query":      query,
		"confidence": result.Confidence,
		"category":   result.Category,
	}).Debug("query matched")

	if result.Confidence == 0 {
		// Best effort: losing a stat must not fail the user's answer.
		if err := s.statsCache.RecordUnmatched(ctx, query); err != nil {
			s.log.WithError(err).Warn("failed to record unmatched query")
		}
	}

	return &result, nil
}

// TopUnmatched lists the most frequent queries the corpus has no answer for
func (s *ChatService) TopUnmatched(ctx context.Context, limit int) ([]model.UnmatchedQuery, error) {
	return s.statsCache.TopUnmatched(ctx, limit)
}

func (s *ChatService) loadCorpus(ctx context.Context) ([]*model.FAQEntry, error) {
	corpus, err := s.corpusCache.Get(ctx)
	if err != nil {
		// Redis being down degrades to a Mongo read, not an outage.
		s.log.WithError(err).Warn("corpus cache read failed")
	}
	if corpus != nil {
		return corpus, nil
	}

	corpus, err = s.faqRepo.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.corpusCache.Set(ctx, corpus); err != nil {
		s.log.WithError(err).Warn("corpus cache write failed")
	}
	return corpus, nil
}
