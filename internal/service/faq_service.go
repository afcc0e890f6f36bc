package service

import (
	"context"
	"errors"

	"campusfaq/internal/cache"
	"campusfaq/internal/model"
	"campusfaq/internal/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrQuestionRequired = errors.New("question is required")
	ErrAnswerRequired   = errors.New("answer is required")
)

// FAQService handles FAQ CRUD operations. Every mutation invalidates the
// cached corpus snapshot so the chatbot sees the change on its next query.
type FAQService struct {
	faqRepo     repository.FAQRepo
	corpusCache cache.CorpusCache
	log         *logrus.Entry
}

// NewFAQService creates a new FAQ service
func NewFAQService(faqRepo repository.FAQRepo, corpusCache cache.CorpusCache, log *logrus.Entry) *FAQService {
	return &FAQService{
		faqRepo:     faqRepo,
		corpusCache: corpusCache,
		log:         log,
	}
}

// Create validates and stores a new FAQ entry
func (s *FAQService) Create(ctx context.Context, entry *model.FAQEntry) (string, error) {
	if err := validateEntry(entry); err != nil {
		return "", err
	}

	id, err := s.faqRepo.Create(ctx, entry)
	if err != nil {
		return "", err
	}
	s.invalidateCorpus(ctx)
	return id, nil
}

// GetByID retrieves an FAQ entry by ID
func (s *FAQService) GetByID(ctx context.Context, id string) (*model.FAQEntry, error) {
	return s.faqRepo.GetByID(ctx, id)
}

// GetAll retrieves every FAQ entry, active or not
func (s *FAQService) GetAll(ctx context.Context) ([]*model.FAQEntry, error) {
	return s.faqRepo.GetAll(ctx)
}

// GetByCategory retrieves FAQ entries for one category
func (s *FAQService) GetByCategory(ctx context.Context, category model.Category) ([]*model.FAQEntry, error) {
	return s.faqRepo.GetByCategory(ctx, category)
}

// Update replaces an existing FAQ entry
func (s *FAQService) Update(ctx context.Context, entry *model.FAQEntry) error {
	if err := validateEntry(entry); err != nil {
		return err
	}

	if err := s.faqRepo.Update(ctx, entry); err != nil {
		return err
	}
	s.invalidateCorpus(ctx)
	return nil
}

// Delete removes an FAQ entry
func (s *FAQService) Delete(ctx context.Context, id string) error {
	if err := s.faqRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCorpus(ctx)
	return nil
}

func (s *FAQService) invalidateCorpus(ctx context.Context) {
	// A stale snapshot only lasts until the TTL expires, so a failed
	// invalidation is logged rather than surfaced to the admin.
	if err := s.corpusCache.Invalidate(ctx); err != nil {
		s.log.WithError(err).Warn("failed to invalidate corpus cache")
	}
}

func validateEntry(entry *model.FAQEntry) error {
	if entry.Question == "" {
		return ErrQuestionRequired
	}
	if entry.Answer == "" {
		return ErrAnswerRequired
	}
	category, err := model.ParseCategory(string(entry.Category))
	if err != nil {
		return err
	}
	entry.Category = category
	return nil
}
