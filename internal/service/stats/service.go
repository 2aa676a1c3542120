package stats

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bloglist-backend/internal/domain"
)

type entryLister interface {
	List(ctx context.Context) ([]domain.Entry, error)
}

// Service computes statistics over the current entry collection.
type Service struct {
	entries entryLister
	log     *slog.Logger
}

// NewService creates a new stats service.
func NewService(log *slog.Logger, entries entryLister) *Service {
	return &Service{
		entries: entries,
		log:     log.With("service", "stats"),
	}
}

// Summary holds every statistic at once. The pointer fields are nil when
// there are no entries.
type Summary struct {
	Entries            int
	TotalLikes         int
	MostPopular        *domain.Entry
	MostProlificAuthor *AuthorCount
	MostLikedAuthor    *AuthorLikes
}

// Summary reads all entries and reduces them in one pass over the snapshot.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats.Summary: %w", err)
	}

	sum := &Summary{
		Entries:    len(entries),
		TotalLikes: TotalLikes(entries),
	}
	if len(entries) == 0 {
		return sum, nil
	}

	popular, _ := MostPopular(entries)
	prolific, _ := MostProlificAuthor(entries)
	liked, _ := MostLikedAuthor(entries)
	sum.MostPopular = &popular
	sum.MostProlificAuthor = &prolific
	sum.MostLikedAuthor = &liked

	s.log.DebugContext(ctx, "stats computed",
		slog.Int("entries", sum.Entries),
		slog.Int("total_likes", sum.TotalLikes),
	)

	return sum, nil
}

// MostPopular returns the most liked entry or domain.ErrEmptyInput.
func (s *Service) MostPopular(ctx context.Context) (*domain.Entry, error) {
	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats.MostPopular: %w", err)
	}
	e, err := MostPopular(entries)
	if err != nil {
		return nil, fmt.Errorf("stats.MostPopular: %w", err)
	}
	return &e, nil
}

// MostProlificAuthor returns the author with most entries or domain.ErrEmptyInput.
func (s *Service) MostProlificAuthor(ctx context.Context) (*AuthorCount, error) {
	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats.MostProlificAuthor: %w", err)
	}
	ac, err := MostProlificAuthor(entries)
	if err != nil {
		return nil, fmt.Errorf("stats.MostProlificAuthor: %w", err)
	}
	return &ac, nil
}

// MostLikedAuthor returns the author with most likes or domain.ErrEmptyInput.
func (s *Service) MostLikedAuthor(ctx context.Context) (*AuthorLikes, error) {
	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats.MostLikedAuthor: %w", err)
	}
	al, err := MostLikedAuthor(entries)
	if err != nil {
		return nil, fmt.Errorf("stats.MostLikedAuthor: %w", err)
	}
	return &al, nil
}
