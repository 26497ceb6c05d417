package store

import (
	"context"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"

	"kicks/internal/api"
	"kicks/internal/domain"
)

// ReviewStore хранит отзывы всех просмотренных товаров в одной коллекции
type ReviewStore struct {
	mu     sync.RWMutex
	client api.Client
	log    *zap.Logger

	reviews []domain.Review
	loading bool
	err     string
}

func NewReviewStore(client api.Client, log *zap.Logger) *ReviewStore {
	return &ReviewStore{client: client, log: log}
}

// FetchReviews подгружает отзывы товара, пропуская уже известные id.
// Повторный вызов безопасен: дубликатов не появляется.
func (s *ReviewStore) FetchReviews(ctx context.Context, sneakerID int64) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	list, err := s.client.ListReviews(ctx, sneakerID)
	if err != nil {
		s.fail("fetch reviews", err)
		return err
	}

	s.mu.Lock()
	seen := make(map[int64]bool, len(s.reviews))
	for _, r := range s.reviews {
		seen[r.ID] = true
	}
	for _, r := range list {
		if !seen[r.ID] {
			s.reviews = append(s.reviews, r)
		}
	}
	s.loading = false
	s.mu.Unlock()
	return nil
}

// AddReview отправляет отзыв и добавляет серверную копию (с присвоенным id)
func (s *ReviewStore) AddReview(ctx context.Context, sneakerID int64, userName string, rating int, comment string) bool {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	created, err := s.client.CreateReview(ctx, domain.Review{
		SneakerID: sneakerID,
		UserName:  userName,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		s.fail("add review", err)
		return false
	}

	s.mu.Lock()
	s.reviews = append(s.reviews, *created)
	s.loading = false
	s.mu.Unlock()
	return true
}

// ReviewsBySneaker отзывы одного товара
func (s *ReviewStore) ReviewsBySneaker(sneakerID int64) []domain.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Review, 0)
	for _, r := range s.reviews {
		if r.SneakerID == sneakerID {
			out = append(out, r)
		}
	}
	return out
}

// AverageRating средняя оценка товара, округлённая до одного знака.
// Без отзывов возвращает 0.
func (s *ReviewStore) AverageRating(sneakerID int64) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sum, n := 0, 0
	for _, r := range s.reviews {
		if r.SneakerID == sneakerID {
			sum += r.Rating
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return math.Round(float64(sum)/float64(n)*10) / 10
}

func (s *ReviewStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *ReviewStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *ReviewStore) fail(action string, err error) {
	s.mu.Lock()
	s.err = err.Error()
	s.loading = false
	s.mu.Unlock()
	s.log.Error(action+" failed", zap.Error(err))
}
