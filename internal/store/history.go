package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"kicks/internal/storage"
)

const (
	historyKey  = "sneakers_view_history"
	historySize = 10
)

// HistoryStore список недавно просмотренных товаров, новые в начале.
// Хранит не больше historySize идентификаторов и переживает перезапуск
// через key-value хранилище.
type HistoryStore struct {
	mu  sync.Mutex
	kv  storage.KV
	log *zap.Logger
	ids []int64
}

// NewHistoryStore создаёт хранилище и один раз поднимает список из kv.
// Нечитаемые сохранённые данные возвращаются ошибкой storage.ErrCorrupt;
// хранилище при этом пригодно к работе с пустым списком.
func NewHistoryStore(kv storage.KV, log *zap.Logger) (*HistoryStore, error) {
	s := &HistoryStore{kv: kv, log: log}
	data, ok, err := kv.Get(historyKey)
	if err != nil {
		return s, fmt.Errorf("load view history: %w", err)
	}
	if !ok {
		return s, nil
	}
	if err := json.Unmarshal(data, &s.ids); err != nil {
		s.ids = nil
		return s, fmt.Errorf("%w: %v", storage.ErrCorrupt, err)
	}
	if len(s.ids) > historySize {
		s.ids = s.ids[:historySize]
	}
	return s, nil
}

// Add переносит id в начало списка, убирая прежнее вхождение,
// обрезает список до historySize и сохраняет его целиком.
func (s *HistoryStore) Add(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int64, 0, len(s.ids)+1)
	ids = append(ids, id)
	for _, v := range s.ids {
		if v != id {
			ids = append(ids, v)
		}
	}
	if len(ids) > historySize {
		ids = ids[:historySize]
	}
	s.ids = ids
	return s.persist()
}

// Clear опустошает список и сохраняет пустое состояние
func (s *HistoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = nil
	return s.persist()
}

// IDs копия списка, самые свежие первыми
func (s *HistoryStore) IDs() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int64, len(s.ids))
	copy(out, s.ids)
	return out
}

func (s *HistoryStore) persist() error {
	data, err := json.Marshal(s.ids)
	if err != nil {
		return fmt.Errorf("encode view history: %w", err)
	}
	if err := s.kv.Set(historyKey, data); err != nil {
		s.log.Error("save view history failed", zap.Error(err))
		return fmt.Errorf("save view history: %w", err)
	}
	return nil
}
