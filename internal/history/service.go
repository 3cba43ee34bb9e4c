package history

import (
	"encoding/json"
	"time"

	"github.com/cdirks4/insta-gift/internal/gift"
)

// Service records finished runs and lists them per account. It satisfies the
// Recorder interfaces of the gift and profile handlers.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(accountID int, limit int, offset int) []Record {
	records, err := s.repo.ListByAccount(accountID, limit, offset)
	if err != nil {
		return []Record{}
	}
	return records
}

func (s *Service) RecordProfileAnalysis(accountID int, username string, interests []string, analysis string) error {
	_, err := s.repo.Insert(Record{
		AccountID: accountID,
		Kind:      KindProfileAnalysis,
		Username:  username,
		Interests: interests,
		Analysis:  analysis,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	return err
}

func (s *Service) RecordRecommendations(accountID int, age int, budget float64, recs []gift.Recommendation) error {
	gifts, err := json.Marshal(recs)
	if err != nil {
		return err
	}
	_, err = s.repo.Insert(Record{
		AccountID: accountID,
		Kind:      KindRecommendations,
		Age:       age,
		Budget:    budget,
		Gifts:     gifts,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	return err
}
