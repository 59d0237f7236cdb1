package gift

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name        string
	Description string
	Price       float64
	Currency    string
	Category    string
	Link        string
}

func (s *Service) Create(ctx context.Context, accountID string, input CreateInput) (*Gift, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, ErrMissingName
	}

	weddingID, err := s.repo.GetWeddingID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	g := &Gift{
		ID:        uuid.NewString(),
		WeddingID: weddingID,
		Name:      input.Name,
		Price:     input.Price,
		Currency:  "USD",
		Category:  "other",
		Status:    StatusAvailable,
	}
	if input.Description != "" {
		g.Description = &input.Description
	}
	if input.Currency != "" {
		g.Currency = input.Currency
	}
	if input.Category != "" {
		g.Category = input.Category
	}
	if input.Link != "" {
		g.Link = &input.Link
	}

	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *Service) List(ctx context.Context, accountID string) ([]Gift, error) {
	weddingID, err := s.repo.GetWeddingID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, weddingID)
}

func (s *Service) Get(ctx context.Context, accountID, giftID string) (*Gift, error) {
	weddingID, err := s.repo.GetWeddingID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, weddingID, giftID)
}

func (s *Service) Update(ctx context.Context, accountID, giftID string, update Update) (*Gift, error) {
	weddingID, err := s.repo.GetWeddingID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	g, err := s.repo.GetByID(ctx, weddingID, giftID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, ErrMissingName
		}
		g.Name = name
	}
	if update.Description != nil {
		g.Description = update.Description
	}
	if update.Price != nil {
		g.Price = *update.Price
	}
	if update.Currency != nil && *update.Currency != "" {
		g.Currency = *update.Currency
	}
	if update.Category != nil && *update.Category != "" {
		g.Category = *update.Category
	}
	if update.Status != nil {
		if !ValidStatus(*update.Status) {
			return nil, ErrInvalidStatus
		}
		g.Status = *update.Status
	}
	if update.Link != nil {
		g.Link = update.Link
	}
	if update.ReservedBy != nil {
		g.ReservedBy = update.ReservedBy
	}

	if err := s.repo.Update(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *Service) Delete(ctx context.Context, accountID, giftID string) error {
	weddingID, err := s.repo.GetWeddingID(ctx, accountID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, weddingID, giftID)
}

func (s *Service) Stats(ctx context.Context, accountID string) (*Stats, error) {
	gifts, err := s.List(ctx, accountID)
	if err != nil {
		return nil, err
	}

	stats := &Stats{ByCategory: make(map[string]int)}
	for _, g := range gifts {
		stats.Total++
		stats.TotalValue += g.Price
		stats.ByCategory[g.Category]++
		switch g.Status {
		case StatusAvailable:
			stats.Available++
		case StatusReserved:
			stats.Reserved++
		case StatusPurchased:
			stats.Purchased++
			stats.PurchasedValue += g.Price
		}
	}
	return stats, nil
}
