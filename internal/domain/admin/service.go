package admin

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	users, err := s.repo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	guests, err := s.repo.CountGuests(ctx)
	if err != nil {
		return nil, err
	}
	weddings, err := s.repo.CountWeddings(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.repo.CountPendingRSVPs(ctx)
	if err != nil {
		return nil, err
	}

	return &Stats{
		TotalUsers:     users,
		TotalInvites:   guests,
		ActiveWeddings: weddings,
		PendingRSVPs:   pending,
	}, nil
}

func (s *Service) ListUsers(ctx context.Context, page, limit int) ([]UserRow, PageMeta, error) {
	page, limit = clampPage(page, limit)
	rows, total, err := s.repo.ListUsers(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, PageMeta{}, err
	}
	return rows, pageMeta(page, limit, total), nil
}

func (s *Service) ListGuests(ctx context.Context, page, limit int) ([]GuestRow, PageMeta, error) {
	page, limit = clampPage(page, limit)
	rows, total, err := s.repo.ListGuests(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, PageMeta{}, err
	}
	return rows, pageMeta(page, limit, total), nil
}

func clampPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func pageMeta(page, limit int, total int64) PageMeta {
	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}
	return PageMeta{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}
