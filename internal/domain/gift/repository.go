package gift

import "context"

type Repository interface {
	GetWeddingID(ctx context.Context, accountID string) (string, error)
	Create(ctx context.Context, gift *Gift) error
	GetByID(ctx context.Context, weddingID, id string) (*Gift, error)
	List(ctx context.Context, weddingID string) ([]Gift, error)
	Update(ctx context.Context, gift *Gift) error
	Delete(ctx context.Context, weddingID, id string) error
}
