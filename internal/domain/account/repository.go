package account

import "context"

type Repository interface {
	Create(ctx context.Context, account *Account) error
	GetByID(ctx context.Context, id string) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	Update(ctx context.Context, account *Account) error
	SetActive(ctx context.Context, id string, active bool) error
	EmailTaken(ctx context.Context, email string) (bool, error)
}
