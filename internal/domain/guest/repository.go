package guest

import "context"

type Repository interface {
	Create(ctx context.Context, guest *Guest) error
	GetByID(ctx context.Context, inviterID, id string) (*Guest, error)
	GetByToken(ctx context.Context, token string) (*Guest, error)
	// GetByTelegramUsername matches the stored handle against the given
	// username with or without a leading "@".
	GetByTelegramUsername(ctx context.Context, username string) (*Guest, error)
	ListByIDs(ctx context.Context, inviterID string, ids []string) ([]Guest, error)
	List(ctx context.Context, inviterID string, filter ListFilter) ([]Guest, int64, error)
	MarkInvited(ctx context.Context, guest *Guest) error
	SetChatID(ctx context.Context, guestID, chatID string) error
	WeddingExists(ctx context.Context, accountID string) (bool, error)
}

// EmailChannel delivers invitation mail. Configured reports whether the
// transport has credentials; an unconfigured channel is a silent non-delivery,
// not an error.
type EmailChannel interface {
	Configured() bool
	SendInvitation(ctx context.Context, address, name, link string) error
}

// ChatChannel delivers invitations to an already-bound chat id.
type ChatChannel interface {
	SendInvitation(ctx context.Context, chatID, name, link string) error
}
