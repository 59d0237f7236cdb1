package guest

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"wedgram-api/pkg/logger"

	"github.com/google/uuid"
)

type Service struct {
	repo          Repository
	email         EmailChannel
	chat          ChatChannel
	inviteBaseURL string
	log           logger.Logger
}

func NewService(repo Repository, email EmailChannel, chat ChatChannel, inviteBaseURL string, log logger.Logger) *Service {
	return &Service{
		repo:          repo,
		email:         email,
		chat:          chat,
		inviteBaseURL: inviteBaseURL,
		log:           log,
	}
}

// NewToken returns a 32-character lowercase hex invitation token (128 bits).
func NewToken() (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(b[:]), nil
}

// InviteLink builds the guest-facing link. When the base URL already contains
// an /invite segment the token is appended directly.
func (s *Service) InviteLink(token string) string {
	base := strings.TrimRight(s.inviteBaseURL, "/")
	if strings.Contains(base, "/invite") {
		return base + "/" + token
	}
	return base + "/invite/" + token
}

// NormalizeHandle strips a leading "@" from a messaging handle.
func NormalizeHandle(handle string) string {
	return strings.TrimPrefix(strings.TrimSpace(handle), "@")
}

// CreateGuests creates a batch of guests for an inviter. The inviter must
// already have a wedding. Creation is best-effort per guest: a failed row is
// reported in the result list and does not abort the batch. With
// sendImmediately set, delivery is attempted for each created guest; the
// delivery outcome is not reflected in the creation rows.
func (s *Service) CreateGuests(ctx context.Context, inviterID string, specs []Spec, sendImmediately bool) ([]CreateResult, int, error) {
	if len(specs) == 0 {
		return nil, 0, ErrNoGuests
	}

	hasWedding, err := s.repo.WeddingExists(ctx, inviterID)
	if err != nil {
		return nil, 0, err
	}
	if !hasWedding {
		return nil, 0, ErrNoWedding
	}

	results := make([]CreateResult, 0, len(specs))
	created := 0

	for _, spec := range specs {
		g, err := s.createGuest(ctx, inviterID, spec)
		if err != nil {
			s.log.BusinessError("guests.create: guest failed", err, "inviter_id", inviterID, "name", spec.Name)
			results = append(results, CreateResult{
				Name:   spec.Name,
				Status: "failed",
				Error:  "Failed to create",
			})
			continue
		}

		created++
		results = append(results, CreateResult{
			ID:               g.ID,
			Name:             g.Name,
			Status:           "created",
			TelegramUsername: g.TelegramUsername,
		})

		if sendImmediately {
			if s.deliver(ctx, g) {
				s.markInvited(ctx, g)
			}
		}
	}

	return results, created, nil
}

func (s *Service) createGuest(ctx context.Context, inviterID string, spec Spec) (*Guest, error) {
	name := strings.TrimSpace(spec.Name)
	if name == "" {
		return nil, ErrMissingName
	}
	handle := NormalizeHandle(spec.TelegramUsername)
	if handle == "" {
		return nil, ErrMissingHandle
	}
	method := spec.InvitationMethod
	if method == "" {
		method = MethodTelegram
	}
	if !ValidMethod(method) {
		return nil, ErrInvalidMethod
	}

	token, err := NewToken()
	if err != nil {
		return nil, err
	}

	g := &Guest{
		ID:               uuid.NewString(),
		InviterID:        inviterID,
		Name:             name,
		TelegramUsername: handle,
		InvitationToken:  token,
		InvitationMethod: method,
		RSVPStatus:       RSVPPending,
		PlusOneAllowed:   spec.PlusOneAllowed,
	}
	if email := strings.ToLower(strings.TrimSpace(spec.Email)); email != "" {
		g.Email = &email
	}

	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// SendInvitations attempts delivery for each requested guest. Requested ids
// that do not resolve to a guest owned by the inviter are reported as
// sent:false with a "not found" error rather than dropped. The summary count
// covers only guests that were actually attempted.
func (s *Service) SendInvitations(ctx context.Context, inviterID string, guestIDs []string) ([]SendResult, int, int, error) {
	if len(guestIDs) == 0 {
		return nil, 0, 0, ErrMissingGuestIDs
	}

	hasWedding, err := s.repo.WeddingExists(ctx, inviterID)
	if err != nil {
		return nil, 0, 0, err
	}
	if !hasWedding {
		return nil, 0, 0, ErrNoWedding
	}

	guests, err := s.repo.ListByIDs(ctx, inviterID, guestIDs)
	if err != nil {
		return nil, 0, 0, err
	}

	byID := make(map[string]*Guest, len(guests))
	for i := range guests {
		byID[guests[i].ID] = &guests[i]
	}

	results := make([]SendResult, 0, len(guestIDs))
	sent := 0
	attempted := 0

	for _, id := range guestIDs {
		g, ok := byID[id]
		if !ok {
			results = append(results, SendResult{ID: id, Sent: false, Error: "not found"})
			continue
		}

		attempted++
		if s.deliver(ctx, g) {
			s.markInvited(ctx, g)
			sent++
			results = append(results, SendResult{ID: g.ID, Name: g.Name, Sent: true, Method: g.InvitationMethod})
			continue
		}

		results = append(results, SendResult{ID: g.ID, Name: g.Name, Sent: false, Method: g.InvitationMethod})
	}

	return results, sent, attempted, nil
}

// deliver resolves the guest's channel and attempts a single send. Channel
// errors are swallowed to a false result; there are no retries.
func (s *Service) deliver(ctx context.Context, g *Guest) bool {
	link := s.InviteLink(g.InvitationToken)

	switch g.InvitationMethod {
	case MethodTelegram:
		if g.ChatID == nil || *g.ChatID == "" {
			// Guest has not started the bot yet; delivery completes later
			// through BindChat.
			s.log.Debug("guests.deliver: no chat id bound", "guest_id", g.ID)
			return false
		}
		if s.chat == nil {
			return false
		}
		if err := s.chat.SendInvitation(ctx, *g.ChatID, g.Name, link); err != nil {
			s.log.BusinessError("guests.deliver: telegram send failed", err, "guest_id", g.ID)
			return false
		}
		return true

	case MethodEmail:
		if g.Email == nil || *g.Email == "" {
			return false
		}
		if s.email == nil || !s.email.Configured() {
			s.log.Debug("guests.deliver: email channel not configured", "guest_id", g.ID)
			return false
		}
		if err := s.email.SendInvitation(ctx, *g.Email, g.Name, link); err != nil {
			s.log.BusinessError("guests.deliver: email send failed", err, "guest_id", g.ID)
			return false
		}
		return true
	}

	return false
}

func (s *Service) markInvited(ctx context.Context, g *Guest) {
	now := time.Now().UTC()
	g.Invited = true
	g.InvitationSentAt = &now
	if err := s.repo.MarkInvited(ctx, g); err != nil {
		s.log.InternalError("guests.deliver: mark invited failed", err, "guest_id", g.ID)
	}
}

// List returns one page of the inviter's guests, newest first.
func (s *Service) List(ctx context.Context, inviterID string, filter ListFilter) ([]Guest, ListMeta, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Status != "" && !ValidRSVPStatus(filter.Status) {
		return nil, ListMeta{}, ErrInvalidStatus
	}

	guests, total, err := s.repo.List(ctx, inviterID, filter)
	if err != nil {
		return nil, ListMeta{}, err
	}

	totalPages := total / int64(filter.Limit)
	if total%int64(filter.Limit) != 0 {
		totalPages++
	}

	return guests, ListMeta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

func (s *Service) Get(ctx context.Context, inviterID, id string) (*Guest, error) {
	return s.repo.GetByID(ctx, inviterID, id)
}

// BindChat records the chat id for the guest matching the username and, if the
// guest was never invited, completes the deferred telegram delivery. This is
// the second writer to the guest row, driven by inbound bot events rather than
// the inviter.
func (s *Service) BindChat(ctx context.Context, username, chatID string) (*Guest, error) {
	g, err := s.repo.GetByTelegramUsername(ctx, NormalizeHandle(username))
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetChatID(ctx, g.ID, chatID); err != nil {
		return nil, err
	}
	g.ChatID = &chatID

	if !g.Invited {
		hasWedding, err := s.repo.WeddingExists(ctx, g.InviterID)
		if err != nil {
			return nil, err
		}
		if hasWedding && s.deliver(ctx, g) {
			s.markInvited(ctx, g)
		}
	}

	return g, nil
}
