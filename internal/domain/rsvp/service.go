package rsvp

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Submit accepts a guest's single response keyed by invitation token. The
// record creation and the guest mirror update run in one transaction; the
// unique (guest, wedding) index is the real write-once guarantee, with the
// pre-check only providing a friendlier fast path.
func (s *Service) Submit(ctx context.Context, token string, input SubmitInput) (*SubmitOutput, error) {
	if !ValidResponse(input.Response) {
		return nil, ErrInvalidResponse
	}
	if input.Response == ResponseAccepted && input.AttendingCount < 1 {
		return nil, ErrInvalidAttendingSize
	}

	guest, err := s.repo.GetGuestByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if !guest.Invited {
		return nil, ErrNotInvited
	}

	wedding, err := s.repo.GetWeddingByAccount(ctx, guest.InviterID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetRecordByGuest(ctx, guest.ID)
	if err != nil && !errors.Is(err, ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadySubmitted
	}

	record := &Record{
		ID:                   uuid.NewString(),
		GuestID:              guest.ID,
		WeddingID:            wedding.ID,
		Response:             input.Response,
		AttendingCount:       input.AttendingCount,
		AccommodationNeeded:  input.AccommodationNeeded,
		TransportationNeeded: input.TransportationNeeded,
	}
	if input.Message != "" {
		record.Message = &input.Message
	}
	if input.DietaryRestrictions != "" {
		record.DietaryRestrictions = &input.DietaryRestrictions
	}
	if input.SongRequests != "" {
		record.SongRequests = &input.SongRequests
	}

	now := time.Now().UTC()
	err = s.repo.Transaction(ctx, func(tx Repository) error {
		if err := tx.CreateRecord(ctx, record); err != nil {
			return err
		}
		return tx.MarkGuestResponded(ctx, guest.ID, input.Response, now)
	})
	if err != nil {
		// Two concurrent submissions can both pass the pre-check; the loser
		// hits the unique index and gets the same conflict answer.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadySubmitted
		}
		return nil, err
	}

	guest.HasRSVPed = true
	guest.RSVPStatus = input.Response
	guest.RSVPSubmittedAt = &now

	return &SubmitOutput{Record: record, Guest: guest, Wedding: wedding}, nil
}

// GetStatus returns the guest's current RSVP state without side effects.
// A missing wedding or record yields nil fields, not an error.
func (s *Service) GetStatus(ctx context.Context, token string) (*Status, error) {
	guest, err := s.repo.GetGuestByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	status := &Status{Guest: guest}

	wedding, err := s.repo.GetWeddingByAccount(ctx, guest.InviterID)
	if err == nil {
		status.Wedding = wedding
	} else if !errors.Is(err, ErrWeddingNotFound) {
		return nil, err
	}

	record, err := s.repo.GetRecordByGuest(ctx, guest.ID)
	if err == nil {
		status.Record = record
	} else if !errors.Is(err, ErrRecordNotFound) {
		return nil, err
	}

	return status, nil
}
