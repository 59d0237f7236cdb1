package account

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{6,14}$`)
)

type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	Phone           string
	WeddingDate     *time.Time
	PartnerName     string
	WeddingLocation string
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Register(ctx context.Context, input RegisterInput) (*Account, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if input.Phone != "" && !phonePattern.MatchString(input.Phone) {
		return nil, ErrInvalidPhone
	}

	taken, err := s.repo.EmailTaken(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	acc := &Account{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         RoleInviter,
		Active:       true,
		WeddingDate:  input.WeddingDate,
	}
	if input.Phone != "" {
		acc.Phone = &input.Phone
	}
	if input.PartnerName != "" {
		acc.PartnerName = &input.PartnerName
	}
	if input.WeddingLocation != "" {
		acc.WeddingLocation = &input.WeddingLocation
	}

	if err := s.repo.Create(ctx, acc); err != nil {
		// The email uniqueness pre-check races with concurrent registrations;
		// the unique index is the enforcement point.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return acc, nil
}

// CreateAdmin provisions a console account. Only reachable through the
// admin-guarded route.
func (s *Service) CreateAdmin(ctx context.Context, name, email, password string) (*Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	taken, err := s.repo.EmailTaken(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	acc := &Account{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         RoleAdmin,
		Active:       true,
	}

	if err := s.repo.Create(ctx, acc); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return acc, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	acc, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !acc.Active {
		return nil, ErrAccountInactive
	}

	return acc, nil
}

func (s *Service) GetProfile(ctx context.Context, id string) (*Account, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*Account, error) {
	acc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*update.Email))
		if !emailPattern.MatchString(email) {
			return nil, ErrInvalidEmail
		}
		if email != acc.Email {
			taken, err := s.repo.EmailTaken(ctx, email)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, ErrEmailTaken
			}
			acc.Email = email
		}
	}
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name != "" {
			acc.Name = name
		}
	}
	if update.Phone != nil {
		if *update.Phone != "" && !phonePattern.MatchString(*update.Phone) {
			return nil, ErrInvalidPhone
		}
		acc.Phone = update.Phone
	}
	if update.WeddingDate != nil {
		acc.WeddingDate = update.WeddingDate
	}
	if update.PartnerName != nil {
		acc.PartnerName = update.PartnerName
	}
	if update.WeddingLocation != nil {
		acc.WeddingLocation = update.WeddingLocation
	}

	if err := s.repo.Update(ctx, acc); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return acc, nil
}

func (s *Service) Deactivate(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.SetActive(ctx, id, false)
}

// IsActive reports whether the account exists and is not deactivated. Used by
// the auth middleware to reject tokens of soft-deleted accounts.
func (s *Service) IsActive(ctx context.Context, id string) (bool, error) {
	acc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return false, nil
		}
		return false, err
	}
	return acc.Active, nil
}
