package services

import (
	"errors"
	"strings"
	"time"

	"github.com/Atsuyko/restaurant/entity"
	"github.com/Atsuyko/restaurant/repository"
	"github.com/Atsuyko/restaurant/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService owns registration, login and self-service account edits.
type AuthService struct {
	userRepo *repository.UserRepository
}

func NewAuthService(repo *repository.UserRepository) *AuthService {
	return &AuthService{userRepo: repo}
}

// AccountUpdate is the partial-update set for the caller's own record.
// A present password is re-hashed before storage.
type AccountUpdate struct {
	Email     *string `json:"email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Allergy   *string `json:"allergy"`
	Password  *string `json:"password"`
}

// Register creates the user with a bcrypt password hash and a fresh
// API token. The token is issued exactly once and never rotated.
func (s *AuthService) Register(email, firstName, lastName, allergy, password string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:     email,
		Password:  string(hashed),
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Allergy:   strings.TrimSpace(allergy),
		ApiToken:  utils.GenerateToken(),
		Roles:     []string{entity.RoleUser},
		CreatedAt: time.Now(),
	}

	if err := s.userRepo.Create(user); err != nil {
		// the unique index is the last line of defence against a
		// concurrent registration with the same email
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Login verifies the password and returns the stored user. Unknown
// user and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(username, password string) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(username))

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// UpdateAccount applies the present fields onto the caller's own
// record and stamps UpdatedAt.
func (s *AuthService) UpdateAccount(user *entity.User, upd AccountUpdate) error {
	if upd.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*upd.Email))
	}
	if upd.FirstName != nil {
		user.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		user.LastName = *upd.LastName
	}
	if upd.Allergy != nil {
		user.Allergy = *upd.Allergy
	}
	if upd.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.Password = string(hashed)
	}
	now := time.Now()
	user.UpdatedAt = &now
	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}
