package application

import (
	"context"
	"errors"

	admindomain "github.com/agenda23/restaurant-media-api/internal/admin/domain"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials はログイン失敗を示す。存在しないメールと誤パスワードを区別しない。
var ErrInvalidCredentials = errors.New("メールアドレスまたはパスワードが正しくありません")

const bcryptCost = 10

// userService implements UserService.
type userService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) List(ctx context.Context) ([]admindomain.User, error) {
	return s.repo.Find(ctx)
}

func (s *userService) Detail(ctx context.Context, id string) (*admindomain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *userService) Create(ctx context.Context, cmd CreateUserCommand) (*admindomain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcryptCost)
	if err != nil {
		return nil, err
	}
	user := &admindomain.User{
		Email:     cmd.Email,
		FirstName: cmd.FirstName,
		LastName:  cmd.LastName,
		Role:      cmd.Role,
	}
	if err := s.repo.Create(ctx, user, string(hash)); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, id string, cmd UpdateUserCommand) (*admindomain.User, error) {
	user := &admindomain.User{
		ID:             id,
		Email:          cmd.Email,
		FirstName:      cmd.FirstName,
		LastName:       cmd.LastName,
		ProfilePicture: cmd.ProfilePicture,
		Role:           cmd.Role,
	}
	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *userService) ChangePassword(ctx context.Context, id string, plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, id, string(hash))
}

// VerifyLogin はメールとパスワードを検証し、成功時のみユーザーを返す。
func (s *userService) VerifyLogin(ctx context.Context, email, password string) (*admindomain.User, error) {
	hash, user, err := s.repo.PasswordHashByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
