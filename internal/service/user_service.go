package service

import (
	"context"
	"errors"
	"time"

	"ocean/internal/model"
	"ocean/internal/pkg"
	"ocean/internal/repository/mysql"
	"ocean/internal/repository/redis"
	"ocean/internal/rpc"

	"gorm.io/gorm"
)

type UserService struct {
	users  *mysql.UserRepository
	groups *mysql.GroupRepository
	cache  *redis.ProfileCache
}

func NewUserService(db *gorm.DB, cache *redis.ProfileCache) *UserService {
	return &UserService{
		users:  &mysql.UserRepository{DB: db},
		groups: &mysql.GroupRepository{DB: db},
		cache:  cache,
	}
}

// AuthResult is the user.auth payload.
type AuthResult struct {
	Token string  `json:"token"`
	Code  string  `json:"code"`
	Name  *string `json:"name"`
}

// Profile is the user.getOne payload.
type Profile struct {
	ID       uint64    `json:"id"`
	Name     *string   `json:"name"`
	Code     string    `json:"code"`
	CreateTS time.Time `json:"create_ts"`
}

// Create resolves the group by code and inserts the user. An optional
// password sets the bearer token right away; otherwise changePassword does
// it later.
func (s *UserService) Create(ctx context.Context, name *string, code, password string) (uint64, error) {
	group, err := s.groups.FindByCode(ctx, code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, rpc.NewError(rpc.CodeNotFound, "unknown group code")
	}
	if err != nil {
		return 0, err
	}

	user := &model.User{Name: name, GroupID: group.ID}
	if err := s.users.Create(ctx, user); err != nil {
		return 0, err
	}

	if password != "" {
		token := pkg.HashToken(user.ID, password)
		if err := s.users.UpdateToken(ctx, user.ID, token); err != nil {
			return 0, err
		}
	}
	return user.ID, nil
}

// Auth recomputes the expected token from (id, password) and compares it
// against the stored one. Missing user and wrong password are the same
// domain error.
func (s *UserService) Auth(ctx context.Context, id uint64, password string) (*AuthResult, error) {
	user, err := s.users.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, rpc.WrongUserPassword()
	}
	if err != nil {
		return nil, err
	}

	token := pkg.HashToken(id, password)
	if user.Token == "" || user.Token != token {
		return nil, rpc.WrongUserPassword()
	}

	group, err := s.groups.FindByID(ctx, user.GroupID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, Code: group.Code, Name: user.Name}, nil
}

// GetByToken resolves a bearer token to a profile, consulting the cache
// first. Cache failures fall back to the store.
func (s *UserService) GetByToken(ctx context.Context, token string) (*Profile, error) {
	if cached, err := s.cache.Get(ctx, token); err == nil {
		return &Profile{ID: cached.ID, Name: cached.Name, Code: cached.Code, CreateTS: cached.CreateTS}, nil
	}

	user, err := s.users.FindByToken(ctx, token)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, rpc.NotFound("user")
	}
	if err != nil {
		return nil, err
	}

	group, err := s.groups.FindByID(ctx, user.GroupID)
	if err != nil {
		return nil, err
	}

	profile := &Profile{ID: user.ID, Name: user.Name, Code: group.Code, CreateTS: user.CreatedAt}
	_ = s.cache.Set(ctx, token, &redis.CachedProfile{
		ID:       profile.ID,
		Name:     profile.Name,
		Code:     profile.Code,
		CreateTS: profile.CreateTS,
	})
	return profile, nil
}

func (s *UserService) Update(ctx context.Context, id uint64, name, code string) error {
	group, err := s.groups.FindByCode(ctx, code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return rpc.NewError(rpc.CodeNotFound, "unknown group code")
	}
	if err != nil {
		return err
	}

	user, err := s.users.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return rpc.NotFound("user")
	}
	if err != nil {
		return err
	}

	if err := s.users.UpdateProfile(ctx, id, name, group.ID); err != nil {
		return err
	}
	if user.Token != "" {
		_ = s.cache.Delete(ctx, user.Token)
	}
	return nil
}

// ChangePassword derives and stores a fresh token, invalidating any cached
// profile under the old one.
func (s *UserService) ChangePassword(ctx context.Context, id uint64, password string) (string, error) {
	user, err := s.users.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", rpc.NotFound("user")
	}
	if err != nil {
		return "", err
	}

	token := pkg.HashToken(id, password)
	if err := s.users.UpdateToken(ctx, id, token); err != nil {
		return "", err
	}
	if user.Token != "" {
		_ = s.cache.Delete(ctx, user.Token)
	}
	return token, nil
}
