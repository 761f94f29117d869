package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/rentdesk/property-management-api/internal/api/dto"
	"github.com/rentdesk/property-management-api/internal/domain"
	"github.com/rentdesk/property-management-api/internal/repository"
)

// TokenGenerator signs access tokens for an authenticated actor.
type TokenGenerator interface {
	GenerateToken(actor *domain.Actor) (string, error)
}

type AuthService struct {
	repo     repository.Repository
	tokens   TokenGenerator
	activity *ActivityService
}

func NewAuthService(repo repository.Repository, tokens TokenGenerator, activity *ActivityService) *AuthService {
	return &AuthService{
		repo:     repo,
		tokens:   tokens,
		activity: activity,
	}
}

func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if !domain.IsValidRole(req.Role) {
		return nil, ErrInvalidRole
	}

	role := domain.Role(req.Role)
	if role != domain.RoleSuperAdmin && (req.CompanyID == nil || *req.CompanyID == "") {
		return nil, ErrCompanyRequired
	}

	if req.CompanyID != nil && *req.CompanyID != "" {
		if _, err := s.repo.Company().GetByID(ctx, *req.CompanyID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hash),
		Role:      role,
		CompanyID: req.CompanyID,
	}

	created, err := s.repo.User().Create(ctx, user)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	actor, err := s.actorFor(ctx, created)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(actor)
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actor, ActivityEntry{
		Action:    "USER_REGISTERED",
		Entity:    "User",
		EntityID:  created.ID,
		CompanyID: actor.CompanyID,
	})

	return &dto.AuthResponse{
		Token: token,
		User:  dto.FromUser(created),
	}, nil
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.repo.User().GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	actor, err := s.actorFor(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(actor)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: token,
		User:  dto.FromUser(user),
	}, nil
}

// actorFor resolves the scope claims embedded in the user's token: managed
// property IDs for property managers, the tenant record ID for tenants.
func (s *AuthService) actorFor(ctx context.Context, user *domain.User) (*domain.Actor, error) {
	actor := &domain.Actor{
		UserID: user.ID,
		Role:   user.Role,
	}
	if user.CompanyID != nil {
		actor.CompanyID = *user.CompanyID
	}

	switch user.Role {
	case domain.RolePropertyManager:
		ids, err := s.repo.Property().ListIDsByManager(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		actor.PropertyIDs = ids
	case domain.RoleTenant:
		tenant, err := s.repo.Tenant().GetByUserID(ctx, user.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if tenant != nil {
			actor.TenantID = tenant.ID
		}
	}

	return actor, nil
}
