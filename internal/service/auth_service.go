package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Whillz7/BizFinTrackr/internal/codegen"
	"github.com/Whillz7/BizFinTrackr/internal/config"
	"github.com/Whillz7/BizFinTrackr/internal/dto"
	"github.com/Whillz7/BizFinTrackr/internal/model"
	"github.com/Whillz7/BizFinTrackr/internal/repository"
)

const bcryptCost = 12

type AuthService interface {
	RegisterOwner(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	StaffLogin(ctx context.Context, req dto.StaffLoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)
	CreateStaff(ctx context.Context, p model.Principal, req dto.CreateStaffRequest) (*dto.StaffResponse, error)
	ListStaff(ctx context.Context, p model.Principal) ([]dto.StaffResponse, error)
	UpdateProfile(ctx context.Context, p model.Principal, req dto.UpdateProfileRequest) (*dto.UserResponse, error)
	Me(ctx context.Context, p model.Principal) (*dto.UserResponse, error)
}

type authService struct {
	owners     repository.OwnerRepository
	staff      repository.StaffRepository
	businesses repository.BusinessRepository
	cfg        *config.Config
	now        func() time.Time
}

func NewAuthService(
	owners repository.OwnerRepository,
	staff repository.StaffRepository,
	businesses repository.BusinessRepository,
	cfg *config.Config,
) AuthService {
	return &authService{
		owners:     owners,
		staff:      staff,
		businesses: businesses,
		cfg:        cfg,
		now:        time.Now,
	}
}

// RegisterOwner creates the owner, its business, and the business code in a
// single transaction. The code embeds the generated business ID, so the
// insert is flushed first and the prefix written before commit; a failure at
// any step rolls the whole registration back.
func (s *authService) RegisterOwner(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	businessName := strings.TrimSpace(req.BusinessName)
	if username == "" || email == "" || businessName == "" {
		return nil, fmt.Errorf("%w: username, email and business name are required", ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	owner := &model.Owner{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	business := &model.Business{Name: businessName}

	txErr := runTx(ctx, s.businesses.DB(), func(tx *gorm.DB) error {
		if err := s.owners.CreateTx(tx, owner); err != nil {
			return classifyConstraint(err)
		}
		business.OwnerID = owner.ID
		if err := s.businesses.CreateTx(tx, business); err != nil {
			return classifyConstraint(err)
		}
		prefix := codegen.BusinessCode(business.Name, business.ID, s.now())
		if err := s.businesses.UpdateCodePrefixTx(tx, business.ID, prefix); err != nil {
			return classifyConstraint(err)
		}
		business.CodePrefix = &prefix
		return s.owners.SetBusinessTx(tx, owner.ID, business.ID)
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := ownerToResponse(owner, business)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	owner, err := s.owners.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, ErrInvalidCredential
	}
	if bcrypt.CompareHashAndPassword([]byte(owner.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredential
	}
	if owner.BusinessID == nil {
		return nil, ErrInvalidCredential
	}
	business, err := s.businesses.FindByID(ctx, *owner.BusinessID)
	if err != nil {
		return nil, ErrInvalidCredential
	}
	return s.issueTokens(owner.ID, owner.Username, model.RoleOwner, business, &owner.Email)
}

func (s *authService) StaffLogin(ctx context.Context, req dto.StaffLoginRequest) (*dto.LoginResponse, error) {
	business, err := s.businesses.FindByName(ctx, strings.TrimSpace(req.BusinessName))
	if err != nil {
		return nil, ErrInvalidCredential
	}
	member, err := s.staff.FindByUsername(ctx, business.ID, strings.TrimSpace(req.Username))
	if err != nil {
		return nil, ErrInvalidCredential
	}
	if bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredential
	}
	return s.issueTokens(member.ID, member.Username, model.RoleStaff, business, member.Email)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredential
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidCredential
	}
	userID, okID := claims["user_id"].(float64)
	role, okRole := claims["role"].(string)
	if !okID || !okRole {
		return nil, ErrInvalidCredential
	}

	switch model.Role(role) {
	case model.RoleOwner:
		owner, err := s.owners.FindByID(ctx, uint(userID))
		if err != nil || owner.BusinessID == nil {
			return nil, ErrInvalidCredential
		}
		business, err := s.businesses.FindByID(ctx, *owner.BusinessID)
		if err != nil {
			return nil, ErrInvalidCredential
		}
		return s.issueTokens(owner.ID, owner.Username, model.RoleOwner, business, &owner.Email)
	case model.RoleStaff:
		member, err := s.staff.FindByID(ctx, uint(userID))
		if err != nil {
			return nil, ErrInvalidCredential
		}
		business, err := s.businesses.FindByID(ctx, member.BusinessID)
		if err != nil {
			return nil, ErrInvalidCredential
		}
		return s.issueTokens(member.ID, member.Username, model.RoleStaff, business, member.Email)
	}
	return nil, ErrInvalidCredential
}

func (s *authService) CreateStaff(ctx context.Context, p model.Principal, req dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	if p.Role != model.RoleOwner {
		return nil, ErrAccessDenied
	}
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if _, err := s.staff.FindByUsername(ctx, p.BusinessID, username); err == nil {
		return nil, fmt.Errorf("%w: staff username %q", ErrDuplicateName, username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}
	member := &model.Staff{
		Username:     username,
		Email:        req.Email,
		PasswordHash: string(hash),
		BusinessID:   p.BusinessID,
	}
	if err := s.staff.Create(ctx, member); err != nil {
		return nil, classifyConstraint(err)
	}
	resp := staffToResponse(member)
	return &resp, nil
}

func (s *authService) ListStaff(ctx context.Context, p model.Principal) ([]dto.StaffResponse, error) {
	if p.Role != model.RoleOwner {
		return nil, ErrAccessDenied
	}
	members, err := s.staff.ListByBusiness(ctx, p.BusinessID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StaffResponse, 0, len(members))
	for i := range members {
		out = append(out, staffToResponse(&members[i]))
	}
	return out, nil
}

func (s *authService) UpdateProfile(ctx context.Context, p model.Principal, req dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	var hash string
	if req.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		hash = string(h)
	}

	switch p.Role {
	case model.RoleOwner:
		owner, err := s.owners.FindByID(ctx, p.ID)
		if err != nil {
			return nil, ErrNotFound
		}
		if req.Username != "" {
			owner.Username = strings.TrimSpace(req.Username)
		}
		if req.Email != nil && *req.Email != "" {
			owner.Email = strings.ToLower(strings.TrimSpace(*req.Email))
		}
		if hash != "" {
			owner.PasswordHash = hash
		}
		if err := s.owners.Update(ctx, owner); err != nil {
			return nil, classifyConstraint(err)
		}
		business, err := s.businesses.FindByID(ctx, p.BusinessID)
		if err != nil {
			return nil, err
		}
		resp := ownerToResponse(owner, business)
		return &resp, nil
	case model.RoleStaff:
		member, err := s.staff.FindByID(ctx, p.ID)
		if err != nil {
			return nil, ErrNotFound
		}
		if member.BusinessID != p.BusinessID {
			return nil, ErrAccessDenied
		}
		if req.Username != "" {
			member.Username = strings.TrimSpace(req.Username)
		}
		if req.Email != nil && *req.Email != "" {
			member.Email = req.Email
		}
		if hash != "" {
			member.PasswordHash = hash
		}
		if err := s.staff.Update(ctx, member); err != nil {
			return nil, classifyConstraint(err)
		}
		business, err := s.businesses.FindByID(ctx, p.BusinessID)
		if err != nil {
			return nil, err
		}
		return &dto.UserResponse{
			ID:           member.ID,
			Username:     member.Username,
			Email:        member.Email,
			Role:         string(model.RoleStaff),
			BusinessID:   business.ID,
			BusinessName: business.Name,
		}, nil
	}
	return nil, ErrAccessDenied
}

// Me resolves the authenticated principal back into its full profile.
func (s *authService) Me(ctx context.Context, p model.Principal) (*dto.UserResponse, error) {
	business, err := s.businesses.FindByID(ctx, p.BusinessID)
	if err != nil {
		return nil, ErrNotFound
	}
	switch p.Role {
	case model.RoleOwner:
		owner, err := s.owners.FindByID(ctx, p.ID)
		if err != nil {
			return nil, ErrNotFound
		}
		resp := ownerToResponse(owner, business)
		return &resp, nil
	case model.RoleStaff:
		member, err := s.staff.FindByID(ctx, p.ID)
		if err != nil || member.BusinessID != p.BusinessID {
			return nil, ErrNotFound
		}
		return &dto.UserResponse{
			ID:           member.ID,
			Username:     member.Username,
			Email:        member.Email,
			Role:         string(model.RoleStaff),
			BusinessID:   business.ID,
			BusinessName: business.Name,
		}, nil
	}
	return nil, ErrAccessDenied
}

func (s *authService) issueTokens(userID uint, username string, role model.Role, business *model.Business, email *string) (*dto.LoginResponse, error) {
	access, err := s.generateToken(userID, username, role, business.ID, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	refresh, err := s.generateToken(userID, username, role, business.ID, time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	user := dto.UserResponse{
		ID:           userID,
		Username:     username,
		Email:        email,
		Role:         string(role),
		BusinessID:   business.ID,
		BusinessName: business.Name,
	}
	if business.CodePrefix != nil {
		user.BusinessCode = *business.CodePrefix
	}
	return &dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		ExpiresIn:    s.cfg.JWTExpirationHours * 3600,
		User:         user,
	}, nil
}

func (s *authService) generateToken(userID uint, username string, role model.Role, businessID uint, duration time.Duration) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"user_id":     userID,
		"username":    username,
		"role":        string(role),
		"business_id": businessID,
		"exp":         now.Add(duration).Unix(),
		"iat":         now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func ownerToResponse(o *model.Owner, b *model.Business) dto.UserResponse {
	resp := dto.UserResponse{
		ID:           o.ID,
		Username:     o.Username,
		Email:        &o.Email,
		Role:         string(model.RoleOwner),
		BusinessID:   b.ID,
		BusinessName: b.Name,
	}
	if b.CodePrefix != nil {
		resp.BusinessCode = *b.CodePrefix
	}
	return resp
}

func staffToResponse(s *model.Staff) dto.StaffResponse {
	return dto.StaffResponse{
		ID:        s.ID,
		Username:  s.Username,
		Email:     s.Email,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
	}
}
