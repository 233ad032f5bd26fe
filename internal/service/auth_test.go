package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Whillz7/BizFinTrackr/internal/codegen"
	"github.com/Whillz7/BizFinTrackr/internal/config"
	"github.com/Whillz7/BizFinTrackr/internal/dto"
	"github.com/Whillz7/BizFinTrackr/internal/model"
	"github.com/Whillz7/BizFinTrackr/internal/service"
)

type authFixture struct {
	owners     *stubOwnerRepo
	staff      *stubStaffRepo
	businesses *stubBusinessRepo
	svc        service.AuthService
}

func newAuthFixture() *authFixture {
	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
	}
	owners := newStubOwnerRepo()
	staff := newStubStaffRepo()
	businesses := newStubBusinessRepo()
	return &authFixture{
		owners:     owners,
		staff:      staff,
		businesses: businesses,
		svc:        service.NewAuthService(owners, staff, businesses, cfg),
	}
}

func (f *authFixture) register(t *testing.T) *dto.UserResponse {
	t.Helper()
	resp, err := f.svc.RegisterOwner(context.Background(), dto.RegisterRequest{
		Username:     "kemi",
		Email:        "Kemi@Example.com",
		Password:     "super-secret-1",
		BusinessName: "Kemi Stores",
	})
	require.NoError(t, err)
	return resp
}

func TestRegisterOwnerAssignsBusinessCode(t *testing.T) {
	f := newAuthFixture()
	resp := f.register(t)

	want := codegen.BusinessCode("Kemi Stores", resp.BusinessID, time.Now())
	assert.Equal(t, want, resp.BusinessCode)
	assert.Equal(t, "owner", resp.Role)

	// Owner is linked back to the business inside the same transaction.
	owner, err := f.owners.FindByID(context.Background(), resp.ID)
	require.NoError(t, err)
	require.NotNil(t, owner.BusinessID)
	assert.Equal(t, resp.BusinessID, *owner.BusinessID)
}

func TestRegisterOwnerNormalizesEmail(t *testing.T) {
	f := newAuthFixture()
	f.register(t)

	_, err := f.owners.FindByEmail(context.Background(), "kemi@example.com")
	assert.NoError(t, err)
}

func TestRegisterDuplicateBusinessName(t *testing.T) {
	f := newAuthFixture()
	f.register(t)

	_, err := f.svc.RegisterOwner(context.Background(), dto.RegisterRequest{
		Username:     "tunde",
		Email:        "tunde@example.com",
		Password:     "super-secret-2",
		BusinessName: "Kemi Stores",
	})
	assert.ErrorIs(t, err, service.ErrDuplicateName)
}

func TestRegisterRejectsBlankFields(t *testing.T) {
	f := newAuthFixture()

	_, err := f.svc.RegisterOwner(context.Background(), dto.RegisterRequest{
		Username:     "  ",
		Email:        "x@example.com",
		Password:     "super-secret-1",
		BusinessName: "Shop",
	})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestLoginRoundTrip(t *testing.T) {
	f := newAuthFixture()
	f.register(t)

	resp, err := f.svc.Login(context.Background(), dto.LoginRequest{
		Email:    "kemi@example.com",
		Password: "super-secret-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 8*3600, resp.ExpiresIn)
	assert.NotEmpty(t, resp.AccessToken)

	token, err := jwt.Parse(resp.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "owner", claims["role"])
	assert.Equal(t, float64(resp.User.BusinessID), claims["business_id"])
}

func TestLoginWrongPassword(t *testing.T) {
	f := newAuthFixture()
	f.register(t)

	_, err := f.svc.Login(context.Background(), dto.LoginRequest{
		Email:    "kemi@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, service.ErrInvalidCredential)
}

func TestStaffLoginScopedToBusiness(t *testing.T) {
	f := newAuthFixture()
	reg := f.register(t)
	owner := model.Principal{ID: reg.ID, Username: "kemi", Role: model.RoleOwner, BusinessID: reg.BusinessID}

	_, err := f.svc.CreateStaff(context.Background(), owner, dto.CreateStaffRequest{
		Username: "clerk",
		Password: "staff-pass-99",
	})
	require.NoError(t, err)

	resp, err := f.svc.StaffLogin(context.Background(), dto.StaffLoginRequest{
		BusinessName: "Kemi Stores",
		Username:     "clerk",
		Password:     "staff-pass-99",
	})
	require.NoError(t, err)
	assert.Equal(t, "staff", resp.User.Role)
	assert.Equal(t, reg.BusinessID, resp.User.BusinessID)

	// Same credentials under another business name must fail.
	_, err = f.svc.StaffLogin(context.Background(), dto.StaffLoginRequest{
		BusinessName: "Another Shop",
		Username:     "clerk",
		Password:     "staff-pass-99",
	})
	assert.ErrorIs(t, err, service.ErrInvalidCredential)
}

func TestCreateStaffRequiresOwner(t *testing.T) {
	f := newAuthFixture()
	reg := f.register(t)
	staffPrincipal := model.Principal{ID: 7, Username: "clerk", Role: model.RoleStaff, BusinessID: reg.BusinessID}

	_, err := f.svc.CreateStaff(context.Background(), staffPrincipal, dto.CreateStaffRequest{
		Username: "mole",
		Password: "whatever-123",
	})
	assert.ErrorIs(t, err, service.ErrAccessDenied)
}

func TestCreateStaffDuplicateUsername(t *testing.T) {
	f := newAuthFixture()
	reg := f.register(t)
	owner := model.Principal{ID: reg.ID, Username: "kemi", Role: model.RoleOwner, BusinessID: reg.BusinessID}

	_, err := f.svc.CreateStaff(context.Background(), owner, dto.CreateStaffRequest{
		Username: "clerk", Password: "staff-pass-99",
	})
	require.NoError(t, err)
	_, err = f.svc.CreateStaff(context.Background(), owner, dto.CreateStaffRequest{
		Username: "clerk", Password: "staff-pass-00",
	})
	assert.ErrorIs(t, err, service.ErrDuplicateName)
}

func TestRefreshIssuesNewTokens(t *testing.T) {
	f := newAuthFixture()
	f.register(t)

	login, err := f.svc.Login(context.Background(), dto.LoginRequest{
		Email:    "kemi@example.com",
		Password: "super-secret-1",
	})
	require.NoError(t, err)

	refreshed, err := f.svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, login.User.ID, refreshed.User.ID)

	_, err = f.svc.Refresh(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, service.ErrInvalidCredential)
}

func TestMeResolvesProfile(t *testing.T) {
	f := newAuthFixture()
	reg := f.register(t)
	owner := model.Principal{ID: reg.ID, Username: "kemi", Role: model.RoleOwner, BusinessID: reg.BusinessID}

	me, err := f.svc.Me(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, "kemi", me.Username)
	assert.Equal(t, "Kemi Stores", me.BusinessName)
	assert.Equal(t, reg.BusinessCode, me.BusinessCode)
}

func TestUpdateProfileChangesPassword(t *testing.T) {
	f := newAuthFixture()
	reg := f.register(t)
	owner := model.Principal{ID: reg.ID, Username: "kemi", Role: model.RoleOwner, BusinessID: reg.BusinessID}

	_, err := f.svc.UpdateProfile(context.Background(), owner, dto.UpdateProfileRequest{
		Password: "rotated-secret-2",
	})
	require.NoError(t, err)

	_, err = f.svc.Login(context.Background(), dto.LoginRequest{
		Email: "kemi@example.com", Password: "super-secret-1",
	})
	assert.ErrorIs(t, err, service.ErrInvalidCredential)

	_, err = f.svc.Login(context.Background(), dto.LoginRequest{
		Email: "kemi@example.com", Password: "rotated-secret-2",
	})
	assert.NoError(t, err)
}
