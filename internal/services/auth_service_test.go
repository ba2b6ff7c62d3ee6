package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divi1127/BackendDeepF/internal/dtos"
	"github.com/divi1127/BackendDeepF/internal/middleware"
	"github.com/divi1127/BackendDeepF/internal/models"
	"github.com/divi1127/BackendDeepF/internal/utils"
)

// ------------------------------------------------------------------
// fakes
// ------------------------------------------------------------------

type fakeUserRepo struct {
	users  map[string]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, u *models.User) (int64, error) {
	if _, exists := f.users[u.Email]; exists {
		return 0, utils.ErrEmailExists
	}
	u.ID = f.nextID
	f.nextID++
	f.users[u.Email] = u
	return u.ID, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return f.users[email], nil
}

func (f *fakeUserRepo) ListAll(_ context.Context) ([]*models.User, error) {
	var out []*models.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

type fakeOTPRepo struct {
	codes []*models.UserOTP
}

func (f *fakeOTPRepo) CreateCode(_ context.Context, email, code string, expiresAt time.Time) error {
	f.codes = append(f.codes, &models.UserOTP{
		Email:     email,
		Code:      code,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	})
	return nil
}

func (f *fakeOTPRepo) GetValidCode(_ context.Context, email, code string) (*models.UserOTP, error) {
	for _, rec := range f.codes {
		if rec.Email == email && rec.Code == code && rec.ExpiresAt.After(time.Now()) {
			return rec, nil
		}
	}
	return nil, nil
}

func (f *fakeOTPRepo) DeleteAllForEmail(_ context.Context, email string) error {
	var kept []*models.UserOTP
	for _, rec := range f.codes {
		if rec.Email != email {
			kept = append(kept, rec)
		}
	}
	f.codes = kept
	return nil
}

func (f *fakeOTPRepo) CleanupExpired(_ context.Context) error { return nil }

type fakeNotifier struct {
	otps   []string
	acks   []string
	intern []string
}

func (f *fakeNotifier) SendOTP(_, code string)               { f.otps = append(f.otps, code) }
func (f *fakeNotifier) SendAcknowledgment(_, addr, _ string) { f.acks = append(f.acks, addr) }
func (f *fakeNotifier) SendInternal(kind string, _ map[string]string) {
	f.intern = append(f.intern, kind)
}
func (f *fakeNotifier) Enabled() bool { return true }

// ------------------------------------------------------------------
// tests
// ------------------------------------------------------------------

var testJWTSecret = []byte("auth-service-test-secret")

func newAuthFixture() (AuthService, *fakeUserRepo, *fakeOTPRepo, *fakeNotifier) {
	users := newFakeUserRepo()
	otps := &fakeOTPRepo{}
	notifier := &fakeNotifier{}
	return NewAuthService(users, otps, notifier, testJWTSecret), users, otps, notifier
}

func signup(t *testing.T, svc AuthService) {
	t.Helper()
	err := svc.Signup(context.Background(), dtos.SignupRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
}

func TestSignupHashesPassword(t *testing.T) {
	svc, users, _, _ := newAuthFixture()
	signup(t, svc)

	stored := users.users["asha@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "hunter22", stored.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("hunter22", stored.PasswordHash))
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newAuthFixture()
	signup(t, svc)

	err := svc.Signup(context.Background(), dtos.SignupRequest{
		Name:     "Asha Again",
		Email:    "asha@example.com",
		Password: "different",
	})
	require.ErrorIs(t, err, utils.ErrEmailExists)
}

func TestLoginStoresSixDigitCode(t *testing.T) {
	svc, _, otps, notifier := newAuthFixture()
	signup(t, svc)

	before := time.Now()
	err := svc.Login(context.Background(), dtos.LoginRequest{
		Email:    "asha@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	require.Len(t, otps.codes, 1)
	rec := otps.codes[0]
	assert.Regexp(t, `^\d{6}$`, rec.Code)
	assert.WithinDuration(t, before.Add(10*time.Minute), rec.ExpiresAt, 5*time.Second)

	require.Len(t, notifier.otps, 1)
	assert.Equal(t, rec.Code, notifier.otps[0])
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, otps, _ := newAuthFixture()
	signup(t, svc)

	err := svc.Login(context.Background(), dtos.LoginRequest{
		Email:    "asha@example.com",
		Password: "wrong",
	})
	require.ErrorIs(t, err, utils.ErrInvalidCredentials)
	assert.Empty(t, otps.codes)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	err := svc.Login(context.Background(), dtos.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	require.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginAccumulatesCodes(t *testing.T) {
	svc, _, otps, _ := newAuthFixture()
	signup(t, svc)

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.Login(context.Background(), dtos.LoginRequest{
			Email:    "asha@example.com",
			Password: "hunter22",
		}))
	}
	assert.Len(t, otps.codes, 3)
}

func TestVerifyOTPSucceedsExactlyOnce(t *testing.T) {
	svc, _, otps, _ := newAuthFixture()
	signup(t, svc)
	require.NoError(t, svc.Login(context.Background(), dtos.LoginRequest{
		Email:    "asha@example.com",
		Password: "hunter22",
	}))
	code := otps.codes[0].Code

	req := dtos.VerifyOTPRequest{Email: "asha@example.com", OTP: code}
	token, user, err := svc.VerifyOTP(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "asha@example.com", user.Email)

	claims, err := middleware.ValidateToken(token, testJWTSecret)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", claims["email"])

	// All codes for the email were consumed; the same code cannot verify twice.
	assert.Empty(t, otps.codes)
	_, _, err = svc.VerifyOTP(context.Background(), req)
	require.ErrorIs(t, err, utils.ErrInvalidOTP)
}

func TestVerifyOTPExpiredCode(t *testing.T) {
	svc, _, otps, _ := newAuthFixture()
	signup(t, svc)

	otps.codes = append(otps.codes, &models.UserOTP{
		Email:     "asha@example.com",
		Code:      "123456",
		ExpiresAt: time.Now().Add(-time.Minute),
	})

	_, _, err := svc.VerifyOTP(context.Background(), dtos.VerifyOTPRequest{
		Email: "asha@example.com",
		OTP:   "123456",
	})
	require.ErrorIs(t, err, utils.ErrInvalidOTP)

	// Expired rows are left for the cleanup job, not deleted by verification.
	assert.Len(t, otps.codes, 1)
}

func TestVerifyOTPWrongCode(t *testing.T) {
	svc, _, otps, _ := newAuthFixture()
	signup(t, svc)
	require.NoError(t, svc.Login(context.Background(), dtos.LoginRequest{
		Email:    "asha@example.com",
		Password: "hunter22",
	}))

	_, _, err := svc.VerifyOTP(context.Background(), dtos.VerifyOTPRequest{
		Email: "asha@example.com",
		OTP:   "000000",
	})
	require.ErrorIs(t, err, utils.ErrInvalidOTP)
	assert.Len(t, otps.codes, 1)
}
