package services

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revertpixels/CardReminder/internal/models"
)

func setupResetService(t *testing.T) (PasswordResetService, *fakeUserRepo, *fakeResetRepo, *fakeEmailService) {
	t.Helper()
	users := newFakeUserRepo()
	resets := newFakeResetRepo()
	emails := newFakeEmailService()
	require.NoError(t, users.Create(&models.User{Name: "Asha", Email: "asha@example.com", PasswordHash: "$2a$10$x"}))
	svc := NewPasswordResetService(users, resets, emails, NewAuthService())
	return svc, users, resets, emails
}

func TestRequestReset_IssuesCode(t *testing.T) {
	svc, _, resets, emails := setupResetService(t)

	require.NoError(t, svc.RequestReset("asha@example.com"))

	pr := resets.challenges[1]
	require.NotNil(t, pr)
	assert.Len(t, pr.Code, 6)
	assert.False(t, pr.Verified)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), pr.ExpiresAt, time.Minute)
	assert.Equal(t, pr.Code, emails.resets["asha@example.com"])
}

func TestRequestReset_UnknownEmailDoesNotLeak(t *testing.T) {
	svc, _, resets, emails := setupResetService(t)

	require.NoError(t, svc.RequestReset("nobody@example.com"))
	assert.Empty(t, resets.challenges[2])
	assert.Empty(t, emails.resets["nobody@example.com"])
}

func TestVerifyCode_HappyPath(t *testing.T) {
	svc, _, resets, emails := setupResetService(t)
	require.NoError(t, svc.RequestReset("asha@example.com"))

	require.NoError(t, svc.VerifyCode("asha@example.com", emails.resets["asha@example.com"]))
	assert.True(t, resets.challenges[1].Verified)
}

func TestVerifyCode_WrongCode(t *testing.T) {
	svc, _, resets, _ := setupResetService(t)
	require.NoError(t, svc.RequestReset("asha@example.com"))

	err := svc.VerifyCode("asha@example.com", "000000")
	assert.ErrorIs(t, err, ErrInvalidOrExpiredCode)
	assert.False(t, resets.challenges[1].Verified)
}

func TestVerifyCode_ExpiredCodeFailsEvenIfCorrect(t *testing.T) {
	svc, _, resets, emails := setupResetService(t)
	require.NoError(t, svc.RequestReset("asha@example.com"))

	resets.challenges[1].ExpiresAt = time.Now().Add(-time.Second)

	err := svc.VerifyCode("asha@example.com", emails.resets["asha@example.com"])
	assert.ErrorIs(t, err, ErrInvalidOrExpiredCode)
}

func TestVerifyCode_NewRequestInvalidatesOldCode(t *testing.T) {
	svc, _, _, emails := setupResetService(t)

	require.NoError(t, svc.RequestReset("asha@example.com"))
	oldCode := emails.resets["asha@example.com"]

	require.NoError(t, svc.RequestReset("asha@example.com"))
	newCode := emails.resets["asha@example.com"]
	require.NotEqual(t, oldCode, newCode)

	assert.ErrorIs(t, svc.VerifyCode("asha@example.com", oldCode), ErrInvalidOrExpiredCode)
	assert.NoError(t, svc.VerifyCode("asha@example.com", newCode))
}

func TestResetPassword_BeforeVerifyFails(t *testing.T) {
	svc, _, _, _ := setupResetService(t)
	require.NoError(t, svc.RequestReset("asha@example.com"))

	err := svc.ResetPassword("asha@example.com", "newsecret")
	assert.ErrorIs(t, err, ErrChallengeNotVerified)
}

func TestResetPassword_ConsumesChallenge(t *testing.T) {
	svc, users, resets, emails := setupResetService(t)
	require.NoError(t, svc.RequestReset("asha@example.com"))
	require.NoError(t, svc.VerifyCode("asha@example.com", emails.resets["asha@example.com"]))

	oldHash := users.users["asha@example.com"].PasswordHash
	require.NoError(t, svc.ResetPassword("asha@example.com", "newsecret"))

	assert.NotEqual(t, oldHash, users.users["asha@example.com"].PasswordHash)
	assert.Nil(t, resets.challenges[1], "challenge must be consumed")

	// second consume attempt fails: the challenge is single-use
	assert.ErrorIs(t, svc.ResetPassword("asha@example.com", "another"), ErrChallengeNotVerified)
}

func TestResetPassword_RejectsShortPassword(t *testing.T) {
	svc, _, _, emails := setupResetService(t)
	require.NoError(t, svc.RequestReset("asha@example.com"))
	require.NoError(t, svc.VerifyCode("asha@example.com", emails.resets["asha@example.com"]))

	assert.Error(t, svc.ResetPassword("asha@example.com", "abc"))
}

func TestGenerateResetCode_Range(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := generateResetCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}
