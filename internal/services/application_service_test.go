package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoutout_backend/internal/models"
	"shoutout_backend/internal/services/dto"
	"shoutout_backend/pkg/apperrors"
)

func newApplicationServiceForTest(userRepo *fakeUserRepo, celebRepo *fakeCelebrityRepo) (ApplicationService, *fakeApplicationRepo) {
	appRepo := newFakeApplicationRepo()
	svc := NewApplicationService(appRepo, userRepo, celebRepo, nopEmailProvider{})
	return svc, appRepo
}

func submitApplication(t *testing.T, svc ApplicationService) *dto.ApplicationDTO {
	t.Helper()
	app, err := svc.Submit(&dto.CreateApplicationRequest{
		Name:           "Ava Stone",
		Email:          "Ava@Example.com",
		Category:       "Musicians",
		Bio:            "Touring singer-songwriter with two studio albums.",
		SocialLinks:    []string{"https://instagram.com/avastone"},
		FollowerCount:  250000,
		RequestedPrice: "149.00",
		HasIDDocument:  true,
		HasSocialProof: true,
	})
	require.NoError(t, err)
	return app
}

func TestApplicationServiceSubmit(t *testing.T) {
	svc, _ := newApplicationServiceForTest(newFakeUserRepo(), newFakeCelebrityRepo())

	app := submitApplication(t, svc)
	assert.Equal(t, models.ApplicationStatusPending, app.Status)
	assert.Equal(t, "ava@example.com", app.Email)
	assert.Equal(t, "149", app.RequestedPrice.String())
}

func TestApplicationServiceSubmitRejectsBadPrice(t *testing.T) {
	svc, _ := newApplicationServiceForTest(newFakeUserRepo(), newFakeCelebrityRepo())

	for _, price := range []string{"0", "-20", "free"} {
		_, err := svc.Submit(&dto.CreateApplicationRequest{
			Name:           "Ava Stone",
			Email:          "ava@example.com",
			Category:       "Musicians",
			Bio:            "Touring singer-songwriter with two studio albums.",
			RequestedPrice: price,
		})
		require.Error(t, err, "price %q", price)
	}
}

func TestApplicationServiceApproveProvisionsCelebrity(t *testing.T) {
	userRepo := newFakeUserRepo()
	celebRepo := newFakeCelebrityRepo()
	svc, _ := newApplicationServiceForTest(userRepo, celebRepo)

	app := submitApplication(t, svc)

	reviewed, err := svc.Review("admin-1", app.ID, &dto.ReviewApplicationRequest{
		Decision: "approved",
		Notes:    "Checks out",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusApproved, reviewed.Status)
	assert.Equal(t, "admin-1", reviewed.ReviewerID)
	require.NotNil(t, reviewed.ReviewedAt)

	user, err := userRepo.FindByEmail("ava@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleCelebrity, user.Role)
	assert.NotEmpty(t, user.PasswordHash)

	celeb, err := celebRepo.FindByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ava-stone", celeb.Slug)
	assert.Equal(t, "Musicians", celeb.Category)
	assert.Equal(t, "149", celeb.Price.String())
}

func TestApplicationServiceApproveUpgradesExistingUser(t *testing.T) {
	existing := &models.User{
		BaseModel:    models.BaseModel{ID: "u-existing"},
		Email:        "ava@example.com",
		PasswordHash: "hash",
		Name:         "Ava",
		Role:         models.UserRoleCustomer,
		Status:       models.UserStatusActive,
	}
	userRepo := newFakeUserRepo(existing)
	celebRepo := newFakeCelebrityRepo()
	svc, _ := newApplicationServiceForTest(userRepo, celebRepo)

	app := submitApplication(t, svc)
	_, err := svc.Review("admin-1", app.ID, &dto.ReviewApplicationRequest{Decision: "approved"})
	require.NoError(t, err)

	user, err := userRepo.FindByID("u-existing")
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleCelebrity, user.Role)
	// The existing account keeps its password.
	assert.Equal(t, "hash", user.PasswordHash)

	_, err = celebRepo.FindByUserID("u-existing")
	require.NoError(t, err)
}

func TestApplicationServiceReviewIsFinal(t *testing.T) {
	svc, _ := newApplicationServiceForTest(newFakeUserRepo(), newFakeCelebrityRepo())

	app := submitApplication(t, svc)
	_, err := svc.Review("admin-1", app.ID, &dto.ReviewApplicationRequest{Decision: "rejected", Notes: "No proof"})
	require.NoError(t, err)

	_, err = svc.Review("admin-2", app.ID, &dto.ReviewApplicationRequest{Decision: "approved"})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.HTTPCode)
}

func TestApplicationServiceNonTerminalDecision(t *testing.T) {
	svc, appRepo := newApplicationServiceForTest(newFakeUserRepo(), newFakeCelebrityRepo())

	app := submitApplication(t, svc)
	reviewed, err := svc.Review("admin-1", app.ID, &dto.ReviewApplicationRequest{Decision: "under_review"})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusUnderReview, reviewed.Status)
	assert.Nil(t, reviewed.ReviewedAt)

	// A held application can still be decided later.
	_, err = svc.Review("admin-1", app.ID, &dto.ReviewApplicationRequest{Decision: "approved"})
	require.NoError(t, err)

	stored, err := appRepo.FindByID(app.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusApproved, stored.Status)
}

func TestApplicationServiceStats(t *testing.T) {
	svc, _ := newApplicationServiceForTest(newFakeUserRepo(), newFakeCelebrityRepo())

	submitApplication(t, svc)
	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Total)
	assert.Equal(t, int64(1), stats.Pending)
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Ava Stone":        "ava-stone",
		"  DJ  Max!  ":     "dj-max",
		"Émile":            "mile",
		"three--dashes---": "three-dashes",
	}
	for in, want := range cases {
		assert.Equal(t, want, slugify(in), "slugify(%q)", in)
	}
}
