package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoutout_backend/internal/models"
	"shoutout_backend/internal/repositories"
	"shoutout_backend/pkg/apperrors"
)

func deliveredOrder() *models.Order {
	o := &models.Order{
		OrderNumber:    "SO-20250101-abc123",
		CustomerID:     "cust-1",
		CelebrityID:    "celeb-1",
		Status:         models.OrderStatusPendingApproval,
		ApprovalStatus: models.ApprovalStatusPending,
		PaymentStatus:  models.PaymentStatusPaid,
		TotalAmount:    decimal.NewFromInt(150),
		Currency:       "USD",
		RecipientName:  "Sam",
		VideoKey:       "orders/SO-20250101-abc123/video.mp4",
		VideoURL:       "https://cdn.test/orders/SO-20250101-abc123/video.mp4",
	}
	o.ID = "order-1"
	return o
}

func newOrderServiceForTest(orderRepo *fakeOrderRepo, celebRepo *fakeCelebrityRepo, userRepo *fakeUserRepo) (OrderService, *fakeStorage) {
	store := newFakeStorage()
	svc := NewOrderService(orderRepo, celebRepo, userRepo, &fakeNotificationRepo{}, store, nopEmailProvider{})
	return svc, store
}

func TestOrderServiceApprove(t *testing.T) {
	order := deliveredOrder()
	orderRepo := newFakeOrderRepo(order)
	celebRepo := newFakeCelebrityRepo(&models.Celebrity{
		BaseModel: models.BaseModel{ID: "celeb-1"}, UserID: "celeb-user-1", DisplayName: "Ava Stone", Slug: "ava-stone",
	})
	svc, _ := newOrderServiceForTest(orderRepo, celebRepo, newFakeUserRepo())

	got, err := svc.Approve("cust-1", order.OrderNumber)
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusCompleted, got.Status)
	assert.Equal(t, models.ApprovalStatusApproved, got.ApprovalStatus)
	require.NotNil(t, got.ApprovedAt)
	assert.WithinDuration(t, time.Now(), *got.ApprovedAt, time.Minute)

	assert.True(t, got.CanTip)
	assert.True(t, got.CanDownload)
	assert.False(t, got.CanApprove)
	assert.False(t, got.NeedsWatermark)

	stored, err := orderRepo.FindByOrderNumber(order.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCompleted, stored.Status)
	assert.Equal(t, 1, celebRepo.completed["celeb-1"])
}

func TestOrderServiceApproveNotAwaiting(t *testing.T) {
	order := deliveredOrder()
	order.Status = models.OrderStatusInProgress
	order.ApprovalStatus = models.ApprovalStatusNone
	orderRepo := newFakeOrderRepo(order)
	svc, _ := newOrderServiceForTest(orderRepo, newFakeCelebrityRepo(), newFakeUserRepo())

	_, err := svc.Approve("cust-1", order.OrderNumber)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 409, appErr.HTTPCode)

	// The failed transition must not leak partial writes.
	stored, err := orderRepo.FindByOrderNumber(order.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusInProgress, stored.Status)
	assert.Equal(t, models.ApprovalStatusNone, stored.ApprovalStatus)
	assert.Nil(t, stored.ApprovedAt)
}

func TestOrderServiceApproveWithoutVideo(t *testing.T) {
	order := deliveredOrder()
	order.VideoKey = ""
	order.VideoURL = ""
	orderRepo := newFakeOrderRepo(order)
	svc, _ := newOrderServiceForTest(orderRepo, newFakeCelebrityRepo(), newFakeUserRepo())

	_, err := svc.Approve("cust-1", order.OrderNumber)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 409, appErr.HTTPCode)
	assert.Contains(t, appErr.Message, "no delivered video")
}

func TestOrderServiceApproveHidesForeignOrders(t *testing.T) {
	order := deliveredOrder()
	orderRepo := newFakeOrderRepo(order)
	svc, _ := newOrderServiceForTest(orderRepo, newFakeCelebrityRepo(), newFakeUserRepo())

	_, err := svc.Approve("someone-else", order.OrderNumber)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestOrderServiceDecline(t *testing.T) {
	order := deliveredOrder()
	orderRepo := newFakeOrderRepo(order)
	celebRepo := newFakeCelebrityRepo(&models.Celebrity{
		BaseModel: models.BaseModel{ID: "celeb-1"}, UserID: "celeb-user-1", DisplayName: "Ava Stone", Slug: "ava-stone",
	})
	svc, _ := newOrderServiceForTest(orderRepo, celebRepo, newFakeUserRepo())

	got, err := svc.Decline("cust-1", order.OrderNumber, "Wrong name pronounced")
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusDeclined, got.Status)
	assert.Equal(t, models.ApprovalStatusDeclined, got.ApprovalStatus)
	assert.Equal(t, "Wrong name pronounced", got.DeclinedReason)
	assert.False(t, got.CanTip)

	// Declined work never counts toward the celebrity's tally.
	assert.Zero(t, celebRepo.completed["celeb-1"])
}

func TestOrderServiceRequestRevision(t *testing.T) {
	order := deliveredOrder()
	orderRepo := newFakeOrderRepo(order)
	celebRepo := newFakeCelebrityRepo(&models.Celebrity{
		BaseModel: models.BaseModel{ID: "celeb-1"}, UserID: "celeb-user-1", DisplayName: "Ava Stone", Slug: "ava-stone",
	})
	svc, _ := newOrderServiceForTest(orderRepo, celebRepo, newFakeUserRepo())

	got, err := svc.RequestRevision("cust-1", order.OrderNumber, "Please mention the birthday")
	require.NoError(t, err)

	// Revision sends the order back into production.
	assert.Equal(t, models.OrderStatusInProgress, got.Status)
	assert.Equal(t, models.ApprovalStatusRevisionRequested, got.ApprovalStatus)
	assert.Equal(t, "Please mention the birthday", got.DeclinedReason)
}

func TestOrderServiceApproveNormalizesLegacyDelivered(t *testing.T) {
	order := deliveredOrder()
	order.Status = models.OrderStatusDelivered
	orderRepo := newFakeOrderRepo(order)
	celebRepo := newFakeCelebrityRepo(&models.Celebrity{
		BaseModel: models.BaseModel{ID: "celeb-1"}, UserID: "celeb-user-1", DisplayName: "Ava Stone", Slug: "ava-stone",
	})
	svc, _ := newOrderServiceForTest(orderRepo, celebRepo, newFakeUserRepo())

	got, err := svc.Approve("cust-1", order.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCompleted, got.Status)
	assert.Equal(t, models.ApprovalStatusApproved, got.ApprovalStatus)
}

func TestOrderServiceVideoLink(t *testing.T) {
	t.Run("watermarked preview before approval", func(t *testing.T) {
		order := deliveredOrder()
		svc, _ := newOrderServiceForTest(newFakeOrderRepo(order), newFakeCelebrityRepo(), newFakeUserRepo())

		link, err := svc.VideoLink(context.Background(), "cust-1", order.OrderNumber)
		require.NoError(t, err)
		assert.Equal(t, order.VideoURL, link.URL)
		assert.True(t, link.Watermarked)
		assert.Zero(t, link.ExpiresIn)
	})

	t.Run("signed download after approval", func(t *testing.T) {
		order := deliveredOrder()
		order.Status = models.OrderStatusCompleted
		order.ApprovalStatus = models.ApprovalStatusApproved
		svc, _ := newOrderServiceForTest(newFakeOrderRepo(order), newFakeCelebrityRepo(), newFakeUserRepo())

		link, err := svc.VideoLink(context.Background(), "cust-1", order.OrderNumber)
		require.NoError(t, err)
		assert.Contains(t, link.URL, "signed=1")
		assert.False(t, link.Watermarked)
		assert.Equal(t, int(signedVideoTTL.Seconds()), link.ExpiresIn)
	})

	t.Run("no video yet", func(t *testing.T) {
		order := deliveredOrder()
		order.Status = models.OrderStatusInProgress
		order.ApprovalStatus = models.ApprovalStatusNone
		order.VideoKey = ""
		order.VideoURL = ""
		svc, _ := newOrderServiceForTest(newFakeOrderRepo(order), newFakeCelebrityRepo(), newFakeUserRepo())

		_, err := svc.VideoLink(context.Background(), "cust-1", order.OrderNumber)
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, 404, appErr.HTTPCode)
	})
}

func TestOrderServiceCelebrityFulfilment(t *testing.T) {
	order := deliveredOrder()
	order.Status = models.OrderStatusConfirmed
	order.ApprovalStatus = models.ApprovalStatusNone
	order.VideoKey = ""
	order.VideoURL = ""
	orderRepo := newFakeOrderRepo(order)
	celebRepo := newFakeCelebrityRepo(&models.Celebrity{
		BaseModel: models.BaseModel{ID: "celeb-1"}, UserID: "celeb-user-1", DisplayName: "Ava Stone", Slug: "ava-stone",
	})
	userRepo := newFakeUserRepo(&models.User{
		BaseModel: models.BaseModel{ID: "cust-1"}, Email: "sam@example.com", Name: "Sam",
	})
	svc, store := newOrderServiceForTest(orderRepo, celebRepo, userRepo)

	videoKey := "orders/" + order.OrderNumber + "/take-1.mp4"
	require.NoError(t, store.Save(context.Background(), videoKey, strings.NewReader("video-bytes"), "video/mp4"))

	got, err := svc.Accept("celeb-user-1", order.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusAccepted, got.Status)

	got, err = svc.Start("celeb-user-1", order.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusInProgress, got.Status)

	got, err = svc.Deliver(context.Background(), "celeb-user-1", order.OrderNumber, videoKey)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPendingApproval, got.Status)
	assert.NotEmpty(t, got.VideoURL)
	assert.True(t, got.CanApprove)
	assert.True(t, got.NeedsWatermark)
	assert.False(t, got.CanTip)
}

func TestOrderServiceDeliverRequiresOwnOrder(t *testing.T) {
	order := deliveredOrder()
	order.Status = models.OrderStatusInProgress
	order.ApprovalStatus = models.ApprovalStatusNone
	orderRepo := newFakeOrderRepo(order)
	celebRepo := newFakeCelebrityRepo(&models.Celebrity{
		BaseModel: models.BaseModel{ID: "celeb-2"}, UserID: "other-celeb-user", DisplayName: "Max Reed", Slug: "max-reed",
	})
	svc, _ := newOrderServiceForTest(orderRepo, celebRepo, newFakeUserRepo())

	_, err := svc.Deliver(context.Background(), "other-celeb-user", order.OrderNumber, "orders/x/take-1.mp4")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestOrderServiceCancelStalePendingWorkerContract(t *testing.T) {
	stale := deliveredOrder()
	stale.OrderNumber = "SO-20250101-stale1"
	stale.ID = "order-stale"
	stale.Status = models.OrderStatusPending
	stale.PaymentStatus = models.PaymentStatusPending
	stale.CreatedAt = time.Now().Add(-96 * time.Hour)

	fresh := deliveredOrder()
	fresh.OrderNumber = "SO-20250101-fresh1"
	fresh.ID = "order-fresh"
	fresh.Status = models.OrderStatusPending
	fresh.PaymentStatus = models.PaymentStatusPending
	fresh.CreatedAt = time.Now()

	repo := newFakeOrderRepo(stale, fresh)
	n, err := repo.CancelStalePending(time.Now().Add(-72 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := repo.FindByOrderNumber("SO-20250101-fresh1")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, got.Status)
}

func TestOrderServiceListForCelebrity(t *testing.T) {
	mine := deliveredOrder()
	other := deliveredOrder()
	other.OrderNumber = "SO-20250101-def456"
	other.ID = "order-2"
	other.CelebrityID = "celeb-9"

	orderRepo := newFakeOrderRepo(mine, other)
	celebRepo := newFakeCelebrityRepo(&models.Celebrity{
		BaseModel: models.BaseModel{ID: "celeb-1"}, UserID: "celeb-user-1", DisplayName: "Ava Stone", Slug: "ava-stone",
	})
	svc, _ := newOrderServiceForTest(orderRepo, celebRepo, newFakeUserRepo())

	orders, paging, err := svc.ListForCelebrity("celeb-user-1", "", 1, 20)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, mine.OrderNumber, orders[0].OrderNumber)
	assert.Equal(t, int64(1), paging.Total)

	_, _, err = svc.ListForCelebrity("nobody", "", 1, 20)
	require.Error(t, err)
}

func TestOrderServiceFail(t *testing.T) {
	order := deliveredOrder()
	order.Status = models.OrderStatusConfirmed
	order.ApprovalStatus = models.ApprovalStatusNone
	orderRepo := newFakeOrderRepo(order)
	svc, _ := newOrderServiceForTest(orderRepo, newFakeCelebrityRepo(), newFakeUserRepo())

	got, err := svc.Fail(order.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusFailed, got.Status)

	// Terminal orders cannot fail twice.
	_, err = svc.Fail(order.OrderNumber)
	require.Error(t, err)
}

func TestFindWithFilterIgnoresUnrelatedRows(t *testing.T) {
	a := deliveredOrder()
	b := deliveredOrder()
	b.OrderNumber = "SO-20250101-zzz999"
	b.ID = "order-b"
	b.CustomerID = "cust-2"

	repo := newFakeOrderRepo(a, b)
	rows, total, err := repo.FindWithFilter(repositories.OrderFilter{CustomerID: "cust-2"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, "cust-2", rows[0].CustomerID)
}
