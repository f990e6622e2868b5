package services

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoutout_backend/internal/models"
	"shoutout_backend/internal/services/dto"
	"shoutout_backend/pkg/apperrors"
)

func newTipServiceForTest(orderRepo *fakeOrderRepo) (TipService, *fakeTipRepo) {
	tipRepo := &fakeTipRepo{}
	svc := NewTipService(tipRepo, orderRepo, newFakeCelebrityRepo(), &fakeNotificationRepo{})
	return svc, tipRepo
}

func approvedOrder() *models.Order {
	o := deliveredOrder()
	o.Status = models.OrderStatusCompleted
	o.ApprovalStatus = models.ApprovalStatusApproved
	return o
}

func TestTipServiceCreateAggregatesTotal(t *testing.T) {
	order := approvedOrder()
	orderRepo := newFakeOrderRepo(order)
	svc, _ := newTipServiceForTest(orderRepo)

	first, err := svc.Create("cust-1", order.OrderNumber, &dto.CreateTipRequest{Amount: "50.00", Message: "Loved it!"})
	require.NoError(t, err)
	assert.Equal(t, "50", first.Amount.String())

	_, err = svc.Create("cust-1", order.OrderNumber, &dto.CreateTipRequest{Amount: "25.00"})
	require.NoError(t, err)

	// The stored total is re-aggregated from the tips table, not
	// incremented, so both writes converge on one figure.
	stored, err := orderRepo.FindByOrderNumber(order.OrderNumber)
	require.NoError(t, err)
	assert.True(t, stored.TipTotal.Equal(decimal.RequireFromString("75.00")),
		"tip_total = %s, want 75.00", stored.TipTotal)
}

func TestTipServiceRejectsUnapprovedOrder(t *testing.T) {
	cases := []struct {
		name     string
		status   models.OrderStatus
		approval models.ApprovalStatus
	}{
		{"pending approval", models.OrderStatusPendingApproval, models.ApprovalStatusPending},
		{"in progress", models.OrderStatusInProgress, models.ApprovalStatusNone},
		{"declined", models.OrderStatusDeclined, models.ApprovalStatusDeclined},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order := deliveredOrder()
			order.Status = tc.status
			order.ApprovalStatus = tc.approval
			svc, tipRepo := newTipServiceForTest(newFakeOrderRepo(order))

			_, err := svc.Create("cust-1", order.OrderNumber, &dto.CreateTipRequest{Amount: "10.00"})
			require.Error(t, err)

			var appErr *apperrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, 409, appErr.HTTPCode)
			assert.Empty(t, tipRepo.tips)
		})
	}
}

func TestTipServiceRejectsBadAmount(t *testing.T) {
	order := approvedOrder()
	svc, tipRepo := newTipServiceForTest(newFakeOrderRepo(order))

	for _, amount := range []string{"0", "-5", "abc", ""} {
		_, err := svc.Create("cust-1", order.OrderNumber, &dto.CreateTipRequest{Amount: amount})
		require.Error(t, err, "amount %q", amount)
	}
	assert.Empty(t, tipRepo.tips)
}

func TestTipServiceHidesForeignOrders(t *testing.T) {
	order := approvedOrder()
	svc, _ := newTipServiceForTest(newFakeOrderRepo(order))

	_, err := svc.Create("someone-else", order.OrderNumber, &dto.CreateTipRequest{Amount: "10.00"})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode)

	_, err = svc.ListForOrder("someone-else", order.OrderNumber)
	require.Error(t, err)
}

func TestTipServiceListForOrder(t *testing.T) {
	order := approvedOrder()
	svc, _ := newTipServiceForTest(newFakeOrderRepo(order))

	_, err := svc.Create("cust-1", order.OrderNumber, &dto.CreateTipRequest{Amount: "20.00", Message: "Thanks"})
	require.NoError(t, err)

	tips, err := svc.ListForOrder("cust-1", order.OrderNumber)
	require.NoError(t, err)
	require.Len(t, tips, 1)
	assert.Equal(t, order.OrderNumber, tips[0].OrderNumber)
	assert.Equal(t, "Thanks", tips[0].Message)
}
