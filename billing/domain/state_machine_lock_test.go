package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"waterbill.app/billing/domain"
	"waterbill.app/billing/mocks/domain/state_machine"
	"waterbill.app/billing/store/accounts"
	"waterbill.app/billing/store/bills"
)

func TestLockBeginFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := state_machine.NewMockBeginner(ctrl)
	sm := domain.NewBillStateMachine(mockDB)

	mockDB.EXPECT().Begin(gomock.Any()).Return(nil, errors.New("pool closed")).Times(2)

	called := false
	err := sm.GetBillWithLock(context.Background(), uuid.New(), func(tx domain.Tx, bill bills.Bill) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.Equal(t, errs.Internal, errs.Code(err))

	err = sm.GetAccountWithLock(context.Background(), uuid.New(), func(tx domain.Tx, account accounts.Account) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.False(t, called)
}
