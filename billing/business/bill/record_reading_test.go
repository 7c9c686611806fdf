package bill

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"waterbill.app/billing/mocks/business/pricing_business"
	"waterbill.app/billing/mocks/domain/state_machine"
	"waterbill.app/billing/mocks/store/bill_repo"
	"waterbill.app/billing/mocks/store/reading_repo"
	"waterbill.app/billing/model"
	"waterbill.app/billing/store"
	"waterbill.app/billing/store/accounts"
	"waterbill.app/billing/store/bills"
	"waterbill.app/billing/store/readings"
)

func TestRecordReading(t *testing.T) {
	account := accounts.Account{ID: uuid.New(), Role: "user"}
	image := "data:image/jpeg;base64,/9j/"

	testCases := []struct {
		name                string
		value               string
		price               string
		previous            *string
		latestError         error
		expectInsert        bool
		createReadingError  error
		createBillError     error
		expectedConsumption string
		expectedAmount      string
		expectedCode        errs.ErrCode
		expectedError       string
	}{
		{
			name:                "first_reading_uses_zero_previous",
			value:               "100",
			price:               "1.5",
			latestError:         pgx.ErrNoRows,
			expectInsert:        true,
			expectedConsumption: "100",
			expectedAmount:      "150",
		},
		{
			name:                "consumption_against_previous",
			value:               "142.5",
			price:               "2",
			previous:            ptr("100"),
			expectInsert:        true,
			expectedConsumption: "42.5",
			expectedAmount:      "85",
		},
		{
			name:          "lower_reading_rejected",
			value:         "50",
			price:         "1.5",
			previous:      ptr("100"),
			expectedCode:  errs.InvalidArgument,
			expectedError: "lower than the previous reading",
		},
		{
			name:          "previous_lookup_fails",
			value:         "50",
			price:         "1.5",
			latestError:   assert.AnError,
			expectedCode:  errs.Internal,
			expectedError: "failed to read previous reading",
		},
		{
			name:               "reading_insert_fails",
			value:              "10",
			price:              "1.5",
			latestError:        pgx.ErrNoRows,
			expectInsert:       true,
			createReadingError: assert.AnError,
			expectedCode:       errs.Internal,
			expectedError:      "failed to save reading",
		},
		{
			name:            "bill_insert_fails",
			value:           "10",
			price:           "1.5",
			latestError:     pgx.ErrNoRows,
			expectInsert:    true,
			createBillError: assert.AnError,
			expectedCode:    errs.Internal,
			expectedError:   "failed to issue bill",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockPricing := pricing_business.NewMockBusiness(ctrl)
			mockSM := state_machine.NewMockStateMachine(ctrl)
			mockTx := state_machine.NewMockTx(ctrl)
			mockReadings := reading_repo.NewMockQuerier(ctrl)
			mockBills := bill_repo.NewMockQuerier(ctrl)

			business := &business{pricing: mockPricing, stateMachine: mockSM, now: clock}

			mockPricing.EXPECT().GetPrice(gomock.Any()).
				Return(&model.PriceSetting{Value: decimal.RequireFromString(tc.price), IsSet: true}, nil)
			expectAccountLock(mockSM, mockTx, account)
			mockTx.EXPECT().Readings().Return(mockReadings).AnyTimes()
			mockTx.EXPECT().Bills().Return(mockBills).AnyTimes()

			latest := readings.MeterReading{}
			if tc.previous != nil {
				latest.Reading = store.Numeric(decimal.RequireFromString(*tc.previous))
			}
			mockReadings.EXPECT().GetLatestReading(gomock.Any(), account.ID).Return(latest, tc.latestError)

			readingID := uuid.New()
			if tc.expectInsert {
				mockReadings.EXPECT().
					CreateReading(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, arg readings.CreateReadingParams) (readings.MeterReading, error) {
						assert.Equal(t, account.ID, arg.AccountID)
						assert.True(t, decimal.RequireFromString(tc.value).Equal(store.Decimal(arg.Reading)))
						assert.Equal(t, image, arg.ProofImage.String)
						assert.Equal(t, fixedNow, arg.Date.Time)
						return readings.MeterReading{
							ID:              readingID,
							AccountID:       arg.AccountID,
							Reading:         arg.Reading,
							PreviousReading: arg.PreviousReading,
							Consumption:     arg.Consumption,
							ProofImage:      arg.ProofImage,
							Date:            arg.Date,
						}, tc.createReadingError
					})
			}
			if tc.expectInsert && tc.createReadingError == nil {
				mockBills.EXPECT().
					CreateBill(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, arg bills.CreateBillParams) (bills.Bill, error) {
						assert.Equal(t, readingID, arg.ReadingID)
						assert.Equal(t, string(model.BillStatusUnpaid), arg.Status)
						assert.Equal(t, fixedNow.AddDate(0, 0, 30), arg.DueDate.Time)
						return bills.Bill{
							ID:           uuid.New(),
							AccountID:    arg.AccountID,
							ReadingID:    arg.ReadingID,
							Amount:       arg.Amount,
							PricePerUnit: arg.PricePerUnit,
							Consumption:  arg.Consumption,
							IssueDate:    arg.IssueDate,
							DueDate:      arg.DueDate,
							Status:       arg.Status,
							ProofImage:   arg.ProofImage,
						}, tc.createBillError
					})
			}

			result, err := business.RecordReading(context.Background(), account.ID, decimal.RequireFromString(tc.value), &image)

			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Nil(t, result)
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedConsumption, result.Reading.Consumption.String())
			assert.Equal(t, tc.expectedConsumption, result.Bill.Consumption.String())
			assert.Equal(t, tc.expectedAmount, result.Bill.Amount.String())
			assert.Equal(t, tc.price, result.Bill.PricePerUnit.String())
			assert.Equal(t, model.BillStatusUnpaid, result.Bill.Status)
			assert.Equal(t, result.Bill.IssueDate.AddDate(0, 0, 30), result.Bill.DueDate)
		})
	}
}

func TestRecordReadingPriceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPricing := pricing_business.NewMockBusiness(ctrl)
	mockSM := state_machine.NewMockStateMachine(ctrl)
	business := &business{pricing: mockPricing, stateMachine: mockSM, now: clock}

	priceErr := &errs.Error{Code: errs.Internal, Message: "failed to read water price"}
	mockPricing.EXPECT().GetPrice(gomock.Any()).Return(nil, priceErr)

	result, err := business.RecordReading(context.Background(), uuid.New(), decimal.NewFromInt(1), nil)

	assert.Nil(t, result)
	assert.Equal(t, priceErr, err)
}

func TestRecordReadingUnknownAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPricing := pricing_business.NewMockBusiness(ctrl)
	mockSM := state_machine.NewMockStateMachine(ctrl)
	business := &business{pricing: mockPricing, stateMachine: mockSM, now: clock}

	mockPricing.EXPECT().GetPrice(gomock.Any()).Return(&model.PriceSetting{Value: model.DefaultPricePerUnit}, nil)
	mockSM.EXPECT().
		GetAccountWithLock(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&errs.Error{Code: errs.NotFound, Message: "user not found"})

	_, err := business.RecordReading(context.Background(), uuid.New(), decimal.NewFromInt(1), nil)

	assert.Equal(t, errs.NotFound, errs.Code(err))
}

func ptr(s string) *string { return &s }
