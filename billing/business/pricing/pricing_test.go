package pricing

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"waterbill.app/billing/mocks/store/setting_repo"
	"waterbill.app/billing/model"
	"waterbill.app/billing/store/settings"
)

func TestGetPrice(t *testing.T) {
	testCases := []struct {
		name          string
		mockReturn    settings.Setting
		mockError     error
		expectedPrice string
		expectedIsSet bool
		expectedError string
	}{
		{
			name:          "stored_price",
			mockReturn:    settings.Setting{Key: model.PriceSettingKey, Value: "2.25", Version: 3},
			expectedPrice: "2.25",
			expectedIsSet: true,
		},
		{
			name:          "never_set_uses_default",
			mockError:     pgx.ErrNoRows,
			expectedPrice: "1.5",
		},
		{
			name:          "corrupt_value_uses_default",
			mockReturn:    settings.Setting{Key: model.PriceSettingKey, Value: "abc", Version: 1},
			expectedPrice: "1.5",
		},
		{
			name:          "store_failure",
			mockError:     errors.New("connection refused"),
			expectedError: "failed to read water price",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := setting_repo.NewMockQuerier(ctrl)
			business := &business{settingRepo: mockRepo}

			mockRepo.EXPECT().
				GetSetting(gomock.Any(), model.PriceSettingKey).
				Return(tc.mockReturn, tc.mockError)

			result, err := business.GetPrice(context.Background())

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Nil(t, result)
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedPrice, result.Value.String())
			assert.Equal(t, tc.expectedIsSet, result.IsSet)
		})
	}
}

func TestSetPrice(t *testing.T) {
	testCases := []struct {
		name          string
		price         decimal.Decimal
		mockError     error
		expectUpsert  bool
		expectedCode  errs.ErrCode
		expectedError string
	}{
		{
			name:         "valid_price",
			price:        decimal.RequireFromString("2.5"),
			expectUpsert: true,
		},
		{
			name:         "zero_price_allowed",
			price:        decimal.Zero,
			expectUpsert: true,
		},
		{
			name:          "negative_price",
			price:         decimal.RequireFromString("-0.01"),
			expectedCode:  errs.InvalidArgument,
			expectedError: "price must be a non-negative number",
		},
		{
			name:          "store_failure",
			price:         decimal.NewFromInt(3),
			mockError:     errors.New("disk full"),
			expectUpsert:  true,
			expectedCode:  errs.Internal,
			expectedError: "failed to save water price",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := setting_repo.NewMockQuerier(ctrl)
			business := &business{settingRepo: mockRepo}

			if tc.expectUpsert {
				mockRepo.EXPECT().
					UpsertSetting(gomock.Any(), settings.UpsertSettingParams{
						Key:   model.PriceSettingKey,
						Value: tc.price.String(),
					}).
					Return(settings.Setting{Version: 2}, tc.mockError)
			}

			result, err := business.SetPrice(context.Background(), tc.price)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Nil(t, result)
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.True(t, tc.price.Equal(result.Value))
			assert.Equal(t, int32(2), result.Version)
		})
	}
}
