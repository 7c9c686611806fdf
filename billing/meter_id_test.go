package billing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore.dev/storage/sqldb"

	"waterbill.app/billing/store/accounts"
)

// Runs against the database encore test provisions from db/migrations.
func TestCreateAccount_MeterIDSequence(t *testing.T) {
	pool := sqldb.Driver(waterBillingDB)
	repo := accounts.New(pool)
	ctx := context.Background()

	testCases := []struct {
		name            string
		lastValue       int64
		expectedMeterID string
	}{
		{name: "two_digits_padded", lastValue: 98, expectedMeterID: "WTR099"},
		{name: "three_digits", lastValue: 998, expectedMeterID: "WTR999"},
		{name: "four_digits_not_truncated", lastValue: 999, expectedMeterID: "WTR1000"},
		{name: "five_digits_not_truncated", lastValue: 10010, expectedMeterID: "WTR10011"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pool.Exec(ctx, "SELECT setval('meter_id_seq', $1)", tc.lastValue)
			require.NoError(t, err)

			row, err := repo.CreateAccount(ctx, accounts.CreateAccountParams{
				Name:         "Meter " + tc.name,
				Address:      "1 Pump Street",
				PhoneNumber:  uuid.NewString(),
				PasswordHash: "x",
			})
			require.NoError(t, err)
			t.Cleanup(func() {
				_, _ = pool.Exec(context.Background(), "DELETE FROM accounts WHERE id = $1", row.ID)
			})

			assert.Equal(t, tc.expectedMeterID, row.MeterID)
			assert.Equal(t, "user", row.Role)
		})
	}
}
