package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waterbill.app/billing/model"
)

func TestParseSeedFile(t *testing.T) {
	testCases := []struct {
		name          string
		input         string
		expectedError string
		check         func(t *testing.T, seed *SeedFile)
	}{
		{
			name: "valid_seed",
			input: `
price: 1.5
accounts:
  - name: System Admin
    address: 000 System St
    phone_number: "5550000"
    meter_id: SYS001
    role: super_admin
    password: superadminpassword
  - name: Alice
    address: 123 Oak St
    phone_number: "5550101"
    meter_id: WTR001
    password: password123
`,
			check: func(t *testing.T, seed *SeedFile) {
				require.NotNil(t, seed.Price)
				assert.Equal(t, "1.5", seed.Price.String())
				require.Len(t, seed.Accounts, 2)
				assert.Equal(t, model.RoleSuperAdmin, seed.Accounts[0].Role)
				assert.Equal(t, model.RoleUser, seed.Accounts[1].Role, "role defaults to user")
				assert.Equal(t, "5550101", seed.Accounts[1].PhoneNumber)
			},
		},
		{
			name:  "price_optional",
			input: "accounts: []\n",
			check: func(t *testing.T, seed *SeedFile) {
				assert.Nil(t, seed.Price)
				assert.Empty(t, seed.Accounts)
			},
		},
		{
			name:          "negative_price",
			input:         "price: -2\n",
			expectedError: "non-negative",
		},
		{
			name: "unknown_role",
			input: `
accounts:
  - {name: A, phone_number: "1", meter_id: M1, password: p, role: owner}
`,
			expectedError: `unknown role "owner"`,
		},
		{
			name: "missing_password",
			input: `
accounts:
  - {name: A, phone_number: "1", meter_id: M1}
`,
			expectedError: "required",
		},
		{
			name: "duplicate_phone",
			input: `
accounts:
  - {name: A, phone_number: "1", meter_id: M1, password: p}
  - {name: B, phone_number: "1", meter_id: M2, password: p}
`,
			expectedError: "duplicate phone number",
		},
		{
			name: "duplicate_meter",
			input: `
accounts:
  - {name: A, phone_number: "1", meter_id: M1, password: p}
  - {name: B, phone_number: "2", meter_id: M1, password: p}
`,
			expectedError: "duplicate meter id",
		},
		{
			name:          "malformed_yaml",
			input:         "accounts: [",
			expectedError: "parsing seed file",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			seed, err := ParseSeedFile([]byte(tc.input))
			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			}
			require.NoError(t, err)
			tc.check(t, seed)
		})
	}
}

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("price: 2\n"), 0o600))

	seed, err := LoadSeedFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2", seed.Price.String())

	_, err = LoadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading seed file")
}

func TestParsePrice(t *testing.T) {
	testCases := []struct {
		name          string
		input         string
		expected      string
		expectedError string
	}{
		{name: "integer", input: "2", expected: "2"},
		{name: "fraction", input: "1.75", expected: "1.75"},
		{name: "zero", input: "0", expected: "0"},
		{name: "negative", input: "-1", expectedError: "non-negative"},
		{name: "not_a_number", input: "abc", expectedError: "invalid price"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			price, err := parsePrice(tc.input)
			if tc.expectedError != "" {
				assert.ErrorContains(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, price.String())
		})
	}
}

func TestGetDSN(t *testing.T) {
	prev := dsn
	t.Cleanup(func() { dsn = prev })

	dsn = ""
	t.Setenv("DATABASE_URL", "")
	_, err := getDSN()
	assert.Error(t, err)

	t.Setenv("DATABASE_URL", "postgres://env")
	got, err := getDSN()
	require.NoError(t, err)
	assert.Equal(t, "postgres://env", got)

	dsn = "postgres://flag"
	got, err = getDSN()
	require.NoError(t, err)
	assert.Equal(t, "postgres://flag", got)
}
