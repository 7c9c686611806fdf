package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"waterbill.app/billing/model"
)

// SeedFile is the YAML document read by the seed command
type SeedFile struct {
	Price    *decimal.Decimal `yaml:"price,omitempty"`
	Accounts []SeedAccount    `yaml:"accounts"`
}

// SeedAccount is one account upserted by phone number
type SeedAccount struct {
	Name        string     `yaml:"name"`
	Address     string     `yaml:"address"`
	PhoneNumber string     `yaml:"phone_number"`
	MeterID     string     `yaml:"meter_id"`
	Role        model.Role `yaml:"role"`
	Password    string     `yaml:"password"`
}

// LoadSeedFile reads and checks a seed file
func LoadSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	return ParseSeedFile(data)
}

func ParseSeedFile(data []byte) (*SeedFile, error) {
	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}

	if seed.Price != nil && seed.Price.IsNegative() {
		return nil, fmt.Errorf("price must be a non-negative number, got %s", seed.Price)
	}

	phones := make(map[string]bool, len(seed.Accounts))
	meters := make(map[string]bool, len(seed.Accounts))
	for i := range seed.Accounts {
		a := &seed.Accounts[i]
		if a.Role == "" {
			a.Role = model.RoleUser
		}
		switch {
		case a.Name == "" || a.PhoneNumber == "" || a.MeterID == "" || a.Password == "":
			return nil, fmt.Errorf("account %d: name, phone_number, meter_id and password are required", i+1)
		case !a.Role.Valid():
			return nil, fmt.Errorf("account %d: unknown role %q", i+1, a.Role)
		case phones[a.PhoneNumber]:
			return nil, fmt.Errorf("account %d: duplicate phone number %s", i+1, a.PhoneNumber)
		case meters[a.MeterID]:
			return nil, fmt.Errorf("account %d: duplicate meter id %s", i+1, a.MeterID)
		}
		phones[a.PhoneNumber] = true
		meters[a.MeterID] = true
	}

	return &seed, nil
}
