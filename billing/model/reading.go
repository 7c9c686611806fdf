package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MeterReading struct {
	ID              uuid.UUID       `json:"id"`
	UserID          uuid.UUID       `json:"userId"`
	Reading         decimal.Decimal `json:"reading"`
	Date            time.Time       `json:"date"`
	PreviousReading decimal.Decimal `json:"previousReading"`
	Consumption     decimal.Decimal `json:"consumption"`
	MeterImage      *string         `json:"meterImage,omitempty"`
}
