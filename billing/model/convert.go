package model

import (
	"waterbill.app/billing/store"
	"waterbill.app/billing/store/accounts"
	"waterbill.app/billing/store/announcements"
	"waterbill.app/billing/store/bills"
	"waterbill.app/billing/store/readings"
)

// BillFromRow converts a database Bill to a domain model Bill
func BillFromRow(row bills.Bill) Bill {
	bill := Bill{
		ID:           row.ID,
		UserID:       row.AccountID,
		ReadingID:    row.ReadingID,
		Amount:       store.Decimal(row.Amount),
		PricePerUnit: store.Decimal(row.PricePerUnit),
		IssueDate:    row.IssueDate.Time,
		DueDate:      row.DueDate.Time,
		Status:       BillStatus(row.Status),
		Consumption:  store.Decimal(row.Consumption),
		PaymentDate:  store.TimePtr(row.PaymentDate),
	}
	if row.ProofImage.Valid {
		bill.MeterImage = &row.ProofImage.String
	}
	return bill
}

func AccountFromRow(row accounts.Account) Account {
	return Account{
		ID:          row.ID,
		Name:        row.Name,
		Address:     row.Address,
		PhoneNumber: row.PhoneNumber,
		MeterID:     row.MeterID,
		Role:        Role(row.Role),
		CreatedAt:   row.CreatedAt.Time,
	}
}

// AccountFromBillJoin converts the account half of a bills join
func AccountFromBillJoin(row bills.Account) Account {
	return AccountFromRow(accounts.Account(row))
}

func ReadingFromRow(row readings.MeterReading) MeterReading {
	reading := MeterReading{
		ID:              row.ID,
		UserID:          row.AccountID,
		Reading:         store.Decimal(row.Reading),
		Date:            row.Date.Time,
		PreviousReading: store.Decimal(row.PreviousReading),
		Consumption:     store.Decimal(row.Consumption),
	}
	if row.ProofImage.Valid {
		reading.MeterImage = &row.ProofImage.String
	}
	return reading
}

func AnnouncementFromRow(row announcements.Announcement) Announcement {
	return Announcement{
		ID:      row.ID,
		Message: row.Message,
		Date:    row.Date.Time,
	}
}
