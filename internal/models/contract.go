package models

import "time"

const (
	ContractStatusDraft      = "draft"
	ContractStatusActive     = "active"
	ContractStatusExpired    = "expired"
	ContractStatusTerminated = "terminated"
)

type Contract struct {
	ID           uint   `gorm:"primaryKey"`
	OwnerID      uint   `gorm:"not null;index"`
	Title        string `gorm:"not null"`
	Counterparty string `gorm:"not null"`
	Status       string `gorm:"not null;default:draft"`
	ValueCents   int64  `gorm:"not null;default:0"`
	Currency     string `gorm:"not null;default:USD"`
	StartsOn     time.Time
	EndsOn       time.Time
	ShareToken   string `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func ContractStatuses() []string {
	return []string{
		ContractStatusDraft,
		ContractStatusActive,
		ContractStatusExpired,
		ContractStatusTerminated,
	}
}
