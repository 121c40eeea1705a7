package services

import (
	"time"

	"github.com/pactum-app/pactum/internal/models"
)

// ExpiringSoonWindowDays bounds the dashboard's "renewals due" list.
const ExpiringSoonWindowDays = 30

type ContractRepository interface {
	FindByID(contractID uint) (models.Contract, error)
	FindByShareToken(token string) (models.Contract, error)
	ListByOwner(ownerID uint, status string) ([]models.Contract, error)
	Create(contract *models.Contract) error
	Save(contract *models.Contract) error
	Delete(contractID uint) error
	UpdateShareToken(contractID uint, token string) error
	CountByStatus(ownerID uint) (map[string]int64, error)
	ListExpiringBetween(ownerID uint, from time.Time, until time.Time) ([]models.Contract, error)
}

type ContractService struct {
	contracts ContractRepository
	location  *time.Location
}

func NewContractService(contracts ContractRepository, location *time.Location) *ContractService {
	if location == nil {
		location = time.UTC
	}
	return &ContractService{contracts: contracts, location: location}
}

func (service *ContractService) FindByID(contractID uint) (models.Contract, error) {
	return service.contracts.FindByID(contractID)
}

func (service *ContractService) FindByShareToken(token string) (models.Contract, error) {
	return service.contracts.FindByShareToken(token)
}

func (service *ContractService) ListByOwner(ownerID uint, status string) ([]models.Contract, error) {
	return service.contracts.ListByOwner(ownerID, status)
}

func (service *ContractService) Create(ownerID uint, input ContractInput) (models.Contract, error) {
	normalized, err := NormalizeContractInput(input)
	if err != nil {
		return models.Contract{}, err
	}

	now := time.Now().In(service.location)
	contract := models.Contract{
		OwnerID:      ownerID,
		Title:        normalized.Title,
		Counterparty: normalized.Counterparty,
		Status:       models.ContractStatusDraft,
		ValueCents:   normalized.ValueCents,
		Currency:     normalized.Currency,
		StartsOn:     normalized.StartsOn,
		EndsOn:       normalized.EndsOn,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := service.contracts.Create(&contract); err != nil {
		return models.Contract{}, err
	}
	return contract, nil
}

func (service *ContractService) Update(contract models.Contract, input ContractInput, status string) (models.Contract, error) {
	normalized, err := NormalizeContractInput(input)
	if err != nil {
		return models.Contract{}, err
	}
	if err := ValidateStatusTransition(contract.Status, status); err != nil {
		return models.Contract{}, err
	}

	contract.Title = normalized.Title
	contract.Counterparty = normalized.Counterparty
	contract.ValueCents = normalized.ValueCents
	contract.Currency = normalized.Currency
	contract.StartsOn = normalized.StartsOn
	contract.EndsOn = normalized.EndsOn
	contract.Status = status
	contract.UpdatedAt = time.Now().In(service.location)

	if err := service.contracts.Save(&contract); err != nil {
		return models.Contract{}, err
	}
	return contract, nil
}

func (service *ContractService) Delete(contractID uint) error {
	return service.contracts.Delete(contractID)
}

func (service *ContractService) AttachShareToken(contractID uint, token string) error {
	return service.contracts.UpdateShareToken(contractID, token)
}

type DashboardSummary struct {
	StatusCounts  map[string]int64  `json:"status_counts"`
	ExpiringSoon  []models.Contract `json:"expiring_soon"`
	TotalActive   int64             `json:"total_active"`
	TotalTracked  int64             `json:"total_tracked"`
	WindowEndDate time.Time         `json:"window_end_date"`
}

// BuildDashboardSummary aggregates what the dashboard landing page charts:
// counts by status and active contracts ending within the renewal window.
func (service *ContractService) BuildDashboardSummary(ownerID uint, now time.Time) (DashboardSummary, error) {
	counts, err := service.contracts.CountByStatus(ownerID)
	if err != nil {
		return DashboardSummary{}, err
	}

	windowEnd := now.AddDate(0, 0, ExpiringSoonWindowDays)
	expiring, err := service.contracts.ListExpiringBetween(ownerID, now, windowEnd)
	if err != nil {
		return DashboardSummary{}, err
	}

	total := int64(0)
	for _, count := range counts {
		total += count
	}

	return DashboardSummary{
		StatusCounts:  counts,
		ExpiringSoon:  expiring,
		TotalActive:   counts[models.ContractStatusActive],
		TotalTracked:  total,
		WindowEndDate: windowEnd,
	}, nil
}
