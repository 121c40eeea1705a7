package db

import (
	"time"

	"github.com/pactum-app/pactum/internal/models"
	"gorm.io/gorm"
)

type ContractRepository struct {
	database *gorm.DB
}

func NewContractRepository(database *gorm.DB) *ContractRepository {
	return &ContractRepository{database: database}
}

func (repo *ContractRepository) FindByID(contractID uint) (models.Contract, error) {
	var contract models.Contract
	if err := repo.database.First(&contract, contractID).Error; err != nil {
		return models.Contract{}, err
	}
	return contract, nil
}

func (repo *ContractRepository) ListByOwner(ownerID uint, status string) ([]models.Contract, error) {
	contracts := make([]models.Contract, 0)
	query := repo.database.Where("owner_id = ?", ownerID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("ends_on ASC, id ASC").Find(&contracts).Error; err != nil {
		return nil, err
	}
	return contracts, nil
}

func (repo *ContractRepository) Create(contract *models.Contract) error {
	return repo.database.Create(contract).Error
}

func (repo *ContractRepository) Save(contract *models.Contract) error {
	return repo.database.Save(contract).Error
}

func (repo *ContractRepository) Delete(contractID uint) error {
	return repo.database.Delete(&models.Contract{}, contractID).Error
}

func (repo *ContractRepository) FindByShareToken(token string) (models.Contract, error) {
	var contract models.Contract
	if err := repo.database.Where("share_token = ? AND share_token <> ''", token).First(&contract).Error; err != nil {
		return models.Contract{}, err
	}
	return contract, nil
}

func (repo *ContractRepository) UpdateShareToken(contractID uint, token string) error {
	return repo.database.Model(&models.Contract{}).Where("id = ?", contractID).Update("share_token", token).Error
}

func (repo *ContractRepository) CountByStatus(ownerID uint) (map[string]int64, error) {
	type statusCount struct {
		Status string `gorm:"column:status"`
		Count  int64  `gorm:"column:count"`
	}

	rows := make([]statusCount, 0)
	if err := repo.database.Model(&models.Contract{}).
		Select("status, count(*) as count").
		Where("owner_id = ?", ownerID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, status := range models.ContractStatuses() {
		counts[status] = 0
	}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (repo *ContractRepository) ListExpiringBetween(ownerID uint, from time.Time, until time.Time) ([]models.Contract, error) {
	contracts := make([]models.Contract, 0)
	if err := repo.database.
		Where("owner_id = ? AND status = ? AND ends_on >= ? AND ends_on < ?",
			ownerID, models.ContractStatusActive, from, until).
		Order("ends_on ASC").
		Find(&contracts).Error; err != nil {
		return nil, err
	}
	return contracts, nil
}
