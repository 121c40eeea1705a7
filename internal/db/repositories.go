package db

import "gorm.io/gorm"

type Repositories struct {
	Users     *UserRepository
	Contracts *ContractRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(database),
		Contracts: NewContractRepository(database),
	}
}
