package services

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/pactum-app/pactum/internal/models"
)

var (
	ErrContractInputInvalid     = errors.New("contract input invalid")
	ErrContractStatusInvalid    = errors.New("contract status invalid")
	ErrContractTransitionDenied = errors.New("contract status transition denied")
)

var currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

const maxContractTitleLength = 200

type ContractInput struct {
	Title        string
	Counterparty string
	ValueCents   int64
	Currency     string
	StartsOn     time.Time
	EndsOn       time.Time
}

// NormalizeContractInput trims free-text fields and validates the whole
// payload; the returned input is safe to persist.
func NormalizeContractInput(raw ContractInput) (ContractInput, error) {
	input := raw
	input.Title = strings.TrimSpace(raw.Title)
	input.Counterparty = strings.TrimSpace(raw.Counterparty)
	input.Currency = strings.ToUpper(strings.TrimSpace(raw.Currency))
	if input.Currency == "" {
		input.Currency = "USD"
	}

	if input.Title == "" || len([]rune(input.Title)) > maxContractTitleLength {
		return ContractInput{}, ErrContractInputInvalid
	}
	if input.Counterparty == "" {
		return ContractInput{}, ErrContractInputInvalid
	}
	if input.ValueCents < 0 {
		return ContractInput{}, ErrContractInputInvalid
	}
	if !currencyCodeRegex.MatchString(input.Currency) {
		return ContractInput{}, ErrContractInputInvalid
	}
	if !input.StartsOn.IsZero() && !input.EndsOn.IsZero() && input.EndsOn.Before(input.StartsOn) {
		return ContractInput{}, ErrContractInputInvalid
	}

	return input, nil
}

func ValidateContractStatus(status string) error {
	for _, known := range models.ContractStatuses() {
		if status == known {
			return nil
		}
	}
	return ErrContractStatusInvalid
}

// ValidateStatusTransition enforces the contract lifecycle: drafts activate,
// active contracts expire or terminate, terminal states never change.
func ValidateStatusTransition(from string, to string) error {
	if err := ValidateContractStatus(from); err != nil {
		return err
	}
	if err := ValidateContractStatus(to); err != nil {
		return err
	}
	if from == to {
		return nil
	}

	switch from {
	case models.ContractStatusDraft:
		if to == models.ContractStatusActive {
			return nil
		}
	case models.ContractStatusActive:
		if to == models.ContractStatusExpired || to == models.ContractStatusTerminated {
			return nil
		}
	}
	return ErrContractTransitionDenied
}
