package api

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pactum-app/pactum/internal/models"
	"github.com/pactum-app/pactum/internal/security"
	"github.com/pactum-app/pactum/internal/services"
	"gorm.io/gorm"
)

const contractDateLayout = "2006-01-02"

func (handler *Handler) parseContractInput(c *fiber.Ctx) (services.ContractInput, string, string) {
	payload := contractPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return services.ContractInput{}, "", "invalid input"
	}

	input := services.ContractInput{
		Title:        payload.Title,
		Counterparty: payload.Counterparty,
		ValueCents:   payload.ValueCents,
		Currency:     payload.Currency,
	}

	if raw := strings.TrimSpace(payload.StartsOn); raw != "" {
		parsed, err := time.ParseInLocation(contractDateLayout, raw, handler.location)
		if err != nil {
			return services.ContractInput{}, "", "invalid start date"
		}
		input.StartsOn = parsed
	}
	if raw := strings.TrimSpace(payload.EndsOn); raw != "" {
		parsed, err := time.ParseInLocation(contractDateLayout, raw, handler.location)
		if err != nil {
			return services.ContractInput{}, "", "invalid end date"
		}
		input.EndsOn = parsed
	}

	return input, strings.TrimSpace(payload.Status), ""
}

func parseContractID(c *fiber.Ctx) (uint, error) {
	raw := strings.TrimSpace(c.Params("id"))
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return 0, errors.New("invalid contract id")
	}
	return uint(value), nil
}

// loadOwnedContract fetches the contract and hides other owners' records
// behind the same 404 as missing ones.
func (handler *Handler) loadOwnedContract(c *fiber.Ctx) (models.Contract, int, string) {
	user := currentUser(c)
	if user == nil {
		return models.Contract{}, fiber.StatusUnauthorized, "unauthorized"
	}

	contractID, err := parseContractID(c)
	if err != nil {
		return models.Contract{}, fiber.StatusBadRequest, "invalid contract id"
	}

	contract, err := handler.contractService.FindByID(contractID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Contract{}, fiber.StatusNotFound, "contract not found"
		}
		return models.Contract{}, fiber.StatusInternalServerError, "failed to load contract"
	}
	if contract.OwnerID != user.ID {
		return models.Contract{}, fiber.StatusNotFound, "contract not found"
	}

	return contract, 0, ""
}

func (handler *Handler) ListContracts(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	status := strings.TrimSpace(c.Query("status"))
	if status != "" {
		if err := services.ValidateContractStatus(status); err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid status filter")
		}
	}

	contracts, err := handler.contractService.ListByOwner(user.ID, status)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load contracts")
	}
	return c.JSON(fiber.Map{"contracts": contracts})
}

func (handler *Handler) GetContract(c *fiber.Ctx) error {
	contract, status, message := handler.loadOwnedContract(c)
	if message != "" {
		return apiError(c, status, message)
	}
	return c.JSON(fiber.Map{"contract": contract})
}

func (handler *Handler) CreateContract(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input, _, message := handler.parseContractInput(c)
	if message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	contract, err := handler.contractService.Create(user.ID, input)
	if err != nil {
		if errors.Is(err, services.ErrContractInputInvalid) {
			return apiError(c, fiber.StatusBadRequest, "invalid contract input")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create contract")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"contract": contract})
}

func (handler *Handler) UpdateContract(c *fiber.Ctx) error {
	contract, status, message := handler.loadOwnedContract(c)
	if message != "" {
		return apiError(c, status, message)
	}

	input, nextStatus, parseMessage := handler.parseContractInput(c)
	if parseMessage != "" {
		return apiError(c, fiber.StatusBadRequest, parseMessage)
	}
	if nextStatus == "" {
		nextStatus = contract.Status
	}

	updated, err := handler.contractService.Update(contract, input, nextStatus)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrContractInputInvalid):
			return apiError(c, fiber.StatusBadRequest, "invalid contract input")
		case errors.Is(err, services.ErrContractStatusInvalid):
			return apiError(c, fiber.StatusBadRequest, "invalid contract status")
		case errors.Is(err, services.ErrContractTransitionDenied):
			return apiError(c, fiber.StatusConflict, "status transition denied")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to update contract")
		}
	}

	return c.JSON(fiber.Map{"contract": updated})
}

func (handler *Handler) DeleteContract(c *fiber.Ctx) error {
	contract, status, message := handler.loadOwnedContract(c)
	if message != "" {
		return apiError(c, status, message)
	}

	if err := handler.contractService.Delete(contract.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete contract")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) ShareContract(c *fiber.Ctx) error {
	contract, status, message := handler.loadOwnedContract(c)
	if message != "" {
		return apiError(c, status, message)
	}

	token, err := security.NewShareToken()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create share token")
	}
	if err := handler.contractService.AttachShareToken(contract.ID, token); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to attach share token")
	}

	return c.JSON(fiber.Map{
		"ok":        true,
		"share_url": "/share/" + token,
	})
}

// GetSharedContract serves the public read-only view behind a share token.
func (handler *Handler) GetSharedContract(c *fiber.Ctx) error {
	token := strings.TrimSpace(c.Params("token"))
	if token == "" {
		return apiError(c, fiber.StatusNotFound, "contract not found")
	}

	contract, err := handler.contractService.FindByShareToken(token)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "contract not found")
	}

	return c.JSON(fiber.Map{
		"contract": fiber.Map{
			"title":        contract.Title,
			"counterparty": contract.Counterparty,
			"status":       contract.Status,
			"starts_on":    contract.StartsOn,
			"ends_on":      contract.EndsOn,
		},
	})
}
