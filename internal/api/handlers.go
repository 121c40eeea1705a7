package api

import (
	"errors"
	"time"

	"github.com/pactum-app/pactum/internal/db"
	"github.com/pactum-app/pactum/internal/security"
	"github.com/pactum-app/pactum/internal/services"
	"gorm.io/gorm"
)

const (
	authCookieName = "pactum_auth"

	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour

	maxLoginAttempts   = 10
	loginAttemptWindow = 15 * time.Minute
)

const contextUserKey = "pactum_user"

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	redirects    *security.RedirectResolver
	loginLimiter *attemptLimiter

	repositories    *db.Repositories
	authService     *services.AuthService
	contractService *services.ContractService
}

func NewHandler(database *gorm.DB, secretKey string, appOrigin string, location *time.Location, cookieSecure bool) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if secretKey == "" {
		return nil, errors.New("secret key is required")
	}
	if location == nil {
		location = time.UTC
	}

	trustedOrigin := security.NormalizeOrigin(appOrigin)
	if trustedOrigin == "" {
		return nil, errors.New("app origin is required")
	}

	repositories := db.NewRepositories(database)
	handler := &Handler{
		db:              database,
		secretKey:       []byte(secretKey),
		location:        location,
		cookieSecure:    cookieSecure,
		redirects:       security.NewRedirectResolver(func() string { return trustedOrigin }),
		loginLimiter:    newAttemptLimiter(),
		repositories:    repositories,
		authService:     services.NewAuthService(repositories.Users),
		contractService: services.NewContractService(repositories.Contracts, location),
	}
	return handler, nil
}

type credentialsInput struct {
	Email      string `json:"email" form:"email"`
	Password   string `json:"password" form:"password"`
	RememberMe bool   `json:"remember_me" form:"remember_me"`
	Next       string `json:"next" form:"next"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password" form:"current_password"`
	NewPassword     string `json:"new_password" form:"new_password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

type contractPayload struct {
	Title        string `json:"title" form:"title"`
	Counterparty string `json:"counterparty" form:"counterparty"`
	ValueCents   int64  `json:"value_cents" form:"value_cents"`
	Currency     string `json:"currency" form:"currency"`
	StartsOn     string `json:"starts_on" form:"starts_on"`
	EndsOn       string `json:"ends_on" form:"ends_on"`
	Status       string `json:"status" form:"status"`
}
