package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pactum-app/pactum/internal/models"
)

func contractForm(overrides url.Values) url.Values {
	form := url.Values{
		"title":        {"Master services agreement"},
		"counterparty": {"Acme Corp"},
		"value_cents":  {"1250000"},
		"currency":     {"USD"},
		"starts_on":    {"2026-01-01"},
		"ends_on":      {"2026-12-31"},
	}
	for key, values := range overrides {
		form[key] = values
	}
	return form
}

func sendForm(t *testing.T, app *fiber.App, method string, path string, form url.Values, authCookie string) *http.Response {
	t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	request := httptest.NewRequest(method, path, body)
	if form != nil {
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeContract(t *testing.T, response *http.Response) models.Contract {
	t.Helper()

	payload := struct {
		Contract models.Contract `json:"contract"`
	}{}
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		t.Fatalf("decode contract response: %v", err)
	}
	return payload.Contract
}

func TestContractCreateReadUpdateDelete(t *testing.T) {
	app, database := newTestApp(t)
	admin := createTestUser(t, database, "admin@example.com", "StrongPass1", models.RoleAdmin)
	authCookie := loginAndExtractAuthCookie(t, app, admin.Email, "StrongPass1")

	createResponse := sendForm(t, app, http.MethodPost, "/api/contracts", contractForm(nil), authCookie)
	defer createResponse.Body.Close()
	if createResponse.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(createResponse.Body)
		t.Fatalf("expected status 201, got %d (%s)", createResponse.StatusCode, body)
	}
	created := decodeContract(t, createResponse)
	if created.Status != models.ContractStatusDraft {
		t.Fatalf("expected draft status for new contract, got %q", created.Status)
	}

	getResponse := sendForm(t, app, http.MethodGet, "/api/contracts/1", nil, authCookie)
	defer getResponse.Body.Close()
	if getResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", getResponse.StatusCode)
	}

	activateForm := contractForm(url.Values{"status": {models.ContractStatusActive}})
	updateResponse := sendForm(t, app, http.MethodPut, "/api/contracts/1", activateForm, authCookie)
	defer updateResponse.Body.Close()
	if updateResponse.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(updateResponse.Body)
		t.Fatalf("expected status 200, got %d (%s)", updateResponse.StatusCode, body)
	}
	if updated := decodeContract(t, updateResponse); updated.Status != models.ContractStatusActive {
		t.Fatalf("expected active status, got %q", updated.Status)
	}

	deleteResponse := sendForm(t, app, http.MethodDelete, "/api/contracts/1", nil, authCookie)
	defer deleteResponse.Body.Close()
	if deleteResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", deleteResponse.StatusCode)
	}

	missingResponse := sendForm(t, app, http.MethodGet, "/api/contracts/1", nil, authCookie)
	defer missingResponse.Body.Close()
	if missingResponse.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404 after delete, got %d", missingResponse.StatusCode)
	}
}

func TestContractUpdateRejectsIllegalTransition(t *testing.T) {
	app, database := newTestApp(t)
	admin := createTestUser(t, database, "admin@example.com", "StrongPass1", models.RoleAdmin)
	authCookie := loginAndExtractAuthCookie(t, app, admin.Email, "StrongPass1")

	createResponse := sendForm(t, app, http.MethodPost, "/api/contracts", contractForm(nil), authCookie)
	createResponse.Body.Close()

	expireForm := contractForm(url.Values{"status": {models.ContractStatusExpired}})
	updateResponse := sendForm(t, app, http.MethodPut, "/api/contracts/1", expireForm, authCookie)
	defer updateResponse.Body.Close()

	if updateResponse.StatusCode != http.StatusConflict {
		t.Fatalf("expected status 409 for draft-to-expired, got %d", updateResponse.StatusCode)
	}
}

func TestContractWritesRequireAdminRole(t *testing.T) {
	app, database := newTestApp(t)
	member := createTestUser(t, database, "member@example.com", "StrongPass1", models.RoleMember)
	authCookie := loginAndExtractAuthCookie(t, app, member.Email, "StrongPass1")

	mutations := []struct {
		method string
		path   string
		form   url.Values
	}{
		{method: http.MethodPost, path: "/api/contracts", form: contractForm(nil)},
		{method: http.MethodPut, path: "/api/contracts/1", form: contractForm(nil)},
		{method: http.MethodDelete, path: "/api/contracts/1", form: nil},
		{method: http.MethodPost, path: "/api/contracts/1/share", form: nil},
	}

	for _, mutation := range mutations {
		response := sendForm(t, app, mutation.method, mutation.path, mutation.form, authCookie)
		response.Body.Close()

		if response.StatusCode != http.StatusForbidden {
			t.Fatalf("expected status 403 for member %s %s, got %d", mutation.method, mutation.path, response.StatusCode)
		}
	}
}

func TestContractAccessIsOwnerScoped(t *testing.T) {
	app, database := newTestApp(t)
	owner := createTestUser(t, database, "owner@example.com", "StrongPass1", models.RoleAdmin)
	intruder := createTestUser(t, database, "intruder@example.com", "StrongPass1", models.RoleAdmin)

	ownerCookie := loginAndExtractAuthCookie(t, app, owner.Email, "StrongPass1")
	createResponse := sendForm(t, app, http.MethodPost, "/api/contracts", contractForm(nil), ownerCookie)
	createResponse.Body.Close()

	intruderCookie := loginAndExtractAuthCookie(t, app, intruder.Email, "StrongPass1")
	getResponse := sendForm(t, app, http.MethodGet, "/api/contracts/1", nil, intruderCookie)
	defer getResponse.Body.Close()

	if getResponse.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404 for foreign contract, got %d", getResponse.StatusCode)
	}
}

func TestContractListFiltersByStatus(t *testing.T) {
	app, database := newTestApp(t)
	admin := createTestUser(t, database, "admin@example.com", "StrongPass1", models.RoleAdmin)
	authCookie := loginAndExtractAuthCookie(t, app, admin.Email, "StrongPass1")

	for index := 0; index < 2; index++ {
		response := sendForm(t, app, http.MethodPost, "/api/contracts", contractForm(nil), authCookie)
		response.Body.Close()
	}
	activateForm := contractForm(url.Values{"status": {models.ContractStatusActive}})
	activateResponse := sendForm(t, app, http.MethodPut, "/api/contracts/1", activateForm, authCookie)
	activateResponse.Body.Close()

	listResponse := sendForm(t, app, http.MethodGet, "/api/contracts?status=draft", nil, authCookie)
	defer listResponse.Body.Close()

	payload := struct {
		Contracts []models.Contract `json:"contracts"`
	}{}
	if err := json.NewDecoder(listResponse.Body).Decode(&payload); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(payload.Contracts) != 1 {
		t.Fatalf("expected 1 draft contract, got %d", len(payload.Contracts))
	}

	badFilterResponse := sendForm(t, app, http.MethodGet, "/api/contracts?status=bogus", nil, authCookie)
	defer badFilterResponse.Body.Close()
	if badFilterResponse.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 for bogus filter, got %d", badFilterResponse.StatusCode)
	}
}

func TestContractShareLinkServesPublicView(t *testing.T) {
	app, database := newTestApp(t)
	admin := createTestUser(t, database, "admin@example.com", "StrongPass1", models.RoleAdmin)
	authCookie := loginAndExtractAuthCookie(t, app, admin.Email, "StrongPass1")

	createResponse := sendForm(t, app, http.MethodPost, "/api/contracts", contractForm(nil), authCookie)
	createResponse.Body.Close()

	shareResponse := sendForm(t, app, http.MethodPost, "/api/contracts/1/share", nil, authCookie)
	defer shareResponse.Body.Close()
	if shareResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 for share, got %d", shareResponse.StatusCode)
	}

	sharePayload := struct {
		ShareURL string `json:"share_url"`
	}{}
	if err := json.NewDecoder(shareResponse.Body).Decode(&sharePayload); err != nil {
		t.Fatalf("decode share response: %v", err)
	}
	if !strings.HasPrefix(sharePayload.ShareURL, "/share/") {
		t.Fatalf("expected share url under /share/, got %q", sharePayload.ShareURL)
	}

	publicResponse := sendForm(t, app, http.MethodGet, sharePayload.ShareURL, nil, "")
	defer publicResponse.Body.Close()
	if publicResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 for public share view, got %d", publicResponse.StatusCode)
	}

	body, err := io.ReadAll(publicResponse.Body)
	if err != nil {
		t.Fatalf("read public share body: %v", err)
	}
	rendered := string(body)
	if !strings.Contains(rendered, "Acme Corp") {
		t.Fatalf("expected counterparty in public view, got %s", rendered)
	}
	if strings.Contains(rendered, "value_cents") {
		t.Fatalf("expected contract value to stay private, got %s", rendered)
	}

	missingResponse := sendForm(t, app, http.MethodGet, "/share/not-a-real-token", nil, "")
	defer missingResponse.Body.Close()
	if missingResponse.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404 for unknown token, got %d", missingResponse.StatusCode)
	}
}

func TestDashboardSummaryCountsContracts(t *testing.T) {
	app, database := newTestApp(t)
	admin := createTestUser(t, database, "admin@example.com", "StrongPass1", models.RoleAdmin)
	authCookie := loginAndExtractAuthCookie(t, app, admin.Email, "StrongPass1")

	createResponse := sendForm(t, app, http.MethodPost, "/api/contracts", contractForm(nil), authCookie)
	createResponse.Body.Close()

	summaryResponse := sendForm(t, app, http.MethodGet, "/api/dashboard/summary", nil, authCookie)
	defer summaryResponse.Body.Close()
	if summaryResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", summaryResponse.StatusCode)
	}

	summary := struct {
		StatusCounts map[string]int64 `json:"status_counts"`
		TotalTracked int64            `json:"total_tracked"`
	}{}
	if err := json.NewDecoder(summaryResponse.Body).Decode(&summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if summary.TotalTracked != 1 {
		t.Fatalf("expected 1 tracked contract, got %d", summary.TotalTracked)
	}
	if summary.StatusCounts[models.ContractStatusDraft] != 1 {
		t.Fatalf("expected 1 draft in status counts, got %d", summary.StatusCounts[models.ContractStatusDraft])
	}
}
