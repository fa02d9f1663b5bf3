package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"residencia/backend/config"
	"residencia/backend/filter"
	"residencia/backend/utils"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, utils.MigrateDB(db))

	cfg := &config.Config{
		JWTSecret:  "test-secret",
		AdminEmail: "admin@residencia.test",
	}

	app := fiber.New()
	SetupRoutes(app, db, cfg, filter.NewEngine(filter.DefaultMappings()))

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp.StatusCode, result
}

func registerUser(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	status, result := doJSON(t, app, "POST", "/api/auth/register", "", map[string]interface{}{
		"email":    email,
		"name":     "Test User",
		"password": "senha123",
	})
	require.Equal(t, fiber.StatusCreated, status)
	token, _ := result["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func createQuestion(t *testing.T, app *fiber.App, token, specialty, board string, year int) uint {
	t.Helper()

	status, result := doJSON(t, app, "POST", "/api/questions", token, map[string]interface{}{
		"specialty": specialty,
		"topic":     "Tópico",
		"board":     board,
		"year":      year,
		"statement": "Enunciado de teste",
		"alternatives": []map[string]string{
			{"id": "a", "letter": "A", "text": "Alternativa A"},
			{"id": "b", "letter": "B", "text": "Alternativa B"},
			{"id": "c", "letter": "C", "text": "Alternativa C"},
		},
		"correct_answer": "b",
		"difficulty":     "medium",
	})
	require.Equal(t, fiber.StatusCreated, status)

	data := result["data"].(map[string]interface{})
	return uint(data["ID"].(float64))
}

func TestHealthCheck(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest("GET", "/api/health", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRegisterLoginAndMe(t *testing.T) {
	app := setupTestApp(t)

	token := registerUser(t, app, "aluno@residencia.test")

	status, result := doJSON(t, app, "POST", "/api/auth/login", "", map[string]interface{}{
		"email":    "aluno@residencia.test",
		"password": "senha123",
	})
	require.Equal(t, fiber.StatusOK, status)
	assert.NotEmpty(t, result["token"])

	status, result = doJSON(t, app, "GET", "/api/auth/me", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	user := result["user"].(map[string]interface{})
	assert.Equal(t, "aluno@residencia.test", user["email"])
	assert.Equal(t, "user", user["role"])
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	app := setupTestApp(t)
	registerUser(t, app, "aluno@residencia.test")

	status, _ := doJSON(t, app, "POST", "/api/auth/login", "", map[string]interface{}{
		"email":    "aluno@residencia.test",
		"password": "errada",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestQuestionCRUDRequiresAdmin(t *testing.T) {
	app := setupTestApp(t)

	userToken := registerUser(t, app, "aluno@residencia.test")
	status, _ := doJSON(t, app, "POST", "/api/questions", userToken, map[string]interface{}{
		"specialty": "Cardiologia",
	})
	assert.Equal(t, fiber.StatusForbidden, status)

	adminToken := registerUser(t, app, "admin@residencia.test")
	questionID := createQuestion(t, app, adminToken, "Cardiologia", "USP", 2023)

	status, result := doJSON(t, app, "GET", fmt.Sprintf("/api/questions/%d", questionID), "", nil)
	require.Equal(t, fiber.StatusOK, status)
	data := result["data"].(map[string]interface{})
	assert.Equal(t, "Cardiologia", data["Specialty"])

	status, _ = doJSON(t, app, "DELETE", fmt.Sprintf("/api/questions/%d", questionID), adminToken, nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = doJSON(t, app, "GET", fmt.Sprintf("/api/questions/%d", questionID), "", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestCreateQuestionValidatesInvariants(t *testing.T) {
	app := setupTestApp(t)
	adminToken := registerUser(t, app, "admin@residencia.test")

	// correct_answer referencing no alternative is rejected
	status, _ := doJSON(t, app, "POST", "/api/questions", adminToken, map[string]interface{}{
		"specialty": "Cardiologia",
		"statement": "Enunciado",
		"alternatives": []map[string]string{
			{"id": "a", "letter": "A", "text": "A"},
			{"id": "b", "letter": "B", "text": "B"},
		},
		"correct_answer": "z",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestAnswerFlowAndFilter(t *testing.T) {
	app := setupTestApp(t)
	adminToken := registerUser(t, app, "admin@residencia.test")

	cardioID := createQuestion(t, app, adminToken, "Cardiologia", "USP", 2021)
	createQuestion(t, app, adminToken, "Pediatria", "UFMG", 2022)
	createQuestion(t, app, adminToken, "Clínica Médica", "Banca Nova", 2023)

	userToken := registerUser(t, app, "aluno@residencia.test")

	// Answer the cardiology question with the wrong alternative.
	status, result := doJSON(t, app, "POST", "/api/answers", userToken, map[string]interface{}{
		"question_id":     cardioID,
		"selected_answer": "a",
		"time_spent":      45,
	})
	require.Equal(t, fiber.StatusCreated, status)
	answer := result["data"].(map[string]interface{})
	assert.Equal(t, false, answer["IsCorrect"])
	answerID := uint(answer["ID"].(float64))

	// Empty criteria surface nothing.
	status, result = doJSON(t, app, "POST", "/api/questions/filter", userToken, map[string]interface{}{})
	require.Equal(t, fiber.StatusOK, status)
	assert.Empty(t, result["data"])

	// Specialty list narrows to the cardiology question.
	status, result = doJSON(t, app, "POST", "/api/questions/filter", userToken, map[string]interface{}{
		"specialties": []string{"Cardiologia"},
	})
	require.Equal(t, fiber.StatusOK, status)
	filtered := result["data"].([]interface{})
	require.Len(t, filtered, 1)

	// Region fallback: the unknown board matches NAC.
	status, result = doJSON(t, app, "POST", "/api/questions/filter", userToken, map[string]interface{}{
		"regions": []string{"NAC"},
	})
	require.Equal(t, fiber.StatusOK, status)
	filtered = result["data"].([]interface{})
	require.Len(t, filtered, 1)

	// Answered=true matches only the attempted question.
	status, result = doJSON(t, app, "POST", "/api/questions/filter", userToken, map[string]interface{}{
		"answered": true,
	})
	require.Equal(t, fiber.StatusOK, status)
	filtered = result["data"].([]interface{})
	require.Len(t, filtered, 1)

	// Toggle the review flag, then filter by it.
	status, _ = doJSON(t, app, "PUT", fmt.Sprintf("/api/answers/%d/review", answerID), userToken, nil)
	require.Equal(t, fiber.StatusOK, status)

	status, result = doJSON(t, app, "POST", "/api/questions/filter", userToken, map[string]interface{}{
		"marked_for_review": true,
	})
	require.Equal(t, fiber.StatusOK, status)
	filtered = result["data"].([]interface{})
	require.Len(t, filtered, 1)

	// Stats reflect the single wrong attempt.
	status, result = doJSON(t, app, "GET", "/api/stats", userToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	stats := result["data"].(map[string]interface{})
	assert.Equal(t, float64(1), stats["total_questions"])
	assert.Equal(t, float64(0), stats["correct_answers"])
}

func TestRevisionLifecycle(t *testing.T) {
	app := setupTestApp(t)
	userToken := registerUser(t, app, "aluno@residencia.test")

	// First session for the pair.
	status, result := doJSON(t, app, "POST", "/api/revisions/complete", userToken, map[string]interface{}{
		"tema":        "Clínica Médica",
		"microtema":   "Hiponatremia",
		"data_estudo": "2025-07-04",
		"acertos":     6,
		"erros":       4,
	})
	require.Equal(t, fiber.StatusOK, status)
	rev := result["data"].(map[string]interface{})
	assert.Equal(t, "Bom", rev["Desempenho"])
	assert.Equal(t, float64(0), rev["NRevisoes"])
	assert.NotNil(t, rev["ProximaRevisao"])

	// Second session replaces the entry and advances the count.
	status, result = doJSON(t, app, "POST", "/api/revisions/complete", userToken, map[string]interface{}{
		"tema":        "Clínica Médica",
		"microtema":   "Hiponatremia",
		"data_estudo": "2025-07-05",
		"acertos":     9,
		"erros":       1,
	})
	require.Equal(t, fiber.StatusOK, status)
	rev = result["data"].(map[string]interface{})
	assert.Equal(t, "Ótimo", rev["Desempenho"])
	assert.Equal(t, float64(1), rev["NRevisoes"])

	// Only one entry exists for the pair.
	status, result = doJSON(t, app, "GET", "/api/revisions", userToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	list := result["data"].([]interface{})
	require.Len(t, list, 1)

	// Delete it.
	status, _ = doJSON(t, app, "DELETE",
		"/api/revisions?tema=Cl%C3%ADnica%20M%C3%A9dica&microtema=Hiponatremia", userToken, nil)
	require.Equal(t, fiber.StatusOK, status)

	status, result = doJSON(t, app, "GET", "/api/revisions", userToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Empty(t, result["data"])
}

func TestAdminUserListing(t *testing.T) {
	app := setupTestApp(t)

	adminToken := registerUser(t, app, "admin@residencia.test")
	userToken := registerUser(t, app, "aluno@residencia.test")

	status, _ := doJSON(t, app, "GET", "/api/admin/users", userToken, nil)
	assert.Equal(t, fiber.StatusForbidden, status)

	status, result := doJSON(t, app, "GET", "/api/admin/users", adminToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	users := result["data"].([]interface{})
	assert.Len(t, users, 2)
}
