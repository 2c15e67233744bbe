package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/SalonVioleta/nail-scheduler/internal/models"
)

func TestCreateUserEmailPrecheckFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnError(errors.New("connection reset"))

	h := NewAdminHandler(gdb, nil, testAudit())
	h.checkEmailDomain = func(string) bool { return true }

	r := gin.New()
	r.POST("/users", asUser(1, models.RoleAdmin), h.CreateUser)

	body := `{"name":"Eva","email":"eva@salon.test","password":"secreta1","role":"attendant"}`
	w := doJSON(r, http.MethodPost, "/users", body)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal_error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUserNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	h := NewAdminHandler(gdb, nil, testAudit())

	r := gin.New()
	r.PUT("/users/:id", asUser(1, models.RoleAdmin), h.UpdateUser)

	w := doJSON(r, http.MethodPut, "/users/99", `{"name":"Eva"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "user_not_found")
}
