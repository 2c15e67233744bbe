package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/SalonVioleta/nail-scheduler/internal/audit"
	"github.com/SalonVioleta/nail-scheduler/internal/httperr"
	"github.com/SalonVioleta/nail-scheduler/internal/httpresp"
	"github.com/SalonVioleta/nail-scheduler/internal/middleware"
	"github.com/SalonVioleta/nail-scheduler/internal/models"
	ucAppointment "github.com/SalonVioleta/nail-scheduler/internal/usecase/appointment"
	"github.com/SalonVioleta/nail-scheduler/internal/validators"
)

// AdminHandler owns user management and the dashboard stats.
type AdminHandler struct {
	db      *gorm.DB
	statsUC *ucAppointment.ComputeStats
	audit   *audit.Dispatcher

	// checkEmailDomain does DNS lookups; tests stub it out.
	checkEmailDomain func(string) bool
}

func NewAdminHandler(db *gorm.DB, statsUC *ucAppointment.ComputeStats, dispatcher *audit.Dispatcher) *AdminHandler {
	return &AdminHandler{
		db:               db,
		statsUC:          statsUC,
		audit:            dispatcher,
		checkEmailDomain: validators.IsEmailDomainValid,
	}
}

// --------- Requests ---------

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`
}

type UpdateUserRequest struct {
	Name *string `json:"name"`
	Role *string `json:"role"`
}

// --------- Users ---------

func (h *AdminHandler) ListUsers(c *gin.Context) {
	var users []models.User
	if err := h.db.Order("created_at DESC").Find(&users).Error; err != nil {
		log.Println("list users error:", err)
		httperr.Internal(c, "internal_error", "Error al obtener usuarios.")
		return
	}

	httpresp.List(c, users)
}

func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if !models.IsValidRole(req.Role) {
		httperr.BadRequest(c, "invalid_role", "Rol inválido.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !h.checkEmailDomain(email) {
		httperr.BadRequest(c, "invalid_email_domain", "El dominio del correo no parece ser válido.")
		return
	}

	var count int64
	if err := h.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		log.Println("create user error:", err)
		httperr.Internal(c, "internal_error", "Error interno del servidor.")
		return
	}
	if count > 0 {
		httperr.Conflict(c, "email_taken", "El correo electrónico ya está registrado.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "internal_error", "Error interno del servidor.")
		return
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hashed),
		Role:         req.Role,
	}

	if err := h.db.Create(&user).Error; err != nil {
		if httperr.IsUniqueViolation(err, "") {
			httperr.Conflict(c, "email_taken", "El correo electrónico ya está registrado.")
			return
		}
		log.Println("create user error:", err)
		httperr.Internal(c, "internal_error", "Error al crear usuario.")
		return
	}

	actorID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "user_created",
		Entity:   "user",
		EntityID: &user.ID,
		Metadata: map[string]any{"role": user.Role},
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Usuario creado exitosamente",
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

func (h *AdminHandler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Role != nil && !models.IsValidRole(*req.Role) {
		httperr.BadRequest(c, "invalid_role", "Rol inválido.")
		return
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		httperr.BadRequest(c, "invalid_name", "El nombre no puede estar vacío.")
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "user_not_found", "Usuario no encontrado.")
			return
		}
		httperr.Internal(c, "internal_error", "Error al obtener usuario.")
		return
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Role != nil {
		user.Role = *req.Role
	}

	if err := h.db.Save(&user).Error; err != nil {
		log.Println("update user error:", err)
		httperr.Internal(c, "internal_error", "Error al actualizar usuario.")
		return
	}

	actorID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "user_updated",
		Entity:   "user",
		EntityID: &user.ID,
		Metadata: map[string]any{"role": user.Role},
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Usuario actualizado exitosamente",
		"user":    user,
	})
}

// --------- Stats ---------

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.statsUC.Execute(c.Request.Context())
	if err != nil {
		log.Println("stats error:", err)
		httperr.Internal(c, "internal_error", "Error al obtener estadísticas.")
		return
	}

	httpresp.OK(c, stats)
}
