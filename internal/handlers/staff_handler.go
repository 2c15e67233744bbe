package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/SalonVioleta/nail-scheduler/internal/httperr"
	"github.com/SalonVioleta/nail-scheduler/internal/httpresp"
	ucAppointment "github.com/SalonVioleta/nail-scheduler/internal/usecase/appointment"
)

// StaffHandler is the attendant/admin appointment management surface.
// Route gates decide who gets in; the handlers are shared by both roles.
type StaffHandler struct {
	listUC         *ucAppointment.ListAppointments
	updateStatusUC *ucAppointment.UpdateStatus
	updateNotesUC  *ucAppointment.UpdateAdminNotes
}

func NewStaffHandler(
	listUC *ucAppointment.ListAppointments,
	updateStatusUC *ucAppointment.UpdateStatus,
	updateNotesUC *ucAppointment.UpdateAdminNotes,
) *StaffHandler {
	return &StaffHandler{
		listUC:         listUC,
		updateStatusUC: updateStatusUC,
		updateNotesUC:  updateNotesUC,
	}
}

// --------- Requests ---------

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateNotesRequest struct {
	AdminNotes string `json:"adminNotes"`
}

// --------- Handlers ---------

func (h *StaffHandler) ListAll(c *gin.Context) {
	aps, err := h.listUC.All(c.Request.Context())
	if err != nil {
		log.Println("list all appointments error:", err)
		httperr.Internal(c, "internal_error", "Error al obtener citas.")
		return
	}

	httpresp.List(c, aps)
}

func (h *StaffHandler) ListToday(c *gin.Context) {
	aps, err := h.listUC.Today(c.Request.Context())
	if err != nil {
		log.Println("list today appointments error:", err)
		httperr.Internal(c, "internal_error", "Error al obtener citas de hoy.")
		return
	}

	httpresp.List(c, aps)
}

func (h *StaffHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	actorID, _ := requester(c)

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.updateStatusUC.Execute(c.Request.Context(), id, actorID, req.Status)
	if err != nil {
		switch httperr.BusinessCode(err) {
		case "appointment_not_found":
			httperr.NotFound(c, "appointment_not_found", "Cita no encontrada.")
		case "invalid_status":
			httperr.BadRequest(c, "invalid_status", "Estado inválido.")
		case "slot_unavailable":
			httperr.Conflict(c, "slot_unavailable", "El horario seleccionado ya no está disponible.")
		default:
			log.Println("update status error:", err)
			httperr.Internal(c, "internal_error", "Error al actualizar estado de cita.")
		}
		return
	}

	c.JSON(200, gin.H{
		"message":     "Estado de cita actualizado",
		"appointment": ap,
	})
}

func (h *StaffHandler) UpdateNotes(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	actorID, _ := requester(c)

	var req UpdateNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.updateNotesUC.Execute(c.Request.Context(), id, actorID, req.AdminNotes)
	if err != nil {
		switch httperr.BusinessCode(err) {
		case "appointment_not_found":
			httperr.NotFound(c, "appointment_not_found", "Cita no encontrada.")
		default:
			log.Println("update notes error:", err)
			httperr.Internal(c, "internal_error", "Error al actualizar notas.")
		}
		return
	}

	c.JSON(200, gin.H{
		"message":     "Notas actualizadas",
		"appointment": ap,
	})
}
