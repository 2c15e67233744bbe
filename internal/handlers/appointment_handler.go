package handlers

import (
	"log"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SalonVioleta/nail-scheduler/internal/httperr"
	"github.com/SalonVioleta/nail-scheduler/internal/httpresp"
	"github.com/SalonVioleta/nail-scheduler/internal/middleware"
	"github.com/SalonVioleta/nail-scheduler/internal/models"
	"github.com/SalonVioleta/nail-scheduler/internal/storage"
	ucAppointment "github.com/SalonVioleta/nail-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC       *ucAppointment.CreateAppointment
	cancelUC       *ucAppointment.CancelAppointment
	listUC         *ucAppointment.ListAppointments
	availabilityUC *ucAppointment.GetAvailability
	uploader       storage.Uploader
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	listUC *ucAppointment.ListAppointments,
	availabilityUC *ucAppointment.GetAvailability,
	uploader storage.Uploader,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:       createUC,
		cancelUC:       cancelUC,
		listUC:         listUC,
		availabilityUC: availabilityUC,
		uploader:       uploader,
	}
}

// ======================================================
// HELPERS
// ======================================================

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

func requester(c *gin.Context) (uint, string) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role, _ := c.MustGet(middleware.ContextUserRole).(string)
	return userID, role
}

// ======================================================
// LIST (own)
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	userID, _ := requester(c)

	aps, err := h.listUC.ByOwner(c.Request.Context(), userID)
	if err != nil {
		log.Println("list appointments error:", err)
		httperr.Internal(c, "internal_error", "Error al obtener citas.")
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// GET BY ID (owner or staff)
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	userID, role := requester(c)

	ap, err := h.listUC.ByID(c.Request.Context(), id)
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Cita no encontrada.")
			return
		}
		log.Println("get appointment error:", err)
		httperr.Internal(c, "internal_error", "Error al obtener la cita.")
		return
	}

	if ap.UserID != userID && !models.IsStaff(role) {
		httperr.Forbidden(c, "forbidden", "No tienes permiso para ver esta cita.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID, _ := requester(c)

	date := c.PostForm("date")
	timeStr := c.PostForm("time")
	serviceType := c.PostForm("serviceType")
	notes := c.PostForm("notes")

	if date == "" || timeStr == "" || serviceType == "" {
		httperr.BadRequest(c, "missing_fields", "Fecha, hora y tipo de servicio son requeridos.")
		return
	}

	imageURL, ok := h.storeImage(c)
	if !ok {
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		OwnerID:     userID,
		Date:        date,
		Time:        timeStr,
		ServiceType: serviceType,
		ImageURL:    imageURL,
		Notes:       notes,
	})
	if err != nil {
		switch httperr.BusinessCode(err) {
		case "slot_unavailable":
			httperr.Conflict(c, "slot_unavailable", "El horario seleccionado no está disponible.")
		case "invalid_date", "invalid_time", "missing_service_type":
			httperr.BadRequest(c, httperr.BusinessCode(err), "Datos inválidos.")
		default:
			log.Println("create appointment error:", err)
			httperr.Internal(c, "internal_error", "Error al agendar cita.")
		}
		return
	}

	c.JSON(201, gin.H{
		"message":     "Cita agendada exitosamente",
		"appointment": ap,
	})
}

// storeImage processes the optional multipart reference image. A missing
// file is fine; an unusable one is a boundary failure the core never sees.
func (h *AppointmentHandler) storeImage(c *gin.Context) (string, bool) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", true
	}

	if h.uploader == nil {
		httperr.BadRequest(c, "uploads_disabled", "La carga de imágenes no está habilitada.")
		return "", false
	}

	if file.Size > storage.MaxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "El archivo es demasiado grande. Máximo 5MB.")
		return "", false
	}

	src, err := file.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "No se pudo leer la imagen.")
		return "", false
	}
	defer src.Close()

	data, err := storage.NormalizeImage(src)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "La imagen debe ser JPEG o PNG.")
		return "", false
	}

	url, err := h.uploader.Upload(c.Request.Context(), data)
	if err != nil {
		log.Println("image upload error:", err)
		httperr.Internal(c, "upload_failed", "Error al guardar la imagen.")
		return "", false
	}

	return url, true
}

// ======================================================
// CANCEL (owner only)
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	userID, _ := requester(c)

	ap, err := h.cancelUC.Execute(c.Request.Context(), id, userID)
	if err != nil {
		switch httperr.BusinessCode(err) {
		case "appointment_not_found":
			httperr.NotFound(c, "appointment_not_found", "Cita no encontrada.")
		case "forbidden":
			httperr.Forbidden(c, "forbidden", "No tienes permiso para cancelar esta cita.")
		case "already_cancelled":
			httperr.BadRequest(c, "already_cancelled", "Esta cita ya está cancelada.")
		default:
			log.Println("cancel appointment error:", err)
			httperr.Internal(c, "internal_error", "Error al cancelar cita.")
		}
		return
	}

	c.JSON(200, gin.H{
		"message":     "Cita cancelada exitosamente",
		"appointment": ap,
	})
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	date := strings.TrimSpace(c.Query("date"))
	timeStr := strings.TrimSpace(c.Query("time"))

	if date == "" || timeStr == "" {
		httperr.BadRequest(c, "missing_fields", "Fecha y hora son requeridas.")
		return
	}

	available, err := h.availabilityUC.Execute(c.Request.Context(), date, timeStr)
	if err != nil {
		switch httperr.BusinessCode(err) {
		case "invalid_date", "invalid_time":
			httperr.BadRequest(c, httperr.BusinessCode(err), "Fecha u hora inválida.")
		default:
			log.Println("availability error:", err)
			httperr.Internal(c, "internal_error", "Error al verificar disponibilidad.")
		}
		return
	}

	httpresp.OK(c, gin.H{
		"date":      date,
		"time":      timeStr,
		"available": available,
	})
}
