package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/gulfwash/carwash-scheduler/internal/domain/booking"
	"github.com/gulfwash/carwash-scheduler/internal/httperr"
	"github.com/gulfwash/carwash-scheduler/internal/httpresp"
	"github.com/gulfwash/carwash-scheduler/internal/middleware"
	"github.com/gulfwash/carwash-scheduler/internal/models"
	"github.com/gulfwash/carwash-scheduler/internal/opzone"
	ucBooking "github.com/gulfwash/carwash-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create       *ucBooking.CreateBooking
	updateStatus *ucBooking.UpdateStatus
	reschedule   *ucBooking.Reschedule
	assign       *ucBooking.AssignEmployee
	review       *ucBooking.AddReview
	payment      *ucBooking.MakePayment
	checkAvail   *ucBooking.CheckAvailability
	daySlots     *ucBooking.ListDaySlots
	queries      *ucBooking.Queries

	zone *opzone.Zone
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	updateStatus *ucBooking.UpdateStatus,
	reschedule *ucBooking.Reschedule,
	assign *ucBooking.AssignEmployee,
	review *ucBooking.AddReview,
	payment *ucBooking.MakePayment,
	checkAvail *ucBooking.CheckAvailability,
	daySlots *ucBooking.ListDaySlots,
	queries *ucBooking.Queries,
	zone *opzone.Zone,
) *BookingHandler {
	return &BookingHandler{
		create:       create,
		updateStatus: updateStatus,
		reschedule:   reschedule,
		assign:       assign,
		review:       review,
		payment:      payment,
		checkAvail:   checkAvail,
		daySlots:     daySlots,
		queries:      queries,
		zone:         zone,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	VehicleID       uint   `json:"vehicle_id" binding:"required"`
	ServiceID       uint   `json:"service_id" binding:"required"`
	AddressID       uint   `json:"address_id" binding:"required"`
	Date            string `json:"date" binding:"required"`
	TimeSlot        string `json:"time_slot" binding:"required"`
	AdditionalNotes string `json:"additional_notes"`
}

type AssignEmployeeRequest struct {
	EmployeeID uint `json:"employee_id" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

type RescheduleRequest struct {
	Date     string `json:"date" binding:"required"`
	TimeSlot string `json:"time_slot" binding:"required"`
	Reason   string `json:"reason"`
}

type MakePaymentRequest struct {
	PaymentMethod string `json:"payment_method"`
	PaymentStatus string `json:"payment_status"`
}

type AddReviewRequest struct {
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Review string `json:"review"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	created, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		CustomerID:      customerID,
		VehicleID:       req.VehicleID,
		ServiceID:       req.ServiceID,
		AddressID:       req.AddressID,
		Date:            req.Date,
		TimeSlot:        req.TimeSlot,
		AdditionalNotes: req.AdditionalNotes,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, created)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *BookingHandler) DaySlots(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}
	date, err := h.zone.ParseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidDate, "Invalid date.")
		return
	}

	serviceID := queryUint(c, "service_id")

	slots, err := h.daySlots.Execute(c.Request.Context(), date, serviceID)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, slots)
}

func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	dateStr := c.Query("date")
	slot := c.Query("time_slot")
	if dateStr == "" || slot == "" {
		httperr.BadRequest(c, "missing_params", "Date and time_slot are required.")
		return
	}
	date, err := h.zone.ParseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidDate, "Invalid date.")
		return
	}

	avail, err := h.checkAvail.Execute(c.Request.Context(), domain.AvailabilityInput{
		Date:      date,
		TimeSlot:  slot,
		ServiceID: queryUint(c, "service_id"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, avail)
}

// ======================================================
// READS
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.queries.ListBookings(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, bookings)
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	b, err := h.queries.GetBooking(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, b)
}

func (h *BookingHandler) ListByCustomer(c *gin.Context) {
	userID, ok := parseIDParam(c, "userID")
	if !ok {
		return
	}

	bookings, err := h.queries.ListByCustomer(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, bookings)
}

func (h *BookingHandler) ListByEmployee(c *gin.Context) {
	employeeID, ok := parseIDParam(c, "employeeID")
	if !ok {
		return
	}

	bookings, err := h.queries.ListByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, bookings)
}

// ======================================================
// MUTATIONS
// ======================================================

func (h *BookingHandler) AssignEmployee(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req AssignEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid assignment payload.")
		return
	}

	b, err := h.assign.Execute(c.Request.Context(), ucBooking.AssignEmployeeInput{
		BookingID:   id,
		EmployeeRef: req.EmployeeID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, b)
}

func (h *BookingHandler) ManagerUpdateStatus(c *gin.Context) {
	h.handleStatusUpdate(c, models.RoleManager)
}

func (h *BookingHandler) EmployeeUpdateStatus(c *gin.Context) {
	h.handleStatusUpdate(c, models.RoleEmployee)
}

func (h *BookingHandler) handleStatusUpdate(c *gin.Context, byRole models.Role) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid status payload.")
		return
	}

	b, err := h.updateStatus.Execute(c.Request.Context(), ucBooking.UpdateStatusInput{
		BookingID: id,
		Status:    domain.Status(req.Status),
		ByRole:    byRole,
		Reason:    req.Reason,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, b)
}

func (h *BookingHandler) Reschedule(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid reschedule payload.")
		return
	}

	b, err := h.reschedule.Execute(c.Request.Context(), ucBooking.RescheduleInput{
		BookingID: id,
		Date:      req.Date,
		TimeSlot:  req.TimeSlot,
		Reason:    req.Reason,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, b)
}

func (h *BookingHandler) MakePayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req MakePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payment payload.")
		return
	}

	result, err := h.payment.Execute(c.Request.Context(), ucBooking.MakePaymentInput{
		BookingID:     id,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: domain.PaymentStatus(req.PaymentStatus),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, result)
}

func (h *BookingHandler) AddReview(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid review payload.")
		return
	}

	if err := h.review.Execute(c.Request.Context(), ucBooking.AddReviewInput{
		BookingID:  id,
		CustomerID: customerID,
		Rating:     req.Rating,
		Review:     req.Review,
	}); err != nil {
		writeError(c, err)
		return
	}
	httpresp.Message(c, "Review submitted successfully")
}

func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.queries.DeleteBooking(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	httpresp.Message(c, "Booking deleted")
}

// ======================================================
// SERVICES
// ======================================================

func (h *BookingHandler) ListServices(c *gin.Context) {
	services, err := h.queries.ListServices(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, services)
}
