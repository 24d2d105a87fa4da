package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gulfwash/carwash-scheduler/internal/httperr"
	"github.com/gulfwash/carwash-scheduler/internal/httpresp"
	"github.com/gulfwash/carwash-scheduler/internal/middleware"
	"github.com/gulfwash/carwash-scheduler/internal/opzone"
	ucBooking "github.com/gulfwash/carwash-scheduler/internal/usecase/booking"
)

type EmployeeHandler struct {
	publish     *ucBooking.PublishAvailability
	resolveFlag *ucBooking.ResolveFlag
	queries     *ucBooking.Queries
	zone        *opzone.Zone
}

func NewEmployeeHandler(
	publish *ucBooking.PublishAvailability,
	resolveFlag *ucBooking.ResolveFlag,
	queries *ucBooking.Queries,
	zone *opzone.Zone,
) *EmployeeHandler {
	return &EmployeeHandler{
		publish:     publish,
		resolveFlag: resolveFlag,
		queries:     queries,
		zone:        zone,
	}
}

type PublishAvailabilityRequest struct {
	Slots []ucBooking.AvailabilityRowInput `json:"slots" binding:"required,dive"`
}

type ResolveFlagRequest struct {
	Resolved bool `json:"resolved"`
}

// Available lists the employees explicitly marked free for a slot.
func (h *EmployeeHandler) Available(c *gin.Context) {
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

	employees, err := h.queries.AvailableEmployees(c.Request.Context(), date, slot)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, employees)
}

func (h *EmployeeHandler) PublishAvailability(c *gin.Context) {
	employeeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req PublishAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid availability payload.")
		return
	}

	emp, err := h.publish.Execute(c.Request.Context(), employeeID, req.Slots)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, emp)
}

func (h *EmployeeHandler) ResolveFlag(c *gin.Context) {
	employeeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	flagIndex, err := strconv.Atoi(c.Param("flagIndex"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid flagIndex parameter.")
		return
	}

	var req ResolveFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid flag payload.")
		return
	}

	resolvedBy := c.MustGet(middleware.ContextUserID).(uint)

	result, err := h.resolveFlag.Execute(c.Request.Context(), ucBooking.ResolveFlagInput{
		EmployeeID: employeeID,
		FlagIndex:  flagIndex,
		Resolved:   req.Resolved,
		ResolvedBy: &resolvedBy,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, result)
}
