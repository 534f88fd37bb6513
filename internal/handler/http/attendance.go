package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/realsteps/presence-backend-go/internal/domain/attendance"
	"github.com/realsteps/presence-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	GetMyAttendance(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	ledgerService attendance.LedgerService
}

func NewAttendanceHandler(ledgerService attendance.LedgerService) AttendanceHandler {
	return &attendanceHandlerImpl{ledgerService: ledgerService}
}

// CheckIn implements AttendanceHandler
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req attendance.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID

	session, err := h.ledgerService.CheckIn(r.Context(), req, time.Now().UTC())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in", session)
}

// CheckOut implements AttendanceHandler
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req attendance.CheckOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID

	session, err := h.ledgerService.CheckOut(r.Context(), req, time.Now().UTC())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out", session)
}

// GetMyAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	filter := attendance.SessionFilter{Page: 1, Limit: 20}
	query := r.URL.Query()

	if p := query.Get("page"); p != "" {
		if page, err := strconv.Atoi(p); err == nil && page > 0 {
			filter.Page = page
		}
	}
	if l := query.Get("limit"); l != "" {
		if limit, err := strconv.Atoi(l); err == nil && limit > 0 && limit <= 100 {
			filter.Limit = limit
		}
	}
	if start := query.Get("start_date"); start != "" {
		filter.StartDate = &start
	}
	if end := query.Get("end_date"); end != "" {
		filter.EndDate = &end
	}
	if status := query.Get("status"); status != "" {
		filter.Status = &status
	}

	list, err := h.ledgerService.GetMyAttendance(r.Context(), employeeID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, list.Sessions, &response.Meta{
		Page:       list.Page,
		Limit:      list.Limit,
		TotalItems: list.TotalCount,
		TotalPages: list.TotalPages,
	})
}
