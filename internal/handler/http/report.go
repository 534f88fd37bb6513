package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/realsteps/presence-backend-go/internal/domain/attendance"
	"github.com/realsteps/presence-backend-go/internal/domain/report"
	"github.com/realsteps/presence-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	AppendReport(w http.ResponseWriter, r *http.Request)
	ListSessionReports(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	logService    report.LogService
	ledgerService attendance.LedgerService
}

func NewReportHandler(logService report.LogService, ledgerService attendance.LedgerService) ReportHandler {
	return &reportHandlerImpl{
		logService:    logService,
		ledgerService: ledgerService,
	}
}

// AppendReport implements ReportHandler
func (h *reportHandlerImpl) AppendReport(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req report.AppendReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID

	created, err := h.logService.Append(r.Context(), req, time.Now().UTC())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Status report filed", created)
}

// ListSessionReports implements ReportHandler
func (h *reportHandlerImpl) ListSessionReports(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		response.BadRequest(w, "Session ID is required", nil)
		return
	}

	// Reports are only visible to the session's owner.
	session, err := h.ledgerService.GetSession(r.Context(), sessionID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if session.EmployeeID != employeeID {
		response.NotFound(w, "Attendance session not found")
		return
	}

	reports, err := h.logService.ListBySession(r.Context(), sessionID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, reports)
}
