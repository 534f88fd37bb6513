package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/realsteps/presence-backend-go/internal/domain/biometric"
	"github.com/realsteps/presence-backend-go/internal/handler/http/response"
)

type BiometricHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	GetMyEnrollment(w http.ResponseWriter, r *http.Request)
}

type biometricHandlerImpl struct {
	registryService biometric.RegistryService
}

func NewBiometricHandler(registryService biometric.RegistryService) BiometricHandler {
	return &biometricHandlerImpl{registryService: registryService}
}

// Register implements BiometricHandler
func (h *biometricHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req biometric.EnrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID

	enrollment, err := h.registryService.Enroll(r.Context(), req, time.Now().UTC())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Biometric modality enrolled", enrollment)
}

// GetMyEnrollment implements BiometricHandler
func (h *biometricHandlerImpl) GetMyEnrollment(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	enrollment, err := h.registryService.GetEnrollment(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, enrollment)
}
