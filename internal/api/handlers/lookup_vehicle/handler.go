package lookup_vehicle

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/motcentre/booking-service/internal/api/handlers"
	"github.com/motcentre/booking-service/internal/domain"
	"github.com/motcentre/booking-service/internal/integrations/vehicledirectory"
)

const (
	msgRegistrationRequired = "registration is required"
	msgVehicleNotFound      = "Vehicle not found. Try one of our sample registrations: AB12CDE, XY58ABC, or LK70MNO"
)

type Handler struct {
	directory VehicleDirectory
	logger    Logger
}

func NewHandler(directory VehicleDirectory, logger Logger) *Handler {
	return &Handler{
		directory: directory,
		logger:    logger,
	}
}

// Handle GET /api/v1/vehicles/{registration}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	registration := domain.NormalizeRegistration(mux.Vars(r)["registration"])
	if registration == "" {
		handlers.RespondBadRequest(w, msgRegistrationRequired)
		return
	}

	vehicle, err := h.directory.Lookup(r.Context(), registration)
	if err != nil {
		if errors.Is(err, vehicledirectory.ErrVehicleNotFound) {
			h.logger.Info("GET /vehicles/%s - not found", registration)
			handlers.RespondNotFound(w, msgVehicleNotFound)
			return
		}
		h.logger.Error("GET /vehicles/%s - lookup failed: %v", registration, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /vehicles/%s - found %s", registration, vehicle.Description())
	handlers.RespondJSON(w, http.StatusOK, FromDomain(vehicle))
}
