package select_vehicle

// SelectVehicleRequest HTTP request model
type SelectVehicleRequest struct {
	Registration string `json:"registration"`
}
