package vehicle

// VehicleCreateRequest is the payload for saving a vehicle to the caller's
// garage.
type VehicleCreateRequest struct {
	Make     string `json:"make" validate:"required,min=2,max=50"`
	Model    string `json:"model" validate:"required,min=1,max=50"`
	Year     *int   `json:"year,omitempty" validate:"omitempty,gte=1980,lte=2100"`
	FuelType string `json:"fuel_type" validate:"required,oneof=Petrol Diesel LPG Others"`
}

// VehicleUpdateRequest is the payload for editing a saved vehicle. All
// fields are optional.
type VehicleUpdateRequest struct {
	Make     *string `json:"make,omitempty" validate:"omitempty,min=2,max=50"`
	Model    *string `json:"model,omitempty" validate:"omitempty,min=1,max=50"`
	Year     *int    `json:"year,omitempty" validate:"omitempty,gte=1980,lte=2100"`
	FuelType *string `json:"fuel_type,omitempty" validate:"omitempty,oneof=Petrol Diesel LPG Others"`
}

// IsEmpty reports whether no field was supplied.
func (r VehicleUpdateRequest) IsEmpty() bool {
	return r.Make == nil && r.Model == nil && r.Year == nil && r.FuelType == nil
}
