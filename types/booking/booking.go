package booking

// BookingCreateRequest is the payload for creating a booking. The caller
// identity, when present, links the booking to a registered user; otherwise
// it is stored as a guest booking.
type BookingCreateRequest struct {
	CustomerName    string `json:"customer_name" validate:"required,min=2,max=100"`
	CustomerEmail   string `json:"customer_email" validate:"required,email"`
	CustomerPhone   string `json:"customer_phone" validate:"required,phone"`
	ServiceName     string `json:"service_name" validate:"required,oneof='Preventive Maintenance Service' 'Body Repair Service' 'Car Care Service'"`
	CarMake         string `json:"car_make" validate:"required,min=2,max=50"`
	CarModel        string `json:"car_model" validate:"required,min=1,max=50"`
	FuelType        string `json:"fuel_type" validate:"required,oneof=Petrol Diesel LPG Others"`
	AppointmentDate string `json:"appointment_date" validate:"required,futuredate"`
	Address         string `json:"address" validate:"required,min=10,max=500"`
	VehicleID       *uint  `json:"vehicle_id,omitempty" validate:"omitempty,gt=0"`
}

// BookingUpdateRequest is the admin payload for mutating a booking. All
// fields are optional; at least one must be present.
type BookingUpdateRequest struct {
	CustomerName    *string `json:"customer_name,omitempty" validate:"omitempty,min=2,max=100"`
	CustomerEmail   *string `json:"customer_email,omitempty" validate:"omitempty,email"`
	CustomerPhone   *string `json:"customer_phone,omitempty" validate:"omitempty,phone"`
	CarMake         *string `json:"car_make,omitempty" validate:"omitempty,min=2,max=50"`
	CarModel        *string `json:"car_model,omitempty" validate:"omitempty,min=1,max=50"`
	FuelType        *string `json:"fuel_type,omitempty" validate:"omitempty,oneof=Petrol Diesel LPG Others"`
	AppointmentDate *string `json:"appointment_date,omitempty" validate:"omitempty,futuredate"`
	Address         *string `json:"address,omitempty" validate:"omitempty,min=10,max=500"`
	Status          *string `json:"status,omitempty" validate:"omitempty,oneof=PENDING CONFIRMED IN_PROGRESS COMPLETED CANCELLED"`
}

// IsEmpty reports whether no field was supplied.
func (r BookingUpdateRequest) IsEmpty() bool {
	return r.CustomerName == nil && r.CustomerEmail == nil && r.CustomerPhone == nil &&
		r.CarMake == nil && r.CarModel == nil && r.FuelType == nil &&
		r.AppointmentDate == nil && r.Address == nil && r.Status == nil
}

// RateRequest is the payload for rating a completed booking.
type RateRequest struct {
	Score   int    `json:"score" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"omitempty,max=1000"`
}

// HistoryStats summarizes a customer's booking history.
type HistoryStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
}
