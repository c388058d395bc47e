package mailer

// SendEmailRequest is the payload for the email provider's send endpoint.
type SendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendEmailResponse is the provider's response to a send request.
type SendEmailResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// InvoiceData carries the fields rendered into the booking invoice email.
type InvoiceData struct {
	CustomerName    string
	BookingID       uint
	ServiceName     string
	CarMake         string
	CarModel        string
	AppointmentDate string
	Amount          float64
	Method          string
	TransactionID   string
	RewardPoints    int
}

// CancellationData carries the fields rendered into the cancellation email.
type CancellationData struct {
	CustomerName    string
	BookingID       uint
	ServiceName     string
	AppointmentDate string
	RefundAmount    float64
}

// CompletionData carries the fields rendered into the service-completed email.
type CompletionData struct {
	CustomerName string
	BookingID    uint
	ServiceName  string
	CarMake      string
	CarModel     string
	RewardPoints int
}
