package mailer

import (
	"fmt"
	"html"
)

const emailStyle = `font-family: Arial, Helvetica, sans-serif; color: #1f2933; max-width: 600px; margin: 0 auto;`

// RenderInvoice renders the booking invoice email body.
func RenderInvoice(data InvoiceData) string {
	rewardLine := ""
	if data.RewardPoints > 0 {
		rewardLine = fmt.Sprintf(`<p>You earned <strong>%d reward points</strong> with this booking.</p>`, data.RewardPoints)
	}
	txnLine := ""
	if data.TransactionID != "" {
		txnLine = fmt.Sprintf(`<tr><td style="padding:4px 8px;">Transaction ID</td><td style="padding:4px 8px;"><strong>%s</strong></td></tr>`, html.EscapeString(data.TransactionID))
	}

	return fmt.Sprintf(`<div style="%s">
	<h2>Booking Confirmed — Invoice</h2>
	<p>Hi %s,</p>
	<p>Thank you for your payment. Your booking is confirmed.</p>
	<table style="border-collapse:collapse; width:100%%;">
		<tr><td style="padding:4px 8px;">Booking ID</td><td style="padding:4px 8px;"><strong>#%d</strong></td></tr>
		<tr><td style="padding:4px 8px;">Service</td><td style="padding:4px 8px;">%s</td></tr>
		<tr><td style="padding:4px 8px;">Vehicle</td><td style="padding:4px 8px;">%s %s</td></tr>
		<tr><td style="padding:4px 8px;">Appointment</td><td style="padding:4px 8px;">%s</td></tr>
		<tr><td style="padding:4px 8px;">Amount Paid</td><td style="padding:4px 8px;"><strong>₹%.2f</strong></td></tr>
		<tr><td style="padding:4px 8px;">Payment Method</td><td style="padding:4px 8px;">%s</td></tr>
		%s
	</table>
	%s
	<p>We look forward to serving you.</p>
</div>`,
		emailStyle,
		html.EscapeString(data.CustomerName),
		data.BookingID,
		html.EscapeString(data.ServiceName),
		html.EscapeString(data.CarMake),
		html.EscapeString(data.CarModel),
		html.EscapeString(data.AppointmentDate),
		data.Amount,
		html.EscapeString(data.Method),
		txnLine,
		rewardLine,
	)
}

// RenderCancellation renders the booking cancellation email body.
func RenderCancellation(data CancellationData) string {
	refundLine := ""
	if data.RefundAmount > 0 {
		refundLine = fmt.Sprintf(`<p>A refund of <strong>₹%.2f</strong> has been initiated and will reach your account in 5-7 business days.</p>`, data.RefundAmount)
	}

	return fmt.Sprintf(`<div style="%s">
	<h2>Booking Cancelled</h2>
	<p>Hi %s,</p>
	<p>Your booking <strong>#%d</strong> for <strong>%s</strong> on %s has been cancelled.</p>
	%s
	<p>We hope to see you again soon.</p>
</div>`,
		emailStyle,
		html.EscapeString(data.CustomerName),
		data.BookingID,
		html.EscapeString(data.ServiceName),
		html.EscapeString(data.AppointmentDate),
		refundLine,
	)
}

// RenderCompletion renders the service-completed email body.
func RenderCompletion(data CompletionData) string {
	rewardLine := ""
	if data.RewardPoints > 0 {
		rewardLine = fmt.Sprintf(`<p>You have <strong>%d reward points</strong> on this booking.</p>`, data.RewardPoints)
	}

	return fmt.Sprintf(`<div style="%s">
	<h2>Service Completed</h2>
	<p>Hi %s,</p>
	<p>The %s for your %s %s (booking <strong>#%d</strong>) is complete. Your car is ready for pickup.</p>
	%s
	<p>We would love to hear your feedback. You can rate this service from your booking history.</p>
</div>`,
		emailStyle,
		html.EscapeString(data.CustomerName),
		html.EscapeString(data.ServiceName),
		html.EscapeString(data.CarMake),
		html.EscapeString(data.CarModel),
		data.BookingID,
		rewardLine,
	)
}
