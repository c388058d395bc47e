package repository

import (
	"time"

	paymentModel "car-service-booking/models/payment"

	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository returns a GORM-backed ReportStore.
func NewReportRepository(db *gorm.DB) ReportStore {
	return &reportRepository{db: db}
}

// RevenueByMethod sums completed payments per method inside the window.
func (r *reportRepository) RevenueByMethod(from, to time.Time) ([]RevenueRow, error) {
	var rows []RevenueRow
	err := r.db.Model(&paymentModel.Payment{}).
		Select("method, COUNT(*) as count, COALESCE(SUM(amount), 0) as total").
		Where("status = ?", paymentModel.PaymentStatusCompleted.String()).
		Where("created_at >= ? AND created_at < ?", from, to).
		Group("method").
		Order("total DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// RevenueTotal sums completed payments inside the window.
func (r *reportRepository) RevenueTotal(from, to time.Time) (float64, error) {
	var total float64
	err := r.db.Model(&paymentModel.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("status = ?", paymentModel.PaymentStatusCompleted.String()).
		Where("created_at >= ? AND created_at < ?", from, to).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
