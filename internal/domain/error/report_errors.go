// Package error defines domain-specific errors for the university finance back office.
package error

import "errors"

// Report domain errors. Underlying query failures are wrapped into these
// generic errors so that clients never see database details.
var (
	// ErrDailyReportFailed is returned when the daily report cannot be generated.
	ErrDailyReportFailed = errors.New("failed to generate daily report")

	// ErrMonthlyReportFailed is returned when the monthly report cannot be generated.
	ErrMonthlyReportFailed = errors.New("failed to generate monthly report")

	// ErrYearlyReportFailed is returned when the yearly report cannot be generated.
	ErrYearlyReportFailed = errors.New("failed to generate yearly report")

	// ErrDashboardReportFailed is returned when the dashboard report cannot be generated.
	ErrDashboardReportFailed = errors.New("failed to generate dashboard report")

	// ErrFinancialSummaryFailed is returned when the financial summary cannot be generated.
	ErrFinancialSummaryFailed = errors.New("failed to generate financial summary")

	// ErrInvalidReportDate is returned when the requested report date is malformed,
	// in the future, or more than five years in the past.
	ErrInvalidReportDate = errors.New("invalid report date")

	// ErrInvalidReportPeriod is returned when the requested year or month is out of range.
	ErrInvalidReportPeriod = errors.New("invalid report period")
)
