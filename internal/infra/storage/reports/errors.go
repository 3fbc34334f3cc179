package reports

import "errors"

var (
	// ErrReportNotFound возвращается, когда отчёт не найден
	ErrReportNotFound = errors.New("reports.repository: report not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reports.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reports.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reports.repository: failed to scan row")
)
