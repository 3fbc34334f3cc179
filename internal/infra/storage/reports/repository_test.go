package reports_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motcentre/booking-service/internal/domain"
	"github.com/motcentre/booking-service/internal/infra/storage"
	"github.com/motcentre/booking-service/internal/infra/storage/reports"
	"github.com/motcentre/booking-service/pkg/ptr"
)

func newTestRepo(t *testing.T) *reports.Repository {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, storage.Migrate(context.Background(), db))

	return reports.NewRepository(db)
}

func seedReports(t *testing.T, repo *reports.Repository) {
	t.Helper()
	ctx := context.Background()
	reportedAt := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	seeds := []domain.Report{
		{CustomerName: "John Smith", Registration: "AB12CDE", VehicleDetails: "Ford Focus (2018)", Type: domain.ReportTypeMOT, Status: domain.ReportStatusCompleted},
		{CustomerName: "Sarah Johnson", Registration: "XY58ABC", VehicleDetails: "Volkswagen Golf (2020)", Type: domain.ReportTypeService, Status: domain.ReportStatusPending},
		{CustomerName: "David Lee", Registration: "GH45IJK", VehicleDetails: "Audi A3 (2022)", Type: domain.ReportTypeDiagnostic, Status: domain.ReportStatusInProgress},
	}

	for i, seed := range seeds {
		seed.ReportedAt = reportedAt.AddDate(0, 0, i)
		_, err := repo.Create(ctx, &seed)
		require.NoError(t, err)
	}
}

func TestListFilters(t *testing.T) {
	repo := newTestRepo(t)
	seedReports(t, repo)
	ctx := context.Background()

	all, err := repo.List(ctx, domain.ReportsFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Свежие отчёты первыми
	assert.Equal(t, "David Lee", all[0].CustomerName)

	byType, err := repo.List(ctx, domain.ReportsFilter{Type: ptr.Ptr(domain.ReportTypeDiagnostic)})
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.Equal(t, "GH45IJK", byType[0].Registration)

	byStatus, err := repo.List(ctx, domain.ReportsFilter{Status: ptr.Ptr(domain.ReportStatusPending)})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "Sarah Johnson", byStatus[0].CustomerName)

	bySearch, err := repo.List(ctx, domain.ReportsFilter{Search: "audi"})
	require.NoError(t, err)
	assert.Len(t, bySearch, 1)
}

func TestDeleteAbsentIsNoop(t *testing.T) {
	repo := newTestRepo(t)
	seedReports(t, repo)
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, 2))
	require.NoError(t, repo.Delete(ctx, 2))
	require.NoError(t, repo.Delete(ctx, 999))

	left, err := repo.List(ctx, domain.ReportsFilter{})
	require.NoError(t, err)
	assert.Len(t, left, 2)
}
