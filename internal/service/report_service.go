package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"patrol-watch/backend/internal/dto"
	"patrol-watch/backend/internal/repository"
)

// ── Report module errors ──

var (
	ErrExportGenerateFail = errors.New("generate attendance export failed")
)

// unknownPlaceholder substitutes for referenced entities that no longer
// exist; the report never fails on a dangling id.
const unknownPlaceholder = "Unknown"

// ReportService builds the admin-facing attendance views.
//
// Each row is enriched with independent per-row lookups against users,
// patrol points and assignments. That is an N+1 pattern, acceptable at the
// capped result size; batch the joins before lifting the cap.
type ReportService interface {
	ListAttendance(ctx context.Context) ([]dto.AttendanceReportRow, error)
	// ExportAttendance renders the same report as an .xlsx workbook and
	// returns the content plus a suggested filename.
	ExportAttendance(ctx context.Context) (*bytes.Buffer, string, error)
}

type reportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewReportService creates the ReportService.
func NewReportService(repo *repository.Repository, logger *zap.Logger) ReportService {
	return &reportService{repo: repo, logger: logger}
}

func (s *reportService) ListAttendance(ctx context.Context) ([]dto.AttendanceReportRow, error) {
	records, err := s.repo.Attendance.List(ctx, maxReportResults)
	if err != nil {
		s.logger.Error("list attendance failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.AttendanceReportRow, 0, len(records))
	for i := range records {
		rec := &records[i]
		row := dto.AttendanceReportRow{
			ID:                 rec.AttendanceID,
			OfficerName:        unknownPlaceholder,
			PatrolPointName:    unknownPlaceholder,
			PatrolPointAddress: unknownPlaceholder,
			CheckInTime:        rec.CheckInTime.UTC().Format(time.RFC3339),
			Notes:              rec.Notes,
		}

		if officer, err := s.repo.User.GetByID(ctx, rec.OfficerID); err == nil {
			row.OfficerName = officer.FullName
			row.BadgeNumber = officer.BadgeNumber
		}
		if point, err := s.repo.PatrolPoint.GetByID(ctx, rec.PatrolPointID); err == nil {
			row.PatrolPointName = point.Name
			row.PatrolPointAddress = point.Address
		}
		if assignment, err := s.repo.Assignment.GetByID(ctx, rec.RouteAssignmentID); err == nil {
			date := assignment.Date
			row.Date = &date
		}

		result = append(result, row)
	}

	return result, nil
}

func (s *reportService) ExportAttendance(ctx context.Context) (*bytes.Buffer, string, error) {
	rows, err := s.ListAttendance(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Attendance"
	f.SetSheetName("Sheet1", sheet)

	header := []interface{}{"Date", "Officer", "Badge", "Patrol Point", "Address", "Check-in Time", "Notes"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		s.logger.Error("write export header failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	for i, row := range rows {
		date := ""
		if row.Date != nil {
			date = *row.Date
		}
		badge := ""
		if row.BadgeNumber != nil {
			badge = *row.BadgeNumber
		}
		notes := ""
		if row.Notes != nil {
			notes = *row.Notes
		}

		cell := fmt.Sprintf("A%d", i+2)
		values := []interface{}{date, row.OfficerName, badge, row.PatrolPointName, row.PatrolPointAddress, row.CheckInTime, notes}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			s.logger.Error("write export row failed", zap.Error(err))
			return nil, "", ErrExportGenerateFail
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("render export workbook failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("attendance_report_%s.xlsx", time.Now().UTC().Format("20060102"))
	return buf, filename, nil
}
