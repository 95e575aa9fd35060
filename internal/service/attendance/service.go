package attendance

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/hr-console/hr-console-gateway/internal/domain/attendance"
	"github.com/hr-console/hr-console-gateway/internal/domain/employee"
	"github.com/hr-console/hr-console-gateway/internal/upstream"
	"github.com/hr-console/hr-console-gateway/internal/viewstate"
)

type AttendanceServiceImpl struct {
	upstream *upstream.Client
	store    *viewstate.Store[attendance.View]
	logger   *slog.Logger
}

func NewAttendanceService(client *upstream.Client, logger *slog.Logger) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		upstream: client,
		store:    viewstate.NewStore[attendance.View](),
		logger:   logger,
	}
}

// loadView fetches attendance and employees in parallel and commits the
// mapped collections as one snapshot. A response superseded by a newer load
// never overwrites that load's data.
func (s *AttendanceServiceImpl) loadView(ctx context.Context) (attendance.View, error) {
	token := s.store.Begin()

	var (
		recordWires   []attendance.RecordWire
		employeeWires []employee.Wire
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		wires, err := s.upstream.ListAttendance(gCtx)
		if err != nil {
			return err
		}
		recordWires = wires
		return nil
	})
	g.Go(func() error {
		wires, err := s.upstream.ListEmployees(gCtx)
		if err != nil {
			return err
		}
		employeeWires = wires
		return nil
	})
	if err := g.Wait(); err != nil {
		return attendance.View{}, err
	}

	roster, err := employee.FromWireList(employeeWires)
	if err != nil {
		return attendance.View{}, err
	}

	view := attendance.View{
		Records:   attendance.FromWireList(recordWires),
		Employees: roster,
	}

	snapshot, applied := s.store.Commit(token, view)
	if applied {
		return snapshot.Data, nil
	}

	// A newer load claimed the view while this one was in flight. Serve its
	// snapshot when it has landed; until then this load's own fetch is the
	// only completed one and must be served rather than an empty view.
	s.logger.Debug("discarding stale attendance load", slog.Uint64("token", token))
	current, ok := s.store.Current()
	if !ok {
		return view, nil
	}
	return current.Data, nil
}

// GetView implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetView(ctx context.Context, criteria attendance.FilterCriteria) (*attendance.ViewResponse, error) {
	view, err := s.loadView(ctx)
	if err != nil {
		return nil, err
	}

	filtered := Filter(view.Records, criteria)

	rows := make([]attendance.RecordView, 0, len(filtered))
	for _, record := range filtered {
		rows = append(rows, attendance.RecordView{
			Record:             record,
			ResolvedName:       ResolveName(record, view.Employees),
			ResolvedDepartment: ResolveDepartment(record, view.Employees),
		})
	}

	response := &attendance.ViewResponse{Records: rows}
	if criteria.EmployeeID != "" {
		// Summary runs over the full collection, not the filtered subset.
		summary := Summarize(view.Records, criteria.EmployeeID)
		response.Summary = &summary
	}
	return response, nil
}

// ListByEmployee implements attendance.AttendanceService. An upstream 404
// on the per-employee path becomes the domain sentinel.
func (s *AttendanceServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Record, error) {
	wires, err := s.upstream.ListAttendanceByEmployee(ctx, employeeID)
	if err != nil {
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, attendance.ErrRecordNotFound
		}
		return nil, err
	}
	return attendance.FromWireList(wires), nil
}

// MarkAttendance implements attendance.AttendanceService. Validation failures
// block the upstream call entirely.
func (s *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.upstream.CreateAttendance(ctx, req.ToWire())
}

// GetStats implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetStats(ctx context.Context) (json.RawMessage, error) {
	return s.upstream.GetAttendanceStats(ctx)
}
