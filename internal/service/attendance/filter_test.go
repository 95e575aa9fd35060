package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hr-console/hr-console-gateway/internal/domain/attendance"
	"github.com/hr-console/hr-console-gateway/internal/domain/employee"
)

func record(id, employeeID, date, status string) attendance.Record {
	return attendance.Record{
		ID:         id,
		EmployeeID: attendance.DirectRef(employeeID),
		Date:       date,
		Status:     status,
	}
}

func TestFilter_Identity(t *testing.T) {
	records := []attendance.Record{
		record("1", "E1", "2024-01-01", "Present"),
		record("2", "E2", "2024-01-02", "Absent"),
	}

	got := Filter(records, attendance.FilterCriteria{})
	assert.Equal(t, records, got)
}

func TestFilter_EmptyCollection(t *testing.T) {
	got := Filter([]attendance.Record{}, attendance.FilterCriteria{Date: "2024-01-01"})
	assert.Empty(t, got)
}

func TestFilter_ByDate(t *testing.T) {
	records := []attendance.Record{
		record("1", "E1", "2024-01-01T09:30:00.000Z", "Present"),
		record("2", "E2", "2024-01-02", "Present"),
		record("3", "E3", "2024-01-01", "Absent"),
	}

	got := Filter(records, attendance.FilterCriteria{Date: "2024-01-01"})
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
}

func TestFilter_ByEmployeePreservesOrder(t *testing.T) {
	records := []attendance.Record{
		record("1", "EMP001", "2024-01-01", "Present"),
		record("2", "EMP002", "2024-01-01", "Present"),
		record("3", "EMP001", "2024-01-02", "Absent"),
	}

	got := Filter(records, attendance.FilterCriteria{EmployeeID: "EMP001"})
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
}

func TestFilter_EmbeddedRefNeverMatchesEmployeeFilter(t *testing.T) {
	records := []attendance.Record{
		{ID: "1", EmployeeID: attendance.EmbeddedRef(attendance.EmployeeProfile{ID: "E1", FullName: "Ann"})},
		record("2", "E1", "2024-01-01", "Present"),
	}

	got := Filter(records, attendance.FilterCriteria{EmployeeID: "E1"})
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestFilter_ComposesWithAnd(t *testing.T) {
	records := []attendance.Record{
		record("1", "E1", "2024-01-01", "Present"),
		record("2", "E1", "2024-01-02", "Present"),
		record("3", "E2", "2024-01-01", "Present"),
	}

	got := Filter(records, attendance.FilterCriteria{Date: "2024-01-01", EmployeeID: "E1"})
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestFilter_UnparseableDateNeverMatches(t *testing.T) {
	records := []attendance.Record{record("1", "E1", "yesterday", "Present")}
	assert.Empty(t, Filter(records, attendance.FilterCriteria{Date: "2024-01-01"}))
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	records := []attendance.Record{
		record("1", "E1", "2024-01-01", "Present"),
		record("2", "E2", "2024-01-01", "Present"),
	}

	_ = Filter(records, attendance.FilterCriteria{EmployeeID: "E2"})
	assert.Equal(t, "1", records[0].ID)
	assert.Len(t, records, 2)
}

func TestCountByStatus(t *testing.T) {
	records := []attendance.Record{
		record("1", "E1", "2024-01-01", "Present"),
		record("2", "E1", "2024-01-02", "Absent"),
		record("3", "E2", "2024-01-01", "Present"),
		record("4", "E1", "2024-01-03", "Present"),
	}

	assert.Equal(t, 2, CountByStatus(records, "E1", attendance.StatusPresent))
	assert.Equal(t, 1, CountByStatus(records, "E1", attendance.StatusAbsent))
	assert.Equal(t, 0, CountByStatus(records, "E3", attendance.StatusPresent))
	assert.Equal(t, 3, CountRecords(records, "E1"))
}

func TestCountByStatus_UnknownStatusCountsForItsOwnValueOnly(t *testing.T) {
	records := []attendance.Record{
		record("1", "E1", "2024-01-01", "Present"),
		record("2", "E1", "2024-01-02", "Leave"),
	}

	// A third status value is neither present nor absent to the counters
	assert.Equal(t, 1, CountByStatus(records, "E1", attendance.StatusPresent))
	assert.Equal(t, 0, CountByStatus(records, "E1", attendance.StatusAbsent))
	assert.Equal(t, 1, CountByStatus(records, "E1", "Leave"))
	assert.Equal(t, 2, CountRecords(records, "E1"))
}

func TestSummarize(t *testing.T) {
	records := []attendance.Record{
		record("1", "E1", "2024-01-01", "Present"),
		record("2", "E1", "2024-01-02", "Absent"),
	}

	summary := Summarize(records, "E1")
	assert.Equal(t, attendance.EmployeeSummary{
		EmployeeID:   "E1",
		PresentDays:  1,
		AbsentDays:   1,
		TotalRecords: 2,
	}, summary)
}

func TestResolveName_TierOrder(t *testing.T) {
	roster := []employee.Employee{
		{ID: "E1", EmployeeID: "E1", FullName: "Roster Ann", Department: "Eng"},
	}

	// Tier 1: the record's own name wins
	withName := attendance.Record{
		EmployeeID:   attendance.EmbeddedRef(attendance.EmployeeProfile{FullName: "Embedded Ann"}),
		EmployeeName: "Record Ann",
	}
	assert.Equal(t, "Record Ann", ResolveName(withName, roster))

	// Tier 2: the embedded profile
	embedded := attendance.Record{
		EmployeeID: attendance.EmbeddedRef(attendance.EmployeeProfile{FullName: "Embedded Ann"}),
	}
	assert.Equal(t, "Embedded Ann", ResolveName(embedded, roster))

	// Tier 3: roster lookup by id
	direct := attendance.Record{EmployeeID: attendance.DirectRef("E1")}
	assert.Equal(t, "Roster Ann", ResolveName(direct, roster))

	// Tier 4: literal fallback
	unknown := attendance.Record{EmployeeID: attendance.DirectRef("E9")}
	assert.Equal(t, "Unknown", ResolveName(unknown, roster))
}

func TestResolveDepartment_TierOrder(t *testing.T) {
	roster := []employee.Employee{
		{ID: "E1", EmployeeID: "E1", FullName: "Ann", Department: "Eng"},
	}

	embedded := attendance.Record{
		EmployeeID: attendance.EmbeddedRef(attendance.EmployeeProfile{Department: "Ops"}),
	}
	assert.Equal(t, "Ops", ResolveDepartment(embedded, roster))

	direct := attendance.Record{EmployeeID: attendance.DirectRef("E1")}
	assert.Equal(t, "Eng", ResolveDepartment(direct, roster))

	unknown := attendance.Record{EmployeeID: attendance.DirectRef("E9")}
	assert.Equal(t, "N/A", ResolveDepartment(unknown, roster))

	// An embedded profile without a department cannot fall back to the
	// roster; the lookup needs the string form
	embeddedNoDept := attendance.Record{
		EmployeeID: attendance.EmbeddedRef(attendance.EmployeeProfile{ID: "E1", FullName: "Ann"}),
	}
	assert.Equal(t, "N/A", ResolveDepartment(embeddedNoDept, roster))
}
