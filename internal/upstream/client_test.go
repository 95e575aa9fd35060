package upstream

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hr-console/hr-console-gateway/internal/config"
	"github.com/hr-console/hr-console-gateway/internal/domain/attendance"
	"github.com/hr-console/hr-console-gateway/internal/domain/employee"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.UpstreamConfig{BaseURL: srv.URL, Timeout: 5 * time.Second})
}

func TestListEmployees(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/employees", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"employee_id":"E1","full_name":"Ann","email":"a@x.com","department":"Eng"}]`))
	}))

	wires, err := client.ListEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, wires, 1)
	assert.Equal(t, employee.Wire{EmployeeID: "E1", FullName: "Ann", Email: "a@x.com", Department: "Eng"}, wires[0])
}

func TestCreateAttendance_SendsWirePayload(t *testing.T) {
	var gotBody string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/attendance", r.URL.Path)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		gotBody = string(body)
		w.WriteHeader(http.StatusCreated)
	}))

	err := client.CreateAttendance(context.Background(), attendance.CreateWire{
		EmployeeID: "E1",
		Date:       "2024-01-15",
		Status:     "Present",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"employee_id":"E1","date":"2024-01-15","status":"Present"}`, gotBody)
}

func TestAPIError_ServerMessage(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"Employee already exists"}`))
	}))

	err := client.CreateEmployee(context.Background(), employee.Wire{EmployeeID: "E1"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "Employee already exists", apiErr.Message)
}

func TestAPIError_FallbackMessage(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	_, err := client.ListAttendance(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Equal(t, "Service Unavailable", apiErr.Message)
}

func TestGetAttendanceStats_PassesBodyThrough(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/attendance/stats", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"anything":{"the_server":"returns"}}`))
	}))

	raw, err := client.GetAttendanceStats(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"anything":{"the_server":"returns"}}`, string(raw))
}

func TestDeleteEmployee_PathParam(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/employees/E1", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, client.DeleteEmployee(context.Background(), "E1"))
}
