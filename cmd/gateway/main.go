package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/hr-console/hr-console-gateway/internal/config"
	appHTTP "github.com/hr-console/hr-console-gateway/internal/handler/http"
	attendanceService "github.com/hr-console/hr-console-gateway/internal/service/attendance"
	dashboardService "github.com/hr-console/hr-console-gateway/internal/service/dashboard"
	employeeService "github.com/hr-console/hr-console-gateway/internal/service/employee"
	"github.com/hr-console/hr-console-gateway/internal/upstream"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "hr-console-gateway"),
	)

	hrAPI := upstream.NewClient(cfg.Upstream)

	employeeSvc := employeeService.NewEmployeeService(hrAPI)
	attendanceSvc := attendanceService.NewAttendanceService(hrAPI, logger)
	dashboardSvc := dashboardService.NewDashboardService(hrAPI)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		cfg,
		employeeHandler,
		attendanceHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Gateway running at http://localhost%s (upstream: %s)\n", port, cfg.Upstream.BaseURL)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
