package http

import (
	"net/http"
	"time"

	"fieldtrack/internal/application/services"
	jwtutil "fieldtrack/pkg/jwt"
	"fieldtrack/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

// NewRouter mounts every controller behind the shared middleware chain
func NewRouter(svc *services.Services, jwtManager *jwtutil.JWTManager, requestTimeout time.Duration) http.Handler {
	authController := NewAuthController(svc.Auth)
	vendorController := NewVendorController(svc.Vendors)
	meetingController := NewMeetingController(svc.Meetings)
	saleController := NewSaleController(svc.Sales)
	sampleController := NewSampleController(svc.Samples)
	workLogController := NewWorkLogController(svc.WorkLogs)
	dashboardController := NewDashboardController(svc.Dashboard)

	r := chi.NewRouter()
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.RecoveryMiddleware)
	if requestTimeout > 0 {
		r.Use(middleware.TimeoutMiddleware(requestTimeout))
	}

	r.Get("/health", Health)
	r.Post("/auth/login", authController.Login)

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuthMiddleware(jwtManager))

		r.Get("/me/view", authController.CurrentView)
		r.Get("/distance", Distance)
		r.Get("/activity", dashboardController.Activity)
		r.Get("/users", dashboardController.Users)

		r.Route("/vendors", func(r chi.Router) {
			r.Get("/", vendorController.SearchVendors)
			r.Post("/", vendorController.CreateVendor)
			r.Get("/stats", vendorController.GetStats)
			r.Get("/top", vendorController.GetTopVendors)
			r.Get("/recent", vendorController.GetRecentVendors)
			r.Get("/villages", vendorController.GetVillages)
			r.Get("/states", vendorController.GetStates)
			r.Get("/map", vendorController.GetMap)
			r.Get("/{id}", vendorController.GetVendor)
			r.Patch("/{id}", vendorController.UpdateVendor)
			r.Delete("/{id}", vendorController.DeleteVendor)
			r.Post("/{id}/metrics", vendorController.UpdateMetrics)
		})

		r.Route("/meetings", func(r chi.Router) {
			r.Get("/", meetingController.ListMeetings)
			r.Post("/", meetingController.CreateMeeting)
			r.Get("/{id}", meetingController.GetMeeting)
			r.Patch("/{id}", meetingController.UpdateMeeting)
			r.Delete("/{id}", meetingController.DeleteMeeting)
		})

		r.Route("/sales", func(r chi.Router) {
			r.Get("/", saleController.ListSales)
			r.Post("/", saleController.CreateSale)
			r.Get("/revenue", saleController.GetRevenue)
			r.Get("/{id}", saleController.GetSale)
			r.Patch("/{id}", saleController.UpdateSale)
			r.Delete("/{id}", saleController.DeleteSale)
		})

		r.Route("/samples", func(r chi.Router) {
			r.Get("/", sampleController.ListSamples)
			r.Post("/", sampleController.CreateSample)
			r.Get("/total", sampleController.GetTotal)
			r.Get("/{id}", sampleController.GetSample)
			r.Patch("/{id}", sampleController.UpdateSample)
			r.Delete("/{id}", sampleController.DeleteSample)
		})

		r.Route("/worklogs", func(r chi.Router) {
			r.Get("/", workLogController.ListWorkLogs)
			r.Post("/", workLogController.CreateWorkLog)
			r.Get("/today", workLogController.GetToday)
			r.Get("/distance", workLogController.GetDistance)
			r.Get("/{id}", workLogController.GetWorkLog)
			r.Patch("/{id}", workLogController.UpdateWorkLog)
			r.Delete("/{id}", workLogController.DeleteWorkLog)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/summary", dashboardController.Summary)
			r.With(middleware.RequireAdmin).Get("/admin", dashboardController.Admin)
			r.With(middleware.RequireFieldOfficer).Get("/field-officer", dashboardController.FieldOfficer)
			r.With(middleware.RequireDistributor).Get("/distributor", dashboardController.Distributor)
		})
	})

	return r
}
