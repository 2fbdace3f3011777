package http

import (
	"net/http"

	"fieldtrack/internal/application/command"
	"fieldtrack/internal/application/services"
	"fieldtrack/internal/domain/aggregate"
	"fieldtrack/pkg/errors"
	"fieldtrack/pkg/middleware"
	"fieldtrack/pkg/response"

	"github.com/go-chi/chi/v5"
)

// VendorController handles HTTP requests for vendor operations
type VendorController struct {
	service *services.VendorService
}

// NewVendorController creates a new vendor controller
func NewVendorController(service *services.VendorService) *VendorController {
	return &VendorController{service: service}
}

// parseVendorFilters reads q, type, village, state, has_purchases, from and to
func parseVendorFilters(r *http.Request) (aggregate.VendorSearchFilters, error) {
	filters := aggregate.VendorSearchFilters{
		SearchTerm: r.URL.Query().Get("q"),
		Villages:   queryList(r, "village"),
		States:     queryList(r, "state"),
	}
	for _, t := range queryList(r, "type") {
		st := aggregate.StakeholderType(t)
		if !st.IsValid() {
			return filters, errors.NewBadRequestError("unknown stakeholder type: " + t)
		}
		filters.Types = append(filters.Types, st)
	}

	var err error
	if filters.HasPurchases, err = queryBool(r, "has_purchases"); err != nil {
		return filters, err
	}
	if filters.DateFrom, err = queryTime(r, "from", false); err != nil {
		return filters, err
	}
	if filters.DateTo, err = queryTime(r, "to", true); err != nil {
		return filters, err
	}
	return filters, nil
}

// SearchVendors handles GET /vendors
func (c *VendorController) SearchVendors(w http.ResponseWriter, r *http.Request) {
	filters, err := parseVendorFilters(r)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	vendors := c.service.SearchVendors(filters)
	response.SendList(w, r, vendors, len(vendors), 0)
}

// CreateVendor handles POST /vendors
func (c *VendorController) CreateVendor(w http.ResponseWriter, r *http.Request) {
	var cmd command.CreateVendor
	if err := decodeJSON(r, &cmd); err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	vendor, err := c.service.CreateVendor(r.Context(), &cmd)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendCreated(w, r, vendor)
}

// GetVendor handles GET /vendors/{id}
func (c *VendorController) GetVendor(w http.ResponseWriter, r *http.Request) {
	vendor := c.service.GetVendor(chi.URLParam(r, "id"))
	if vendor == nil {
		middleware.HandleError(w, r, errors.NewNotFoundError("vendor"))
		return
	}
	response.SendSuccess(w, r, vendor)
}

// UpdateVendor handles PATCH /vendors/{id}
func (c *VendorController) UpdateVendor(w http.ResponseWriter, r *http.Request) {
	var cmd command.UpdateVendor
	if err := decodeJSON(r, &cmd); err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	cmd.VendorID = chi.URLParam(r, "id")

	vendor, err := c.service.UpdateVendor(r.Context(), &cmd)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	if vendor == nil {
		middleware.HandleError(w, r, errors.NewNotFoundError("vendor"))
		return
	}
	response.SendSuccess(w, r, vendor)
}

// DeleteVendor handles DELETE /vendors/{id}
func (c *VendorController) DeleteVendor(w http.ResponseWriter, r *http.Request) {
	deleted, err := c.service.DeleteVendor(r.Context(), &command.DeleteVendor{VendorID: chi.URLParam(r, "id")})
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	if !deleted {
		middleware.HandleError(w, r, errors.NewNotFoundError("vendor"))
		return
	}
	response.SendNoContent(w, r)
}

// UpdateMetrics handles POST /vendors/{id}/metrics
func (c *VendorController) UpdateMetrics(w http.ResponseWriter, r *http.Request) {
	var cmd command.UpdateVendorMetrics
	if err := decodeJSON(r, &cmd); err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	cmd.VendorID = chi.URLParam(r, "id")

	vendor, err := c.service.UpdateMetrics(r.Context(), &cmd)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	if vendor == nil {
		middleware.HandleError(w, r, errors.NewNotFoundError("vendor"))
		return
	}
	response.SendSuccess(w, r, vendor)
}

// GetStats handles GET /vendors/stats
func (c *VendorController) GetStats(w http.ResponseWriter, r *http.Request) {
	response.SendSuccess(w, r, c.service.GetStats())
}

// GetTopVendors handles GET /vendors/top?limit=
func (c *VendorController) GetTopVendors(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	vendors := c.service.GetTopVendors(limit)
	response.SendList(w, r, vendors, len(vendors), limit)
}

// GetRecentVendors handles GET /vendors/recent?limit=
func (c *VendorController) GetRecentVendors(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	vendors := c.service.GetRecentVendors(limit)
	response.SendList(w, r, vendors, len(vendors), limit)
}

// GetVillages handles GET /vendors/villages
func (c *VendorController) GetVillages(w http.ResponseWriter, r *http.Request) {
	response.SendSuccess(w, r, c.service.GetVillages())
}

// GetStates handles GET /vendors/states
func (c *VendorController) GetStates(w http.ResponseWriter, r *http.Request) {
	response.SendSuccess(w, r, c.service.GetStates())
}

// GetMap handles GET /vendors/map. Without filter parameters every active
// vendor is drawn; locate=true centers the map on the device position.
func (c *VendorController) GetMap(w http.ResponseWriter, r *http.Request) {
	locate, err := queryBool(r, "locate")
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	var filters *aggregate.VendorSearchFilters
	if hasAny(r, "q", "type", "village", "state", "has_purchases", "from", "to") {
		f, err := parseVendorFilters(r)
		if err != nil {
			middleware.HandleError(w, r, err)
			return
		}
		filters = &f
	}

	response.SendSuccess(w, r, c.service.GetMap(r.Context(), filters, locate != nil && *locate))
}

func hasAny(r *http.Request, keys ...string) bool {
	q := r.URL.Query()
	for _, k := range keys {
		if q.Has(k) {
			return true
		}
	}
	return false
}
