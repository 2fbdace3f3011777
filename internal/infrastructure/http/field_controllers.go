package http

import (
	"net/http"
	"time"

	"fieldtrack/internal/application/command"
	"fieldtrack/internal/application/services"
	"fieldtrack/pkg/errors"
	"fieldtrack/pkg/middleware"
	"fieldtrack/pkg/response"

	"github.com/go-chi/chi/v5"
)

// dateRange reads the from/to query pair. ok is false when neither is set.
func dateRange(r *http.Request) (from, to time.Time, ok bool, err error) {
	f, err := queryTime(r, "from", false)
	if err != nil {
		return from, to, false, err
	}
	t, err := queryTime(r, "to", true)
	if err != nil {
		return from, to, false, err
	}
	if f == nil && t == nil {
		return from, to, false, nil
	}
	if f == nil || t == nil {
		return from, to, false, errors.NewBadRequestError("from and to must be given together")
	}
	return *f, *t, true, nil
}

// sendRecord replies with the record, or 404 when it is nil
func sendRecord[T any](w http.ResponseWriter, r *http.Request, resource string, record *T, err error) {
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	if record == nil {
		middleware.HandleError(w, r, errors.NewNotFoundError(resource))
		return
	}
	response.SendSuccess(w, r, record)
}

func sendCreated[T any](w http.ResponseWriter, r *http.Request, record *T, err error) {
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	response.SendCreated(w, r, record)
}

func sendDeleted(w http.ResponseWriter, r *http.Request, resource string, deleted bool, err error) {
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	if !deleted {
		middleware.HandleError(w, r, errors.NewNotFoundError(resource))
		return
	}
	response.SendNoContent(w, r)
}

// MeetingController handles HTTP requests for meetings
type MeetingController struct {
	service *services.MeetingService
}

// NewMeetingController creates a new meeting controller
func NewMeetingController(service *services.MeetingService) *MeetingController {
	return &MeetingController{service: service}
}

// ListMeetings handles GET /meetings. One filter applies: from/to, else
// village, else user_id.
func (c *MeetingController) ListMeetings(w http.ResponseWriter, r *http.Request) {
	from, to, ranged, err := dateRange(r)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	meetings := c.service.ListMeetings(r.URL.Query().Get("user_id"))
	switch {
	case ranged:
		meetings = c.service.GetByDateRange(from, to)
	case r.URL.Query().Get("village") != "":
		meetings = c.service.GetByTerritory(r.URL.Query().Get("village"))
	}
	response.SendList(w, r, meetings, len(meetings), 0)
}

// CreateMeeting handles POST /meetings. The caller is the default user.
func (c *MeetingController) CreateMeeting(w http.ResponseWriter, r *http.Request) {
	var cmd command.CreateMeeting
	if err := decodeJSON(r, &cmd); err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	if cmd.UserID == "" {
		cmd.UserID = middleware.GetUserID(r.Context())
	}
	meeting, err := c.service.CreateMeeting(r.Context(), &cmd)
	sendCreated(w, r, meeting, err)
}

// GetMeeting handles GET /meetings/{id}
func (c *MeetingController) GetMeeting(w http.ResponseWriter, r *http.Request) {
	sendRecord(w, r, "meeting", c.service.GetMeeting(chi.URLParam(r, "id")), nil)
}

// UpdateMeeting handles PATCH /meetings/{id}
func (c *MeetingController) UpdateMeeting(w http.ResponseWriter, r *http.Request) {
	var cmd command.UpdateMeeting
	if err := decodeJSON(r, &cmd); err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	cmd.MeetingID = chi.URLParam(r, "id")
	meeting, err := c.service.UpdateMeeting(r.Context(), &cmd)
	sendRecord(w, r, "meeting", meeting, err)
}

// DeleteMeeting handles DELETE /meetings/{id}
func (c *MeetingController) DeleteMeeting(w http.ResponseWriter, r *http.Request) {
	deleted, err := c.service.DeleteMeeting(r.Context(), chi.URLParam(r, "id"))
	sendDeleted(w, r, "meeting", deleted, err)
}

// SaleController handles HTTP requests for sales
type SaleController struct {
	service *services.SaleService
}

// NewSaleController creates a new sale controller
func NewSaleController(service *services.SaleService) *SaleController {
	return &SaleController{service: service}
}

// ListSales handles GET /sales. from/to takes precedence over user_id.
func (c *SaleController) ListSales(w http.ResponseWriter, r *http.Request) {
	from, to, ranged, err := dateRange(r)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	sales := c.service.ListSales(r.URL.Query().Get("user_id"))
	if ranged {
		sales = c.service.GetByDateRange(from, to)
	}
	response.SendList(w, r, sales, len(sales), 0)
}

// GetRevenue handles GET /sales/revenue
func (c *SaleController) GetRevenue(w http.ResponseWriter, r *http.Request) {
	response.SendSuccess(w, r, map[string]interface{}{
		"total":   c.service.GetTotalRevenue(),
		"by_type": c.service.GetRevenueByType(),
	})
}

// CreateSale handles POST /sales
func (c *SaleController) CreateSale(w http.ResponseWriter, r *http.Request) {
	var cmd command.CreateSale
	if err := decodeJSON(r, &cmd); err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	if cmd.UserID == "" {
		cmd.UserID = middleware.GetUserID(r.Context())
	}
	sale, err := c.service.CreateSale(r.Context(), &cmd)
	sendCreated(w, r, sale, err)
}

// GetSale handles GET /sales/{id}
func (c *SaleController) GetSale(w http.ResponseWriter, r *http.Request) {
	sendRecord(w, r, "sale", c.service.GetSale(chi.URLParam(r, "id")), nil)
}

// UpdateSale handles PATCH /sales/{id}
func (c *SaleController) UpdateSale(w http.ResponseWriter, r *http.Request) {
	var cmd command.UpdateSale
	if err := decodeJSON(r, &cmd); err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	cmd.SaleID = chi.URLParam(r, "id")
	sale, err := c.service.UpdateSale(r.Context(), &cmd)
	sendRecord(w, r, "sale", sale, err)
}

// DeleteSale handles DELETE /sales/{id}
func (c *SaleController) DeleteSale(w http.ResponseWriter, r *http.Request) {
	deleted, err := c.service.DeleteSale(r.Context(), chi.URLParam(r, "id"))
	sendDeleted(w, r, "sale", deleted, err)
}

// SampleController handles HTTP requests for sample distributions
type SampleController struct {
	service *services.SampleService
}

// NewSampleController creates a new sample controller
func NewSampleController(service *services.SampleService) *SampleController {
	return &SampleController{service: service}
}

// ListSamples handles GET /samples. from/to takes precedence over user_id.
func (c *SampleController) ListSamples(w http.ResponseWriter, r *http.Request) {
	from, to, ranged, err := dateRange(r)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	samples := c.service.ListSamples(r.URL.Query().Get("user_id"))
	if ranged {
		samples = c.service.GetByDateRange(from, to)
	}
	response.SendList(w, r, samples, len(samples), 0)
}

// GetTotal handles GET /samples/total
func (c *SampleController) GetTotal(w http.ResponseWriter, r *http.Request) {
	response.SendSuccess(w, r, map[string]int{"total_distributed": c.service.GetTotalDistributed()})
}

// CreateSample handles POST /samples
func (c *SampleController) CreateSample(w http.ResponseWriter, r *http.Request) {
	var cmd command.CreateSample
	if err := decodeJSON(r, &cmd); err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	if cmd.UserID == "" {
		cmd.UserID = middleware.GetUserID(r.Context())
	}
	sample, err := c.service.CreateSample(r.Context(), &cmd)
	sendCreated(w, r, sample, err)
}

// GetSample handles GET /samples/{id}
func (c *SampleController) GetSample(w http.ResponseWriter, r *http.Request) {
	sendRecord(w, r, "sample", c.service.GetSample(chi.URLParam(r, "id")), nil)
}

// UpdateSample handles PATCH /samples/{id}
func (c *SampleController) UpdateSample(w http.ResponseWriter, r *http.Request) {
	var cmd command.UpdateSample
	if err := decodeJSON(r, &cmd); err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	cmd.SampleID = chi.URLParam(r, "id")
	sample, err := c.service.UpdateSample(r.Context(), &cmd)
	sendRecord(w, r, "sample", sample, err)
}

// DeleteSample handles DELETE /samples/{id}
func (c *SampleController) DeleteSample(w http.ResponseWriter, r *http.Request) {
	deleted, err := c.service.DeleteSample(r.Context(), chi.URLParam(r, "id"))
	sendDeleted(w, r, "sample", deleted, err)
}

// WorkLogController handles HTTP requests for work logs
type WorkLogController struct {
	service *services.WorkLogService
}

// NewWorkLogController creates a new work log controller
func NewWorkLogController(service *services.WorkLogService) *WorkLogController {
	return &WorkLogController{service: service}
}

// ListWorkLogs handles GET /worklogs?user_id=
func (c *WorkLogController) ListWorkLogs(w http.ResponseWriter, r *http.Request) {
	logs := c.service.ListWorkLogs(r.URL.Query().Get("user_id"))
	response.SendList(w, r, logs, len(logs), 0)
}

// GetToday handles GET /worklogs/today?user_id=
func (c *WorkLogController) GetToday(w http.ResponseWriter, r *http.Request) {
	response.SendSuccess(w, r, c.service.GetTodayLog(targetUser(r)))
}

// GetDistance handles GET /worklogs/distance?user_id=&date=
func (c *WorkLogController) GetDistance(w http.ResponseWriter, r *http.Request) {
	date, err := queryTime(r, "date", false)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	day := time.Now()
	if date != nil {
		day = *date
	}

	userID := targetUser(r)
	response.SendSuccess(w, r, map[string]interface{}{
		"user_id":     userID,
		"date":        day.Local().Format("2006-01-02"),
		"distance_km": c.service.GetDistanceTraveled(userID, day),
	})
}

// CreateWorkLog handles POST /worklogs
func (c *WorkLogController) CreateWorkLog(w http.ResponseWriter, r *http.Request) {
	var cmd command.CreateWorkLog
	if err := decodeJSON(r, &cmd); err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	if cmd.UserID == "" {
		cmd.UserID = middleware.GetUserID(r.Context())
	}
	workLog, err := c.service.CreateWorkLog(r.Context(), &cmd)
	sendCreated(w, r, workLog, err)
}

// GetWorkLog handles GET /worklogs/{id}
func (c *WorkLogController) GetWorkLog(w http.ResponseWriter, r *http.Request) {
	sendRecord(w, r, "work log", c.service.GetWorkLog(chi.URLParam(r, "id")), nil)
}

// UpdateWorkLog handles PATCH /worklogs/{id}
func (c *WorkLogController) UpdateWorkLog(w http.ResponseWriter, r *http.Request) {
	var cmd command.UpdateWorkLog
	if err := decodeJSON(r, &cmd); err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	cmd.WorkLogID = chi.URLParam(r, "id")
	workLog, err := c.service.UpdateWorkLog(r.Context(), &cmd)
	sendRecord(w, r, "work log", workLog, err)
}

// DeleteWorkLog handles DELETE /worklogs/{id}
func (c *WorkLogController) DeleteWorkLog(w http.ResponseWriter, r *http.Request) {
	deleted, err := c.service.DeleteWorkLog(r.Context(), chi.URLParam(r, "id"))
	sendDeleted(w, r, "work log", deleted, err)
}
