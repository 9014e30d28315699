package handlers

import (
	"net/http"
	"strconv"
	"time"

	"scooply/models"
	"scooply/services/billing"
	"scooply/services/reminder"
	"scooply/services/schedule"
	"scooply/utils"

	"github.com/gin-gonic/gin"
)

// OpsHandler exposes the periodic jobs for manual operator runs, plus the
// health snapshot. This is the whole HTTP surface of the worker; customer
// CRUD lives in the office-facing app.
type OpsHandler struct {
	Generator   *schedule.RouteGenerator
	Billing     *billing.Aggregator
	Reminders   *reminder.Dispatcher
	HorizonDays int
	Location    *time.Location
}

// NewOpsHandler constructs the operator handler.
func NewOpsHandler(gen *schedule.RouteGenerator, agg *billing.Aggregator, disp *reminder.Dispatcher, horizonDays int, loc *time.Location) *OpsHandler {
	return &OpsHandler{
		Generator:   gen,
		Billing:     agg,
		Reminders:   disp,
		HorizonDays: horizonDays,
		Location:    loc,
	}
}

// HealthHandler returns the latest health snapshot.
func (h *OpsHandler) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}

// GenerateRoutesHandler runs route generation now. Optional query param
// horizonDays overrides the configured horizon.
func (h *OpsHandler) GenerateRoutesHandler(c *gin.Context) {
	horizon := h.HorizonDays
	if v := c.Query("horizonDays"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, utils.ErrorResponse{Message: "horizonDays must be a positive integer"})
			return
		}
		horizon = n
	}

	result := h.Generator.GenerateUpcoming(c.Request.Context(), time.Now(), horizon)
	c.JSON(http.StatusOK, result)
}

// RunBillingHandler runs monthly billing. Defaults to the month that ended
// most recently; query params month and year override.
func (h *OpsHandler) RunBillingHandler(c *gin.Context) {
	prev := time.Now().In(h.Location).AddDate(0, 0, -1)
	month := int(prev.Month())
	year := prev.Year()

	if v := c.Query("month"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 12 {
			c.JSON(http.StatusBadRequest, utils.ErrorResponse{Message: "month must be in 1..12"})
			return
		}
		month = n
	}
	if v := c.Query("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.ErrorResponse{Message: "year must be an integer"})
			return
		}
		year = n
	}

	result := h.Billing.RunMonthlyBilling(c.Request.Context(), month, year)
	c.JSON(http.StatusOK, result)
}

// SendRemindersHandler dispatches reminders for a date (default: tomorrow in
// the configured zone).
func (h *OpsHandler) SendRemindersHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().In(h.Location).AddDate(0, 0, 1).Format(models.DateLayout)
	} else if _, err := time.Parse(models.DateLayout, date); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse{Message: "date must be YYYY-MM-DD"})
		return
	}

	result := h.Reminders.SendRemindersFor(c.Request.Context(), date)
	c.JSON(http.StatusOK, result)
}
