package controllers

import (
	"time"

	"hotelpms/response"
	"hotelpms/services"
	"hotelpms/utils"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Service  *services.ReportService
	Location *time.Location
}

func NewReportController(service *services.ReportService, loc *time.Location) ReportController {
	return ReportController{Service: service, Location: loc}
}

// @Summary Daily operations report
// @Tags reports
// @Produce json
// @Param date query string false "Day, defaults to today"
// @Success 200 {object} response.Response{data=models.DailyReport}
// @Security BearerAuth
// @Router /reports/daily [get]
func (r ReportController) GetDaily(c *gin.Context) {
	day := utils.Today(r.Location)
	if s := c.Query("date"); s != "" {
		parsed, err := utils.ParseDate(s)
		if err != nil {
			response.BadRequest(c, "date must be in yyyy-mm-dd form")
			return
		}
		day = parsed
	}
	report, err := r.Service.Daily(c.Request.Context(), day)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, report)
}
