package routes

import (
	"net/http"
	"time"

	"hotelpms/controllers"
	_ "hotelpms/docs"
	"hotelpms/metrics"
	middlewares "hotelpms/middleware"
	"hotelpms/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine, desk *services.FrontDesk, jwtSecret string, loc *time.Location) {
	reservationController := controllers.NewReservationController(desk.Reservations)
	roomController := controllers.NewRoomController(desk.Rooms)
	housekeepingController := controllers.NewHousekeepingController(desk.Housekeeping)
	reportController := controllers.NewReportController(desk.Reports, loc)

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.AuthMiddleware(jwtSecret))

	v1.POST("/reservations", reservationController.CreateReservation)
	v1.GET("/reservations", reservationController.GetReservations)
	v1.GET("/reservations/confirmation/:number", reservationController.GetByConfirmation)
	v1.GET("/reservations/:id", reservationController.GetReservation)
	v1.PATCH("/reservations/:id", reservationController.AmendReservation)
	v1.DELETE("/reservations/:id", reservationController.DeleteReservation)
	v1.POST("/reservations/:id/check-in", reservationController.CheckIn)
	v1.POST("/reservations/:id/check-out", reservationController.CheckOut)
	v1.POST("/reservations/:id/cancel", reservationController.Cancel)

	v1.GET("/rooms", roomController.GetRooms)
	v1.GET("/rooms/availability", roomController.GetAvailability)
	v1.GET("/rooms/:id", roomController.GetRoom)
	v1.PUT("/rooms/:id/status", roomController.ChangeRoomStatus)

	v1.GET("/housekeeping/tasks", housekeepingController.GetTasks)
	v1.POST("/housekeeping/tasks", housekeepingController.CreateTask)
	v1.PUT("/housekeeping/tasks/:id/assign", housekeepingController.AssignTask)
	v1.POST("/housekeeping/tasks/:id/start", housekeepingController.StartTask)
	v1.POST("/housekeeping/tasks/:id/complete", housekeepingController.CompleteTask)

	v1.GET("/reports/daily", reportController.GetDaily)

	metrics.Register()
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
}
