package controllers

import (
	"strconv"

	"hotelpms/middleware"
	"hotelpms/models"
	"hotelpms/response"

	"github.com/gin-gonic/gin"
)

func currentActor(c *gin.Context) (models.Actor, bool) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		response.Unauthorized(c)
		return models.Actor{}, false
	}
	return actor, true
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}
