package attendance

import (
	"go-hrpay/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware())
	{
		attendances.POST("/clock-in", handler.ClockIn)
		attendances.POST("/clock-out", handler.ClockOut)
		attendances.GET("/:employeeId", middleware.RoleMiddleware("admin", "hr"), handler.MonthRecords)
	}
}
