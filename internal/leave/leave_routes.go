package leave

import (
	"go-hrpay/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	balances := r.Group("/leave-balances")
	balances.Use(middleware.AuthMiddleware())
	{
		balances.GET("/:employeeId", middleware.RoleMiddleware("admin", "hr", "employee"), handler.GetBalance)
	}
}
