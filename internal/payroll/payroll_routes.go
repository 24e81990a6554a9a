package payroll

import (
	"go-hrpay/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	payrolls := r.Group("/payrolls")
	payrolls.Use(middleware.AuthMiddleware())
	{
		payrolls.GET("", middleware.RoleMiddleware("admin", "hr"), handler.GetAll)
		payrolls.GET("/:id", middleware.RoleMiddleware("admin", "hr"), handler.GetById)
		if redisClient != nil {
			payrolls.POST(
				"/generate",
				middleware.Idempotency(redisClient),
				middleware.RoleMiddleware("admin", "hr"),
				handler.Generate,
			)
		} else {
			payrolls.POST("/generate", middleware.RoleMiddleware("admin", "hr"), handler.Generate)
		}
		payrolls.POST("/:id/approve", middleware.RoleMiddleware("admin"), handler.Approve)
	}
}
