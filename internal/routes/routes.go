package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mexicoindia/membership-backend/internal/config"
	"github.com/mexicoindia/membership-backend/internal/controllers"
	"github.com/mexicoindia/membership-backend/internal/middleware"
	"github.com/mexicoindia/membership-backend/internal/store"
	"github.com/mexicoindia/membership-backend/internal/ws"
)

func Register(r *gin.Engine, st store.MembershipStore, notifier controllers.Notifier, feed *ws.FeedHub, adminPasswordHash string, cfg *config.Config) {
	expires, err := time.ParseDuration(cfg.JWTExpiresIn + "m")
	if err != nil || expires == 0 {
		expires = 60 * time.Minute
	}

	membershipCtrl := &controllers.MembershipController{Store: st, Notifier: notifier, Feed: feed}
	contactCtrl := &controllers.ContactController{Notifier: notifier}
	adminCtrl := &controllers.AdminController{Store: st}
	authCtrl := &controllers.AuthController{
		AdminEmail:        cfg.AdminEmail,
		AdminPasswordHash: adminPasswordHash,
		JWTSecret:         cfg.JWTSecret,
		ExpiresIn:         expires,
	}

	// Health check
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "Server is running!",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := r.Group("/api", middleware.OriginGuard(cfg.AllowedOrigins))
	{
		api.POST("/membership", membershipCtrl.Create)
		api.POST("/contact", contactCtrl.Create)

		admin := api.Group("/admin")
		{
			admin.POST("/login", authCtrl.Login)

			authed := admin.Group("", middleware.AdminAuth(cfg.JWTSecret))
			{
				authed.GET("/memberships", adminCtrl.ListMemberships)
				authed.GET("/feed", ws.FeedHandler(feed))
			}
		}
	}
}
