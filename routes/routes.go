package routes

import (
	"pdvstar/admin"
	"pdvstar/ads"
	"pdvstar/auth"
	"pdvstar/events"
	"pdvstar/middleware"
	"pdvstar/passes"
	"pdvstar/profile"
	"pdvstar/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/logout", auth.Logout)
	router.GET("/api/auth/me", auth.Me)
}

func AddEventsRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/events", middleware.OptionalAuth(events.GetEvents))
	router.GET("/api/events/:id", events.GetEvent)
	router.POST("/api/events", rl.Limit(middleware.Authenticate(events.CreateEvent)))
	router.PUT("/api/events/:id", middleware.Authenticate(events.UpdateEvent))
	router.POST("/api/events/:id/register", middleware.Authenticate(events.ToggleRegistration))
	router.DELETE("/api/events/:id", middleware.Authenticate(events.DeleteEvent))
}

func AddAdsRoutes(router *httprouter.Router) {
	router.GET("/api/ads", ads.GetAds)
	router.GET("/api/ads/active", ads.GetActiveAds)
	router.POST("/api/ads", middleware.Authenticate(admin.RequireAdmin(ads.CreateAd)))
	router.PUT("/api/ads/:id", middleware.Authenticate(admin.RequireAdmin(ads.UpdateAd)))
	router.DELETE("/api/ads/:id", middleware.Authenticate(admin.RequireAdmin(ads.DeleteAd)))
	router.POST("/api/ads/:id/click", ads.RecordClick)
	router.POST("/api/ads/:id/view", ads.RecordView)
}

func AddPassRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/passes/catalog", passes.GetCatalog)
	router.POST("/api/passes/purchase", rl.Limit(middleware.Authenticate(passes.Purchase)))
	router.GET("/api/passes/active", passes.GetActivePass)
	router.GET("/api/passes/history", middleware.Authenticate(passes.GetHistory))
}

func AddProfileRoutes(router *httprouter.Router) {
	router.PUT("/api/profile", middleware.Authenticate(profile.UpdateProfile))
	router.POST("/api/profile/organizer", middleware.Authenticate(profile.BecomeOrganizer))
	router.POST("/api/profile/follow/:id", middleware.Authenticate(profile.Follow))
	router.DELETE("/api/profile/follow/:id", middleware.Authenticate(profile.Unfollow))
}

func AddAdminRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/admin/login", rl.Limit(admin.Login))
	router.POST("/api/admin/logout", admin.Logout)
	router.GET("/api/admin/session", admin.Status)
	router.POST("/api/admin/events/:id/approve", admin.RequireAdmin(admin.ApproveEvent))
	router.POST("/api/admin/events/:id/reject", admin.RequireAdmin(admin.RejectEvent))
	router.GET("/api/admin/stats", admin.RequireAdmin(admin.Stats))
}
