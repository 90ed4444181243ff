package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/e3mc/bschool-admin/internal/app/controllers"
	"github.com/e3mc/bschool-admin/internal/app/services"
	"github.com/e3mc/bschool-admin/internal/middleware"
	"github.com/e3mc/bschool-admin/internal/pkg/metrics"
)

// Register mounts every API route. Public site submissions stay open;
// admin reads and all destructive operations sit behind the bearer-token
// middleware.
func Register(router *gin.Engine, svcs *services.Services, authMw *middleware.AuthMiddleware, storagePath string) {
	authController := controllers.NewAuthController(svcs.AuthService)
	studentController := controllers.NewStudentController(svcs.StudentService)
	partnerController := controllers.NewPartnerController(svcs.PartnerService)
	formController := controllers.NewFormController(svcs.FormService)
	applicationController := controllers.NewApplicationController(svcs.ApplicationService)
	brochureController := controllers.NewBrochureController(svcs.BrochureService)
	counsellingController := controllers.NewCounsellingController(svcs.CounsellingService)
	partnerCounselingController := controllers.NewPartnerCounselingController(svcs.PartnerCounselingService)
	blogController := controllers.NewBlogController(svcs.BlogService)
	eventController := controllers.NewEventController(svcs.EventService)
	dashboardController := controllers.NewDashboardController(svcs.DashboardService)

	requireAdmin := authMw.RequireAdmin()

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", metrics.Handler())
	router.Static("/uploads", storagePath)

	api := router.Group("/api")

	admin := api.Group("/admin")
	{
		admin.POST("/register", authController.Register)
		admin.POST("/login", authController.Login)
		admin.GET("/dashboard", requireAdmin, authController.Dashboard)
	}

	students := api.Group("/students")
	{
		students.POST("", studentController.Create)
		students.GET("", studentController.GetAll)
		students.GET("/search", studentController.Search)
		students.GET("/:id", studentController.GetByID)
		students.PUT("/:id", studentController.Update)
		students.DELETE("/:id", requireAdmin, studentController.Delete)
	}

	partners := api.Group("/partners")
	{
		partners.POST("", partnerController.Create)
		partners.GET("", partnerController.GetAll)
		partners.GET("/:id", partnerController.GetByID)
		partners.PUT("/:id", partnerController.Update)
		partners.DELETE("/:id", requireAdmin, partnerController.Delete)
	}

	forms := api.Group("/forms")
	{
		forms.POST("", formController.Create)
		forms.GET("", formController.List)
		forms.GET("/:id", formController.GetByID)
		forms.PATCH("/:id", formController.Patch)
		forms.DELETE("/:id", requireAdmin, formController.Delete)
	}

	applications := api.Group("/applications")
	{
		applications.POST("", applicationController.Create)
		applications.GET("", requireAdmin, applicationController.GetAll)
		applications.DELETE("/:id", requireAdmin, applicationController.Delete)
	}

	brochure := api.Group("/brochure")
	{
		brochure.POST("", brochureController.Create)
		brochure.GET("", requireAdmin, brochureController.List)
		brochure.GET("/:id", requireAdmin, brochureController.GetByID)
		brochure.DELETE("/:id", requireAdmin, brochureController.Delete)
	}

	counselling := api.Group("/counselling")
	{
		counselling.POST("", counsellingController.Create)
		counselling.GET("", requireAdmin, counsellingController.GetAll)
		counselling.DELETE("/:id", requireAdmin, counsellingController.Delete)
	}

	partnerCounseling := api.Group("/partner-counseling")
	{
		partnerCounseling.POST("", partnerCounselingController.Create)
		partnerCounseling.GET("", requireAdmin, partnerCounselingController.GetAll)
		partnerCounseling.DELETE("/:id", requireAdmin, partnerCounselingController.Delete)
	}

	blogs := api.Group("/blogs")
	{
		blogs.POST("", blogController.Create)
		blogs.GET("", blogController.GetAll)
		blogs.GET("/:id", blogController.GetByID)
		blogs.PUT("/:id", blogController.Update)
		blogs.DELETE("/:id", requireAdmin, blogController.Delete)
	}

	events := api.Group("/events")
	{
		events.POST("", eventController.Create)
		events.GET("", eventController.GetAll)
		events.GET("/:id", eventController.GetByID)
		events.PUT("/:id", eventController.Update)
		events.DELETE("/:id", requireAdmin, eventController.Delete)
	}

	api.GET("/dashboard/summary", requireAdmin, dashboardController.Summary)
}
