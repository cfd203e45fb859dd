package routes

import (
	"committee-tracker-backend/internal/api/handlers"
	"committee-tracker-backend/internal/api/middleware"
	"committee-tracker-backend/internal/config"
	"committee-tracker-backend/internal/repository"
	"committee-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize services
	services := service.NewServices(db, repository.RetryPolicy{
		MaxRetries: cfg.TxMaxRetries,
		BaseDelay:  cfg.TxRetryBaseDelay,
	})

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	senateDivisionHandler := handlers.NewSenateDivisionHandler(services.SenateDivisions)
	departmentHandler := handlers.NewDepartmentHandler(services.Departments)
	facultyHandler := handlers.NewFacultyHandler(services.Faculty, services.Assignments)
	committeeHandler := handlers.NewCommitteeHandler(services.Committees, services.Assignments)
	assignmentHandler := handlers.NewAssignmentHandler(services.Assignments)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(middleware.Timeout(cfg.RequestTimeout))
	{
		// Senate division routes
		divisions := v1.Group("/senate-divisions")
		{
			divisions.GET("", senateDivisionHandler.ListSenateDivisions)
			divisions.POST("", senateDivisionHandler.CreateSenateDivision)
			divisions.GET("/:code", senateDivisionHandler.GetSenateDivision)
			divisions.PUT("/:code", senateDivisionHandler.UpdateSenateDivision)
			divisions.DELETE("/:code", senateDivisionHandler.DeleteSenateDivision)
		}

		// Department routes
		departments := v1.Group("/departments")
		{
			departments.GET("", departmentHandler.ListDepartments)
			departments.POST("", departmentHandler.CreateDepartment)
			departments.GET("/:code", departmentHandler.GetDepartment)
			departments.PUT("/:code", departmentHandler.UpdateDepartment)
			departments.DELETE("/:code", departmentHandler.DeleteDepartment)
		}

		// Faculty routes
		faculty := v1.Group("/faculty")
		{
			faculty.GET("", facultyHandler.ListFaculty)
			faculty.POST("", facultyHandler.CreateFaculty)
			faculty.GET("/:email", facultyHandler.GetFaculty)
			faculty.PUT("/:email", facultyHandler.UpdateFaculty)
			faculty.DELETE("/:email", facultyHandler.DeleteFaculty)
			faculty.GET("/:email/assignments", facultyHandler.GetFacultyAssignments)
		}

		// Committee routes
		committees := v1.Group("/committees")
		{
			committees.GET("", committeeHandler.ListCommittees)
			committees.POST("", committeeHandler.CreateCommittee)
			committees.GET("/:id", committeeHandler.GetCommittee)
			committees.PUT("/:id", committeeHandler.UpdateCommittee)
			committees.DELETE("/:id", committeeHandler.DeleteCommittee)
			committees.PUT("/:id/capacity", committeeHandler.ApplyCapacityEdit)
			committees.GET("/:id/slot-requirements", committeeHandler.GetSlotRequirements)
			committees.POST("/:id/slot-requirements", committeeHandler.CreateSlotRequirement)
			committees.DELETE("/:id/slot-requirements/:code", committeeHandler.DeleteSlotRequirement)
			committees.GET("/:id/ledger", committeeHandler.GetLedger)
			committees.GET("/:id/assignments", committeeHandler.GetCommitteeAssignments)
		}

		// Assignment routes
		assignments := v1.Group("/assignments")
		{
			assignments.POST("", assignmentHandler.ProposeAssignment)
			assignments.DELETE("/:email/:committee_id", assignmentHandler.DeleteAssignment)
		}
	}

	return router
}
