package routes

import (
	"qltro/constants"
	"qltro/controllers"
	middlewares "qltro/middleware"
	"qltro/services"
	"qltro/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// SetupRoutes khai báo toàn bộ route của API
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, m *melody.Melody) *services.DueAssignmentService {
	lg := logger.NewDefaultLogger(logger.InfoLevel)

	router.Use(middlewares.ErrorHandler())

	roomSvc := services.NewRoomService(services.RoomServiceOptions{DB: db, Logger: lg})
	bedSvc := services.NewBedService(services.BedServiceOptions{DB: db, Redis: redisCli, WS: m, Logger: lg})
	tenancySvc := services.NewTenancyService(services.TenancyServiceOptions{DB: db, WS: m, BedSvc: bedSvc, Logger: lg})
	categorySvc := services.NewDueCategoryService(services.DueCategoryServiceOptions{DB: db, Logger: lg})
	assignmentSvc := services.NewDueAssignmentService(services.DueAssignmentServiceOptions{DB: db, WS: m, Logger: lg})
	searchSvc := services.NewRoomSearchService(db)

	authController := controllers.NewAuthController(db)
	roomController := controllers.NewRoomController(roomSvc, searchSvc, redisCli)
	bedController := controllers.NewBedController(bedSvc)
	tenancyController := controllers.NewTenancyController(tenancySvc)
	duesController := controllers.NewDuesController(categorySvc, assignmentSvc, m)

	operators := middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleOwner)
	anyUser := middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleOwner, constants.RoleTenant)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/register", authController.RegisterUser)
	v1.POST("/auth/login", authController.Login)
	v1.GET("/profile", anyUser, authController.GetProfile)

	v1.POST("/property", operators, roomController.CreateProperty)
	v1.GET("/property", operators, roomController.GetProperties)

	v1.GET("/room", anyUser, roomController.GetAllRooms)
	v1.POST("/room", operators, roomController.CreateRoom)
	v1.GET("/room/:id", anyUser, roomController.GetRoomDetail)
	v1.PUT("/roomUpdate", operators, roomController.UpdateRoom)
	v1.PUT("/roomCapacity", operators, roomController.ResizeCapacity)
	v1.PUT("/roomStatus", operators, roomController.ChangeRoomOverride)
	v1.DELETE("/room/:id", operators, roomController.DeleteRoom)
	v1.GET("/roomSearch", anyUser, roomController.SearchRooms)

	v1.GET("/bed", anyUser, bedController.GetBedsByRoom)
	v1.POST("/bed", operators, bedController.AddBed)
	v1.PUT("/bedStatus", operators, bedController.ToggleBedStatus)
	v1.DELETE("/bed/:id", operators, bedController.RemoveBed)

	v1.POST("/tenancy", operators, tenancyController.BindTenant)
	v1.PUT("/tenancyStatus", operators, tenancyController.TransitionTenancy)
	v1.GET("/tenancy", operators, tenancyController.GetTenancies)
	v1.GET("/tenancy/:id", anyUser, tenancyController.GetTenancyDetail)
	v1.GET("/bedTenancy", operators, tenancyController.GetActiveTenancyForBed)

	v1.POST("/dueCategory", operators, duesController.CreateDueCategory)
	v1.PUT("/dueCategoryUpdate", operators, duesController.UpdateDueCategory)
	v1.PUT("/dueCategoryStatus", operators, duesController.SetDueCategoryActive)
	v1.DELETE("/dueCategory/:id", operators, duesController.DeleteDueCategory)
	v1.GET("/dueCategory", operators, duesController.GetDueCategories)

	v1.POST("/dues", operators, duesController.AssignDue)
	v1.PUT("/duesPaid", operators, duesController.MarkDuePaid)
	v1.GET("/dues", anyUser, duesController.GetDueAssignments)
	v1.POST("/duesSweep", middlewares.AuthMiddleware(constants.RoleAdmin), duesController.ForceOverdueSweep)

	return assignmentSvc
}
