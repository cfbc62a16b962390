package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-desk/controllers"
	"hotel-desk/logger"
	"hotel-desk/middleware"
)

type Options struct {
	CORSOrigins []string
	// APIKeyHash guards every mutating route when set.
	APIKeyHash string
	Log        *logger.Logger
}

func SetupRouter(
	sc *controllers.SettingsController,
	rc *controllers.RoomController,
	ec *controllers.EmployeeController,
	resc *controllers.ReservationController,
	opts Options,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(opts.Log))

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.APIKeyHeader, middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	write := api.Group("", middleware.RequireAPIKey(opts.APIKeyHash))
	{
		api.GET("/hotel", sc.GetHotel)
		write.PUT("/hotel", sc.UpdateHotel)

		api.GET("/room-types", rc.GetRoomTypes)

		api.GET("/rooms", rc.GetRooms)
		api.GET("/rooms/:number", rc.GetRoom)
		api.GET("/rooms/:number/history", rc.GetRoomHistory)
		write.POST("/rooms", rc.CreateRoom)
		write.PATCH("/rooms/:number", rc.UpdateRoom)
		write.DELETE("/rooms/:number", rc.DeleteRoom)

		api.GET("/employees", ec.GetEmployees)
		api.GET("/employees/:id", ec.GetEmployee)
		write.POST("/employees", ec.CreateEmployee)
		write.PUT("/employees/:id", ec.UpdateEmployee)
		write.DELETE("/employees/:id", ec.DeleteEmployee)
		write.POST("/employees/:id/tasks", ec.AddTask)
		write.DELETE("/employees/:id/tasks", ec.RemoveTask)

		api.GET("/reservations", resc.GetReservations)
		write.POST("/checkin", resc.CheckIn)
		write.POST("/checkout", resc.CheckOut)
	}

	return r
}
