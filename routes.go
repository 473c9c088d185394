package main

import (
	"eventhub-backend/config"
	"eventhub-backend/handlers"
	"eventhub-backend/middleware"
	"eventhub-backend/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes wires the stores and handlers onto the router. Tests call
// this directly against an in-memory database.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	accounts := store.NewAccountDirectory(db)
	attendance := store.NewAttendanceStore(db)
	catalog := store.NewEventCatalog(db, attendance)
	comments := store.NewCommentStore(db)

	authHandler := handlers.NewAuthHandler(accounts, cfg.JWTSecret)
	eventHandler := handlers.NewEventHandler(catalog, attendance)
	rsvpHandler := handlers.NewRsvpHandler(attendance)
	commentHandler := handlers.NewCommentHandler(comments)
	userHandler := handlers.NewUserHandler(accounts)
	adminHandler := handlers.NewAdminHandler(accounts, catalog)

	// Public routes
	credentials := r.Group("/")
	credentials.Use(middleware.RateLimit(5, 10))
	{
		credentials.POST("/signup", authHandler.Signup)
		credentials.POST("/login", authHandler.Login)
	}

	r.GET("/events", eventHandler.List)
	r.GET("/events/:id", eventHandler.Get)
	r.GET("/events/:id/comments", commentHandler.List)

	// Protected routes
	authorized := r.Group("/api")
	authorized.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		// EVENTS
		authorized.POST("/events", eventHandler.Create)
		authorized.PUT("/events/:id", eventHandler.Update)
		authorized.DELETE("/events/:id", eventHandler.Delete)
		authorized.GET("/events/:id/attendees", eventHandler.Attendees)

		// RSVP
		authorized.POST("/events/:id/rsvp", rsvpHandler.Join)
		authorized.DELETE("/events/:id/rsvp", rsvpHandler.Cancel)

		// COMMENTS
		authorized.POST("/events/:id/comments", commentHandler.Add)

		// PROFILES
		authorized.GET("/users/:id", userHandler.Get)
		authorized.PUT("/users/:id", userHandler.Update)
		authorized.PUT("/users/:id/password", userHandler.ChangePassword)

		// ADMIN
		admin := authorized.Group("/admin")
		admin.Use(middleware.AdminMiddleware(accounts))
		{
			admin.GET("/users", adminHandler.ListUsers)
			admin.PUT("/users/:id/block", adminHandler.ToggleBlockUser)
			admin.GET("/events", adminHandler.ListEvents)
			admin.PUT("/events/:id/approve", adminHandler.ApproveEvent)
			admin.PUT("/events/:id/reject", adminHandler.RejectEvent)
			admin.DELETE("/events/:id", adminHandler.DeleteEvent)
			admin.GET("/stats", adminHandler.Stats)
		}
	}
}
