package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/e3mc/bschool-admin/internal/app/models/dto"
	"github.com/e3mc/bschool-admin/internal/app/services"
	"github.com/e3mc/bschool-admin/internal/middleware"
)

// BlogController handles blog post endpoints.
type BlogController struct {
	blogService services.BlogService
}

// NewBlogController creates a new BlogController.
func NewBlogController(blogService services.BlogService) *BlogController {
	return &BlogController{blogService: blogService}
}

// Create handles POST /api/blogs (multipart, single image).
func (ctrl *BlogController) Create(c *gin.Context) {
	var req dto.BlogCreateRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(c, bindError(err))
		return
	}

	blog, err := ctrl.blogService.Create(c.Request.Context(), &req, formFile(c, "blog_img"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, blog)
}

// GetAll handles GET /api/blogs.
func (ctrl *BlogController) GetAll(c *gin.Context) {
	blogs, err := ctrl.blogService.GetAll(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, blogs)
}

// GetByID handles GET /api/blogs/:id.
func (ctrl *BlogController) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	blog, err := ctrl.blogService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, blog)
}

// Update handles PUT /api/blogs/:id (multipart).
func (ctrl *BlogController) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.BlogUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(c, bindError(err))
		return
	}

	blog, err := ctrl.blogService.Update(c.Request.Context(), id, &req, formFile(c, "blog_img"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, blog)
}

// Delete handles DELETE /api/blogs/:id.
func (ctrl *BlogController) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	warnings, err := ctrl.blogService.Delete(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResponse{
		Message:  "Blog deleted successfully",
		Warnings: warnings,
	})
}

// EventController handles event endpoints.
type EventController struct {
	eventService services.EventService
}

// NewEventController creates a new EventController.
func NewEventController(eventService services.EventService) *EventController {
	return &EventController{eventService: eventService}
}

// Create handles POST /api/events (multipart, single image).
func (ctrl *EventController) Create(c *gin.Context) {
	var req dto.EventCreateRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(c, bindError(err))
		return
	}

	event, err := ctrl.eventService.Create(c.Request.Context(), &req, formFile(c, "event_img"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

// GetAll handles GET /api/events.
func (ctrl *EventController) GetAll(c *gin.Context) {
	events, err := ctrl.eventService.GetAll(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// GetByID handles GET /api/events/:id.
func (ctrl *EventController) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	event, err := ctrl.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// Update handles PUT /api/events/:id (multipart).
func (ctrl *EventController) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.EventUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(c, bindError(err))
		return
	}

	event, err := ctrl.eventService.Update(c.Request.Context(), id, &req, formFile(c, "event_img"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// Delete handles DELETE /api/events/:id.
func (ctrl *EventController) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	warnings, err := ctrl.eventService.Delete(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResponse{
		Message:  "Event deleted successfully",
		Warnings: warnings,
	})
}
