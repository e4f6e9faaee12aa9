package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/crewdeck-dev/crewdeck/internal/service"
)

type ProjectHandler struct {
	service *service.ProjectService
}

func NewProjectHandler(service *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

func (h *ProjectHandler) List(ctx *gin.Context) {
	projects, err := h.service.List(ctx.Request.Context())

	if err != nil {
		respondError(ctx, err, "Failed to fetch projects")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "projects": projects})
}

func (h *ProjectHandler) Create(ctx *gin.Context) {
	var in service.CreateProjectInput

	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request"})
		return
	}

	project, err := h.service.Create(ctx.Request.Context(), in)

	if err != nil {
		respondError(ctx, err, "Failed to create project")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Project created successfully",
		"project": project,
	})
}

func (h *ProjectHandler) Get(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Project not found"})
		return
	}

	project, err := h.service.Get(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err, "Failed to fetch project")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "project": project})
}

func (h *ProjectHandler) Update(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Project not found"})
		return
	}

	var in service.UpdateProjectInput

	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request"})
		return
	}

	project, err := h.service.Update(ctx.Request.Context(), id, in)

	if err != nil {
		respondError(ctx, err, "Failed to update project")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Project updated successfully",
		"project": project,
	})
}

func (h *ProjectHandler) Delete(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Project not found"})
		return
	}

	if err := h.service.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err, "Failed to delete project")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Project deleted successfully"})
}
