package handlers

import (
	"fmt"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/crewdeck-dev/crewdeck/internal/service"
	"github.com/crewdeck-dev/crewdeck/internal/storage"
)

type MemberHandler struct {
	service *service.MemberService
	storage *storage.ObjectStorage // nil when avatar storage is not configured
}

func NewMemberHandler(service *service.MemberService, storage *storage.ObjectStorage) *MemberHandler {
	return &MemberHandler{service: service, storage: storage}
}

func (h *MemberHandler) List(ctx *gin.Context) {
	members, err := h.service.List(ctx.Request.Context())

	if err != nil {
		respondError(ctx, err, "Failed to fetch members")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "members": members})
}

func (h *MemberHandler) Create(ctx *gin.Context) {
	var in service.CreateMemberInput

	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request"})
		return
	}

	member, err := h.service.Create(ctx.Request.Context(), in)

	if err != nil {
		respondError(ctx, err, "Failed to create member")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Member created successfully",
		"member":  member,
	})
}

func (h *MemberHandler) Get(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Member not found"})
		return
	}

	member, err := h.service.Get(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err, "Failed to fetch member")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "member": member})
}

func (h *MemberHandler) Update(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Member not found"})
		return
	}

	var in service.UpdateMemberInput

	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request"})
		return
	}

	member, err := h.service.Update(ctx.Request.Context(), id, in)

	if err != nil {
		respondError(ctx, err, "Failed to update member")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Member updated successfully",
		"member":  member,
	})
}

func (h *MemberHandler) Delete(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Member not found"})
		return
	}

	if err := h.service.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err, "Failed to delete member")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Member deleted successfully"})
}

func (h *MemberHandler) UploadAvatar(ctx *gin.Context) {
	if h.storage == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "Avatar storage is not configured"})
		return
	}

	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Member not found"})
		return
	}

	header, err := ctx.FormFile("avatar")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Avatar file is required"})
		return
	}

	file, err := header.Open()

	if err != nil {
		respondError(ctx, err, "Failed to upload avatar")
		return
	}

	defer file.Close()

	key := fmt.Sprintf("avatars/%s%s", id.Hex(), path.Ext(header.Filename))
	contentType := header.Header.Get("Content-Type")

	url, err := h.storage.UploadObject(ctx.Request.Context(), key, contentType, file)

	if err != nil {
		respondError(ctx, err, "Failed to upload avatar")
		return
	}

	member, err := h.service.SetAvatar(ctx.Request.Context(), id, url)

	if err != nil {
		respondError(ctx, err, "Failed to upload avatar")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Avatar uploaded successfully",
		"member":  member,
	})
}
