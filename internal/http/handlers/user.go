package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studymood/studymood-backend/internal/http/response"
	"github.com/studymood/studymood-backend/internal/services"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (uh *UserHandler) GetProfile(c *gin.Context) {
	user, err := uh.userService.GetProfile(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, user)
}

func (uh *UserHandler) UpdateFavorites(c *gin.Context) {
	var req struct {
		FavoriteSubjects []string `json:"favorite_subjects"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	subjects, err := uh.userService.UpdateFavoriteSubjects(c.Request.Context(), req.FavoriteSubjects)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"favorite_subjects": subjects})
}

func (uh *UserHandler) ToggleFavorite(c *gin.Context) {
	subject := c.Param("subject")
	subjects, err := uh.userService.ToggleFavoriteSubject(c.Request.Context(), subject)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"favorite_subjects": subjects})
}
