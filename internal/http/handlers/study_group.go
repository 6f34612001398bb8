package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/studymood/studymood-backend/internal/http/response"
	"github.com/studymood/studymood-backend/internal/services"
)

type StudyGroupHandler struct {
	groupService services.StudyGroupService
}

func NewStudyGroupHandler(groupService services.StudyGroupService) *StudyGroupHandler {
	return &StudyGroupHandler{groupService: groupService}
}

func (gh *StudyGroupHandler) Create(c *gin.Context) {
	var req services.CreateStudyGroupInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	group, err := gh.groupService.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondCreated(c, group)
}

func (gh *StudyGroupHandler) List(c *gin.Context) {
	groups, err := gh.groupService.ListMine(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, groups)
}

func (gh *StudyGroupHandler) Get(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	detail, err := gh.groupService.Get(c.Request.Context(), groupID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, detail)
}

func (gh *StudyGroupHandler) Invite(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := gh.groupService.Invite(c.Request.Context(), groupID, req.Email); err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

func (gh *StudyGroupHandler) Leave(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := gh.groupService.Leave(c.Request.Context(), groupID); err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
