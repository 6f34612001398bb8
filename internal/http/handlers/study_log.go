package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/studymood/studymood-backend/internal/http/response"
	"github.com/studymood/studymood-backend/internal/services"
)

type StudyLogHandler struct {
	studyLogService services.StudyLogService
}

func NewStudyLogHandler(studyLogService services.StudyLogService) *StudyLogHandler {
	return &StudyLogHandler{studyLogService: studyLogService}
}

func (sh *StudyLogHandler) List(c *gin.Context) {
	logs, err := sh.studyLogService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, logs)
}

func (sh *StudyLogHandler) Create(c *gin.Context) {
	var req services.CreateStudyLogInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	created, err := sh.studyLogService.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondCreated(c, created)
}

func (sh *StudyLogHandler) Delete(c *gin.Context) {
	logID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := sh.studyLogService.Delete(c.Request.Context(), logID); err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
