package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/studymood/studymood-backend/internal/http/response"
	"github.com/studymood/studymood-backend/internal/pkg/ctxutil"
	"github.com/studymood/studymood-backend/internal/pkg/logger"
	"github.com/studymood/studymood-backend/internal/realtime"
	"github.com/studymood/studymood-backend/internal/services"
)

const streamHeartbeat = 25 * time.Second

type RealtimeHandler struct {
	log          *logger.Logger
	hub          *realtime.Hub
	groupService services.StudyGroupService
}

func NewRealtimeHandler(log *logger.Logger, hub *realtime.Hub, groupService services.StudyGroupService) *RealtimeHandler {
	return &RealtimeHandler{
		log:          log.With("handler", "RealtimeHandler"),
		hub:          hub,
		groupService: groupService,
	}
}

// GroupStream serves the live activity feed for one study group over SSE.
// The connection stays open until the client disconnects.
func (rh *RealtimeHandler) GroupStream(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := rh.groupService.EnsureMember(c.Request.Context(), groupID); err != nil {
		respondServiceError(c, err)
		return
	}

	client := rh.hub.NewClient(rd.UserID)
	rh.hub.Subscribe(client, realtime.GroupChannel(groupID))
	defer rh.hub.RemoveClient(client)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")
	c.Writer.Flush()

	rh.log.Info("activity stream open", "user_id", rd.UserID.String(), "group_id", groupID.String())

	heartbeat := time.NewTicker(streamHeartbeat)
	defer heartbeat.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case msg, ok := <-client.Outbound:
			if !ok {
				return false
			}
			c.SSEvent(string(msg.Event), msg.Data)
			return true
		case <-heartbeat.C:
			c.SSEvent("ping", time.Now().UTC().Format(time.RFC3339))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})

	rh.log.Info("activity stream closed", "user_id", rd.UserID.String(), "group_id", groupID.String())
}
