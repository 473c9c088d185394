package handlers

import (
	"net/http"

	"eventhub-backend/store"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	comments *store.CommentStore
}

func NewCommentHandler(comments *store.CommentStore) *CommentHandler {
	return &CommentHandler{comments: comments}
}

type AddCommentRequest struct {
	Comment string `json:"comment" binding:"required"`
}

func (h *CommentHandler) Add(c *gin.Context) {
	userID, _, ok := actorFromContext(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var body AddCommentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "comment required")
		return
	}

	comment, err := h.comments.Add(c.Request.Context(), eventID, userID, body.Comment)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *CommentHandler) List(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}

	comments, err := h.comments.ListByEvent(c.Request.Context(), eventID)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}
