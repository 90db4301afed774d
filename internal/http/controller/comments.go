package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"socialstream/internal/http/dto"
	"socialstream/internal/http/resp"
)

func (h *Handler) CreateComment(c *gin.Context) {
	actor, ok := h.caller(c)
	if !ok {
		return
	}
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: resp.CodeBadRequest, Message: "invalid json"})
		return
	}
	created, err := h.comments.Create(c.Request.Context(), actor, req.Content)
	if err != nil {
		h.writeError(c, err, "failed to create comment", zap.String("author_id", actor.UserID))
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) ReplyToComment(c *gin.Context) {
	actor, ok := h.caller(c)
	if !ok {
		return
	}
	var req dto.ReplyCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: resp.CodeBadRequest, Message: "invalid json"})
		return
	}
	if req.ParentCommentID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: resp.CodeBadRequest, Message: "parentCommentId is required"})
		return
	}
	reply, err := h.comments.Reply(c.Request.Context(), actor, req.ParentCommentID, req.Content)
	if err != nil {
		h.writeError(c, err, "failed to create reply", zap.String("parent_id", req.ParentCommentID))
		return
	}
	c.JSON(http.StatusCreated, reply)
}

func (h *Handler) ListComments(c *gin.Context) {
	result, err := h.comments.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "failed to list comments")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetComment(c *gin.Context) {
	comment, err := h.comments.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "failed to get comment", zap.String("comment_id", c.Param("id")))
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (h *Handler) LikeComment(c *gin.Context) {
	actor, ok := h.caller(c)
	if !ok {
		return
	}
	result, err := h.comments.ToggleLike(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		h.writeError(c, err, "failed to toggle like", zap.String("comment_id", c.Param("id")))
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetCommentLikes(c *gin.Context) {
	likes, err := h.comments.Likes(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "failed to list likes", zap.String("comment_id", c.Param("id")))
		return
	}
	c.JSON(http.StatusOK, likes)
}

func (h *Handler) ListLikedComments(c *gin.Context) {
	actor, ok := h.caller(c)
	if !ok {
		return
	}
	result, err := h.comments.ListLiked(c.Request.Context(), actor.UserID)
	if err != nil {
		h.writeError(c, err, "failed to list liked comments", zap.String("user_id", actor.UserID))
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) UpdateComment(c *gin.Context) {
	actor, ok := h.caller(c)
	if !ok {
		return
	}
	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: resp.CodeBadRequest, Message: "invalid json"})
		return
	}
	updated, err := h.comments.Update(c.Request.Context(), actor, c.Param("id"), req.Content)
	if err != nil {
		h.writeError(c, err, "failed to update comment", zap.String("comment_id", c.Param("id")))
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteComment(c *gin.Context) {
	actor, ok := h.caller(c)
	if !ok {
		return
	}
	if err := h.comments.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		h.writeError(c, err, "failed to delete comment", zap.String("comment_id", c.Param("id")))
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Code: "deleted", Message: "Comment deleted successfully"})
}
