package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"socialstream/internal/http/dto"
	"socialstream/internal/http/resp"
)

func (h *Handler) FollowUser(c *gin.Context) {
	actor, ok := h.caller(c)
	if !ok {
		return
	}
	targetID := c.Param("userId")
	if err := h.social.Follow(c.Request.Context(), actor.UserID, targetID); err != nil {
		h.writeError(c, err, "failed to follow user", zap.String("target_id", targetID))
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Code: "ok", Message: "User followed successfully"})
}

func (h *Handler) UnfollowUser(c *gin.Context) {
	actor, ok := h.caller(c)
	if !ok {
		return
	}
	targetID := c.Param("userId")
	if err := h.social.Unfollow(c.Request.Context(), actor.UserID, targetID); err != nil {
		h.writeError(c, err, "failed to unfollow user", zap.String("target_id", targetID))
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Code: "ok", Message: "User unfollowed successfully"})
}

func (h *Handler) IsFollowing(c *gin.Context) {
	actor, ok := h.caller(c)
	if !ok {
		return
	}
	following, err := h.social.IsFollowing(c.Request.Context(), actor.UserID, c.Param("userId"))
	if err != nil {
		h.writeError(c, err, "failed to check follow state", zap.String("target_id", c.Param("userId")))
		return
	}
	c.JSON(http.StatusOK, dto.IsFollowingResponse{IsFollowing: following})
}

func (h *Handler) ListFollowers(c *gin.Context) {
	followers, err := h.social.Followers(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.writeError(c, err, "failed to list followers", zap.String("user_id", c.Param("userId")))
		return
	}
	c.JSON(http.StatusOK, followers)
}

func (h *Handler) ListFollowing(c *gin.Context) {
	following, err := h.social.Following(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.writeError(c, err, "failed to list following", zap.String("user_id", c.Param("userId")))
		return
	}
	c.JSON(http.StatusOK, following)
}

func (h *Handler) GetProfile(c *gin.Context) {
	actor, ok := h.caller(c)
	if !ok {
		return
	}
	profile, err := h.social.Profile(c.Request.Context(), actor.UserID)
	if err != nil {
		h.writeError(c, err, "failed to load profile", zap.String("user_id", actor.UserID))
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *Handler) GetProfileByUsername(c *gin.Context) {
	profile, err := h.social.ProfileByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.writeError(c, err, "failed to load profile", zap.String("username", c.Param("username")))
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	actor, ok := h.caller(c)
	if !ok {
		return
	}
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: resp.CodeBadRequest, Message: "invalid json"})
		return
	}
	user, err := h.social.UpdateProfile(c.Request.Context(), actor.UserID, req.Bio, req.ProfilePicture)
	if err != nil {
		h.writeError(c, err, "failed to update profile", zap.String("user_id", actor.UserID))
		return
	}
	c.JSON(http.StatusOK, user)
}
