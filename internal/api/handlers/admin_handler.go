package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/careerpath/backend/internal/services"
	"github.com/careerpath/backend/internal/utils"
)

type AdminHandler struct {
	svc services.ModelService
}

func NewAdminHandler(svc services.ModelService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) Refit(c *gin.Context) {
	careers, err := h.svc.Refit(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"careers": careers,
	})
}

func (h *AdminHandler) Snapshot(c *gin.Context) {
	info, err := h.svc.Snapshot(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"snapshot": info,
	})
}

type RestoreRequest struct {
	Name string `json:"name,omitempty"`
}

func (h *AdminHandler) Restore(c *gin.Context) {
	// Body is optional: no name means the latest persisted snapshot.
	var req RestoreRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, utils.E(utils.CodeInvalidArgument, "AdminHandler.Restore", "invalid request body", err))
			return
		}
	}

	info, err := h.svc.Restore(c.Request.Context(), req.Name)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"snapshot": info,
	})
}

func (h *AdminHandler) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	entries, err := h.svc.History(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"history": entries,
	})
}
