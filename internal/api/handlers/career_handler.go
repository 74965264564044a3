package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/careerpath/backend/internal/models"
	"github.com/careerpath/backend/internal/recommender"
	"github.com/careerpath/backend/internal/services"
	"github.com/careerpath/backend/internal/utils"
)

type CareerHandler struct {
	svc services.CareerService
}

func NewCareerHandler(svc services.CareerService) *CareerHandler {
	return &CareerHandler{svc: svc}
}

type RecommendRequest struct {
	Skills          string `json:"skills"`
	Interests       string `json:"interests"`
	ExperienceYears int    `json:"experience_years"`
	EducationLevel  string `json:"education_level"`
	Limit           int    `json:"limit,omitempty"`
}

type recommendationItem struct {
	models.Career
	MatchScore float64 `json:"match_score"`
}

func (h *CareerHandler) Recommend(c *gin.Context) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "CareerHandler.Recommend", "invalid request body", err))
		return
	}

	matches, err := h.svc.Recommend(c.Request.Context(), recommender.Query{
		Skills:          req.Skills,
		Interests:       req.Interests,
		ExperienceYears: req.ExperienceYears,
		EducationLevel:  req.EducationLevel,
	}, req.Limit, requestID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	items := make([]recommendationItem, len(matches))
	for i, m := range matches {
		items[i] = recommendationItem{Career: m.Career, MatchScore: m.Score}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":          "success",
		"recommendations": items,
	})
}

type SkillGapRequest struct {
	Skills         []string `json:"skills"`
	TargetCareerID int      `json:"target_career_id"`
}

func (h *CareerHandler) SkillGap(c *gin.Context) {
	var req SkillGapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "CareerHandler.SkillGap", "invalid request body", err))
		return
	}

	analysis, err := h.svc.SkillGap(c.Request.Context(), req.Skills, req.TargetCareerID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"analysis": analysis,
	})
}

func (h *CareerHandler) ListCareers(c *gin.Context) {
	careers, err := h.svc.ListCareers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"careers": careers,
	})
}

func (h *CareerHandler) GetCareer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("career_id"))
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "CareerHandler.GetCareer", "career_id must be an integer", err))
		return
	}

	career, err := h.svc.GetCareer(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"career": career,
	})
}

func (h *CareerHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "healthy",
		"message":       "Career Recommender API is running",
		"total_careers": h.svc.CatalogSize(c.Request.Context()),
	})
}
