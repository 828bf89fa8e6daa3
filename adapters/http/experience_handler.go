package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	experienceUC "github.com/khoahotran/portfolio/internal/application/usecase/experience"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type ExperienceHandler struct {
	listExperiencesUseCase *experienceUC.ListExperiencesUseCase
	getExperienceUseCase   *experienceUC.GetExperienceUseCase
	logger                 logger.Logger
}

func NewExperienceHandler(
	listUC *experienceUC.ListExperiencesUseCase,
	getUC *experienceUC.GetExperienceUseCase,
	log logger.Logger,
) *ExperienceHandler {
	return &ExperienceHandler{
		listExperiencesUseCase: listUC,
		getExperienceUseCase:   getUC,
		logger:                 log,
	}
}

func (h *ExperienceHandler) ListExperiences(c *gin.Context) {
	output, err := h.listExperiencesUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	dtos := make([]ExperienceSummaryDTO, len(output.Experiences))
	for i, s := range output.Experiences {
		dtos[i] = ToExperienceSummaryDTO(s)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *ExperienceHandler) GetExperience(c *gin.Context) {
	input := experienceUC.GetExperienceInput{Slug: c.Param("slug")}
	output, err := h.getExperienceUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToExperienceDTO(output.Experience))
}
