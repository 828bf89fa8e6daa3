package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	educationUC "github.com/khoahotran/portfolio/internal/application/usecase/education"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type EducationHandler struct {
	educationUseCase *educationUC.EducationUseCase
	logger           logger.Logger
}

func NewEducationHandler(uc *educationUC.EducationUseCase, log logger.Logger) *EducationHandler {
	return &EducationHandler{
		educationUseCase: uc,
		logger:           log,
	}
}

func (h *EducationHandler) GetEducation(c *gin.Context) {
	output, err := h.educationUseCase.ExecuteGetEducation(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToEducationDTO(output.Education))
}
