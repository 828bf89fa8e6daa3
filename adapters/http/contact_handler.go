package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	contactUC "github.com/khoahotran/portfolio/internal/application/usecase/contact"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type ContactHandler struct {
	sendContactUseCase *contactUC.SendContactUseCase
	logger             logger.Logger
}

func NewContactHandler(uc *contactUC.SendContactUseCase, log logger.Logger) *ContactHandler {
	return &ContactHandler{
		sendContactUseCase: uc,
		logger:             log,
	}
}

func (h *ContactHandler) Send(c *gin.Context) {
	var req SendContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewMissingFields("invalid contact form body", err))
		return
	}

	input := contactUC.SendContactInput{Message: req.ToDomainMessage()}
	if err := h.sendContactUseCase.Execute(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Email sent successfully"})
}
