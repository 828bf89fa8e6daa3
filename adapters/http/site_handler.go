package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	skillUC "github.com/khoahotran/portfolio/internal/application/usecase/skill"
	"github.com/khoahotran/portfolio/internal/domain/site"
)

type SiteHandler struct {
	listSkillsUseCase *skillUC.ListSkillsUseCase
	manifest          site.Manifest
}

func NewSiteHandler(listSkillsUC *skillUC.ListSkillsUseCase, manifest site.Manifest) *SiteHandler {
	return &SiteHandler{listSkillsUseCase: listSkillsUC, manifest: manifest}
}

func (h *SiteHandler) ListSkills(c *gin.Context) {
	output, err := h.listSkillsUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	dtos := make([]SkillDTO, len(output.Skills))
	for i, s := range output.Skills {
		dtos[i] = ToSkillDTO(s)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *SiteHandler) GetManifest(c *gin.Context) {
	c.Header("Content-Type", "application/manifest+json; charset=utf-8")
	c.JSON(http.StatusOK, h.manifest)
}
