package http

import (
	"github.com/khoahotran/portfolio/internal/domain/contact"
	"github.com/khoahotran/portfolio/internal/domain/education"
	"github.com/khoahotran/portfolio/internal/domain/experience"
	"github.com/khoahotran/portfolio/internal/domain/skill"
)

// Experience DTOs

type ExperienceSummaryDTO struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Period      string `json:"period"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

type ExperienceDTO struct {
	Slug             string   `json:"slug"`
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	CompanyURL       *string  `json:"company_url,omitempty"`
	LocationsURL     *string  `json:"locations_url,omitempty"`
	Location         string   `json:"location"`
	Period           string   `json:"period"`
	CurrentPeriod    *string  `json:"current_period,omitempty"`
	Description      string   `json:"description"`
	Type             string   `json:"type"`
	Responsibilities []string `json:"responsibilities"`
	Technologies     []string `json:"technologies"`
}

func ToExperienceSummaryDTO(s experience.Summary) ExperienceSummaryDTO {
	return ExperienceSummaryDTO(s)
}

func ToExperienceDTO(e *experience.Experience) ExperienceDTO {
	dto := ExperienceDTO{
		Slug:             e.Slug,
		Title:            e.Title,
		Company:          e.Company,
		CompanyURL:       e.CompanyURL,
		LocationsURL:     e.LocationsURL,
		Location:         e.Location,
		Period:           e.Period,
		CurrentPeriod:    e.CurrentPeriod,
		Description:      e.Description,
		Type:             e.Type,
		Responsibilities: e.Responsibilities,
		Technologies:     e.Technologies,
	}
	if dto.Responsibilities == nil {
		dto.Responsibilities = []string{}
	}
	if dto.Technologies == nil {
		dto.Technologies = []string{}
	}
	return dto
}

// Education DTOs

type AchievementDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type StatDTO struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
}

type EducationDTO struct {
	Degree       string           `json:"degree"`
	Institution  string           `json:"institution"`
	Location     string           `json:"location"`
	Period       string           `json:"period"`
	Status       string           `json:"status"`
	GPA          string           `json:"gpa"`
	Description  string           `json:"description"`
	Achievements []AchievementDTO `json:"achievements"`
	Stats        []StatDTO        `json:"stats"`
}

func ToEducationDTO(e *education.Education) EducationDTO {
	dto := EducationDTO{
		Degree:      e.Degree,
		Institution: e.Institution,
		Location:    e.Location,
		Period:      e.Period,
		Status:      e.Status,
		GPA:         e.GPA,
		Description: e.Description,
	}
	dto.Achievements = make([]AchievementDTO, len(e.Achievements))
	for i, a := range e.Achievements {
		dto.Achievements[i] = AchievementDTO(a)
	}
	dto.Stats = make([]StatDTO, len(e.Stats))
	for i, s := range e.Stats {
		dto.Stats[i] = StatDTO(s)
	}
	return dto
}

// Skill DTOs

type SkillDTO struct {
	Name  string `json:"name"`
	Image string `json:"image"`
	Row   int    `json:"row"`
}

func ToSkillDTO(s skill.Skill) SkillDTO {
	return SkillDTO{Name: s.Name, Image: s.Image, Row: int(s.Row)}
}

// Contact DTOs

type SendContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (r *SendContactRequest) ToDomainMessage() contact.Message {
	return contact.Message{
		Name:    r.Name,
		Email:   r.Email,
		Subject: r.Subject,
		Message: r.Message,
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}
