package experience

import "context"

// Experience is the canonical record. The list view is a projection of it,
// see Summary.
type Experience struct {
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

type Summary struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Period      string `json:"period"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

func (e *Experience) Summary() Summary {
	return Summary{
		Slug:        e.Slug,
		Title:       e.Title,
		Company:     e.Company,
		Location:    e.Location,
		Period:      e.Period,
		Description: e.Description,
		Type:        e.Type,
	}
}

type Repository interface {
	// List returns every experience in table order.
	List(ctx context.Context) ([]*Experience, error)
	// FindBySlug matches slug exactly (case-sensitive).
	FindBySlug(ctx context.Context, slug string) (*Experience, error)
}
