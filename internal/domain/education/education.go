package education

import "context"

type Achievement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
}

type Education struct {
	Degree       string        `json:"degree"`
	Institution  string        `json:"institution"`
	Location     string        `json:"location"`
	Period       string        `json:"period"`
	Status       string        `json:"status"`
	GPA          string        `json:"gpa"`
	Description  string        `json:"description"`
	Achievements []Achievement `json:"achievements"`
	Stats        []Stat        `json:"stats"`
}

type Repository interface {
	Get(ctx context.Context) (*Education, error)
}
