package skill

import "context"

type Row int

const (
	RowDesign Row = iota + 1
	RowDevelopment
)

type Skill struct {
	Name  string `json:"name"`
	Image string `json:"image"`
	Row   Row    `json:"row"`
}

type Repository interface {
	List(ctx context.Context) ([]Skill, error)
}
