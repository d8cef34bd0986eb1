package hubspotdomain

type Owner struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	UserID    *int64 `json:"userId,omitempty"` // id legado, espaço de identificadores diferente
	Archived  bool   `json:"archived"`
}

type OwnersResponse struct {
	Results []Owner `json:"results"`
	Paging  *Paging `json:"paging,omitempty"`
}

type PipelineStage struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type Pipeline struct {
	ID     string          `json:"id"`
	Label  string          `json:"label"`
	Stages []PipelineStage `json:"stages"`
}

type PipelinesResponse struct {
	Results []Pipeline `json:"results"`
}

type Sequence struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type SequencesResponse struct {
	Results []Sequence `json:"results"`
	Paging  *Paging    `json:"paging,omitempty"`
}

// Engagement é a resposta do endpoint legado v1 de engagements
type Engagement struct {
	Engagement EngagementHeader `json:"engagement"`
	Metadata   map[string]any   `json:"metadata"`
}

type EngagementHeader struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}
