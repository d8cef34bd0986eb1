package hubspotdomain

// Tipos de objeto da API do HubSpot usados pelo sistema
const (
	ObjectTypeDeal    = "deals"
	ObjectTypeMeeting = "meetings"
	ObjectTypeContact = "contacts"
	ObjectTypeCall    = "calls"
	ObjectTypeEmail   = "emails"
)

// Operadores aceitos pela API de busca
const (
	OperatorEQ  = "EQ"
	OperatorIN  = "IN"
	OperatorGTE = "GTE"
	OperatorLTE = "LTE"
)

type Filter struct {
	PropertyName string   `json:"propertyName"`
	Operator     string   `json:"operator"`
	Value        string   `json:"value,omitempty"`
	Values       []string `json:"values,omitempty"`
}

type FilterGroup struct {
	Filters []Filter `json:"filters"`
}

type SearchRequest struct {
	FilterGroups []FilterGroup `json:"filterGroups,omitempty"`
	Properties   []string      `json:"properties,omitempty"`
	Limit        int           `json:"limit"`
	After        string        `json:"after,omitempty"`
}

// Object é um objeto genérico do CRM: id + mapa de propriedades string
type Object struct {
	ID         string            `json:"id"`
	Properties map[string]string `json:"properties"`
}

type Paging struct {
	Next *PagingNext `json:"next,omitempty"`
}

type PagingNext struct {
	After string `json:"after"`
}

type SearchResponse struct {
	Total   int      `json:"total"`
	Results []Object `json:"results"`
	Paging  *Paging  `json:"paging,omitempty"`
}

type ListResponse struct {
	Results []Object `json:"results"`
	Paging  *Paging  `json:"paging,omitempty"`
}

// Property devolve uma propriedade do objeto, vazia quando ausente
func (o Object) Property(name string) string {
	if o.Properties == nil {
		return ""
	}

	return o.Properties[name]
}
