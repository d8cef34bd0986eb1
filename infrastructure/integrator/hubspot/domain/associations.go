package hubspotdomain

type BatchInput struct {
	ID string `json:"id"`
}

type BatchReadRequest struct {
	Inputs     []BatchInput `json:"inputs"`
	Properties []string     `json:"properties,omitempty"`
}

// AssociationResult é uma entrada do batch de associações v4
type AssociationResult struct {
	From AssociationEndpoint   `json:"from"`
	To   []AssociationEndpoint `json:"to"`
}

type AssociationEndpoint struct {
	ID         string `json:"id,omitempty"`
	ToObjectID int64  `json:"toObjectId,omitempty"`
}

type AssociationBatchResponse struct {
	Results []AssociationResult `json:"results"`
}

type BatchObjectResponse struct {
	Results []Object `json:"results"`
}

// LegacyEngagementAssociations é a resposta do endpoint v1 usado como
// fallback quando o batch v4 não devolve uma reunião.
type LegacyEngagementAssociations struct {
	Results []int64 `json:"results"`
	HasMore bool    `json:"hasMore"`
	Offset  int64   `json:"offset"`
}
