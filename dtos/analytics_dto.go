package dtos

type AnalyticsEventRequest struct {
	ClientID string         `json:"clientId" validate:"omitempty,max=128"`
	Name     string         `json:"name" validate:"required,max=40"`
	Params   map[string]any `json:"params" validate:"max=25"`
}

type TransitionRequest struct {
	From          string `query:"from" validate:"max=2048"`
	To            string `query:"to" validate:"required,max=2048"`
	ReducedMotion bool   `query:"reducedMotion"`
}

type TransitionResponse struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Transition string `json:"transition"`
}
