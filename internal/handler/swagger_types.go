package handler

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// OfferRequest represents the create/update offer request body.
type OfferRequest struct {
	Fournisseur           *string  `json:"fournisseur" example:"ENGIE"`
	TypeContrat           *string  `json:"typeContrat" example:"Fixe 24 mois"`
	PrixMolecule          *float64 `json:"prixMolecule" example:"35.5"`
	CEE                   *float64 `json:"cee" example:"8.5"`
	Transport             *float64 `json:"transport" example:"8.69"`
	AbonnementF           *float64 `json:"abonnementF" example:"120"`
	Distribution          *float64 `json:"distribution" example:"5022.04"`
	TransportAnn          *float64 `json:"transportAnn" example:"1231.08"`
	CTA                   *float64 `json:"cta" example:"304.52"`
	TICGN                 *float64 `json:"ticgn" example:"17.16"`
	ConsommationReference *float64 `json:"consommationReference" example:"600"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status     string `json:"status" example:"ok"`
	Completion string `json:"completion,omitempty" example:"ok"`
	Error      string `json:"error,omitempty" example:"database not reachable"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"offer deleted"`
}

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
