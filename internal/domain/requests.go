package domain

// GenerateIMEIRequest represents a generate IMEI request. Both fields are
// optional; model is accepted for compatibility and ignored.
type GenerateIMEIRequest struct {
	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
}

// GenerateICCIDRequest represents a generate ICCID request.
type GenerateICCIDRequest struct {
	Provider string `json:"provider"`
}

// BatchRequest represents a batch generation or export request.
type BatchRequest struct {
	Count *int `json:"count" binding:"required"`
}

// ListBatchesRequest represents a list batches request.
type ListBatchesRequest struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

// IdentifierResponse wraps a single generated identifier.
type IdentifierResponse struct {
	ID string `json:"id"`
}

// BatchResponse wraps an unexported batch.
type BatchResponse struct {
	Count int      `json:"count"`
	IDs   []string `json:"ids"`
}

// ValidateResponse reports a validation outcome.
type ValidateResponse struct {
	ID     string `json:"id"`
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}
