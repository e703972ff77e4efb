package dto

// ItemListRequest filters the item catalog listing.
type ItemListRequest struct {
	Search string `form:"search"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=1000"`
	Offset int    `form:"offset" binding:"omitempty,min=0"`
}

// Defaults sets default listing values.
func (r *ItemListRequest) Defaults() {
	if r.Limit == 0 {
		r.Limit = 100
	}
}

// ImportResultResponse reports the outcome of a catalog or count import.
type ImportResultResponse struct {
	Imported   int    `json:"imported"`
	Failed     int    `json:"failed"`
	FailureLog string `json:"failureLog,omitempty"`
}
