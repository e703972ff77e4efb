package dto

import (
	"time"

	"stocktally/internal/domain/counts"
)

// SubmitCountRequest is the request body for recording one count.
type SubmitCountRequest struct {
	CounterName string `json:"counterName" binding:"required"`
	Code        string `json:"code" binding:"required"`
	DepositID   int64  `json:"depositId" binding:"required"`
	RackID      int64  `json:"rackId" binding:"required"`

	BoxQty     int `json:"boxQty"`
	BoxUnitQty int `json:"boxUnitQty"`
	Magazijn   int `json:"magazijn"`
	Winkel     int `json:"winkel"`

	// CountDate in YYYY-MM-DD; empty means today.
	CountDate string `json:"countDate"`
	Remarks   string `json:"remarks"`

	// AllowDuplicate records a deliberate re-count of an already counted code.
	AllowDuplicate bool `json:"allowDuplicate"`
}

// ToInput converts the request to a service input.
func (r *SubmitCountRequest) ToInput() (counts.SubmitInput, error) {
	in := counts.SubmitInput{
		CounterName: r.CounterName,
		Code:        r.Code,
		DepositID:   r.DepositID,
		RackID:      r.RackID,
		Quantities: counts.Quantities{
			BoxQty:     r.BoxQty,
			BoxUnitQty: r.BoxUnitQty,
			Magazijn:   r.Magazijn,
			Winkel:     r.Winkel,
		},
		Remarks:        r.Remarks,
		AllowDuplicate: r.AllowDuplicate,
	}
	if r.CountDate != "" {
		d, err := time.Parse("2006-01-02", r.CountDate)
		if err != nil {
			return counts.SubmitInput{}, err
		}
		in.CountDate = d
	}
	return in, nil
}

// UpdateCountRequest is the request body for editing a ledger row.
type UpdateCountRequest struct {
	BoxQty     int `json:"boxQty"`
	BoxUnitQty int `json:"boxUnitQty"`
	Magazijn   int `json:"magazijn"`
	Winkel     int `json:"winkel"`

	CounterName *string `json:"counterName"`
	Remarks     *string `json:"remarks"`
	CountDate   *string `json:"countDate"`
}

// ToInput converts the request to a service input.
func (r *UpdateCountRequest) ToInput() (counts.UpdateInput, error) {
	in := counts.UpdateInput{
		Quantities: counts.Quantities{
			BoxQty:     r.BoxQty,
			BoxUnitQty: r.BoxUnitQty,
			Magazijn:   r.Magazijn,
			Winkel:     r.Winkel,
		},
		CounterName: r.CounterName,
		Remarks:     r.Remarks,
	}
	if r.CountDate != nil && *r.CountDate != "" {
		d, err := time.Parse("2006-01-02", *r.CountDate)
		if err != nil {
			return counts.UpdateInput{}, err
		}
		in.CountDate = &d
	}
	return in, nil
}

// CountListRequest filters ledger listings.
type CountListRequest struct {
	Code        string `form:"code"`
	CounterName string `form:"counterName"`
	DepositID   *int64 `form:"depositId"`
	RackID      *int64 `form:"rackId"`
	Limit       int    `form:"limit" binding:"omitempty,min=1,max=1000"`
	Offset      int    `form:"offset" binding:"omitempty,min=0"`
}

// ToFilter converts the request to a repository filter.
func (r *CountListRequest) ToFilter() counts.ListFilter {
	limit := r.Limit
	if limit == 0 {
		limit = 100
	}
	return counts.ListFilter{
		CodeItem:    r.Code,
		CounterName: r.CounterName,
		DepositID:   r.DepositID,
		RackID:      r.RackID,
		Limit:       limit,
		Offset:      r.Offset,
	}
}

// RebuildSummaryRequest controls the summary rebuild.
type RebuildSummaryRequest struct {
	// Clear wipes previous summary rows before aggregating. Without it the
	// insert is additive.
	Clear bool `json:"clear"`
}

// RebuildSummaryResponse reports rebuild results.
type RebuildSummaryResponse struct {
	Rows    int  `json:"rows"`
	Cleared bool `json:"cleared"`
}
