package counts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stocktally/internal/core/apperror"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name             string
		quantities       Quantities
		currentInventory int
		want             Derived
	}{
		{
			name:             "boxes plus loose units",
			quantities:       Quantities{BoxQty: 2, BoxUnitQty: 10, Magazijn: 3, Winkel: 1},
			currentInventory: 50,
			want:             Derived{BoxUnitTotal: 20, Total: 24, Difference: -26},
		},
		{
			name:             "all zero",
			quantities:       Quantities{},
			currentInventory: 0,
			want:             Derived{},
		},
		{
			name:             "zero inventory shows surplus",
			quantities:       Quantities{BoxQty: 1, BoxUnitQty: 6, Magazijn: 4},
			currentInventory: 0,
			want:             Derived{BoxUnitTotal: 6, Total: 10, Difference: 10},
		},
		{
			name:             "exact match",
			quantities:       Quantities{Magazijn: 7, Winkel: 3},
			currentInventory: 10,
			want:             Derived{BoxUnitTotal: 0, Total: 10, Difference: 0},
		},
		{
			name:             "boxes without unit size contribute nothing",
			quantities:       Quantities{BoxQty: 5, Winkel: 2},
			currentInventory: 1,
			want:             Derived{BoxUnitTotal: 0, Total: 2, Difference: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.quantities, tt.currentInventory)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuantitiesValidate(t *testing.T) {
	tests := []struct {
		name       string
		quantities Quantities
		wantField  string
	}{
		{name: "all zero ok", quantities: Quantities{}},
		{name: "positive ok", quantities: Quantities{BoxQty: 1, BoxUnitQty: 2, Magazijn: 3, Winkel: 4}},
		{name: "negative boxqty", quantities: Quantities{BoxQty: -1}, wantField: "boxQty"},
		{name: "negative boxunitqty", quantities: Quantities{BoxUnitQty: -5}, wantField: "boxUnitQty"},
		{name: "negative magazijn", quantities: Quantities{Magazijn: -2}, wantField: "magazijn"},
		{name: "negative winkel", quantities: Quantities{Winkel: -9}, wantField: "winkel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.quantities.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			appErr, ok := apperror.AsAppError(err)
			assert.True(t, ok)
			assert.Equal(t, apperror.CodeInvalidQuantity, appErr.Code)
			assert.Equal(t, tt.wantField, appErr.Details["field"])
		})
	}
}

func TestApplySnapshotsInventory(t *testing.T) {
	c := &Count{CodeItem: "0123"}
	c.apply(Quantities{BoxQty: 2, BoxUnitQty: 10, Magazijn: 3, Winkel: 1}, 50)

	assert.Equal(t, 20, c.BoxUnitTotal)
	assert.Equal(t, 24, c.Total)
	assert.Equal(t, 50, c.CurrentInventory)
	assert.Equal(t, -26, c.Difference)
}
