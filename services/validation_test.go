package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrewpaige1/panelverse-api/services"
	"github.com/andrewpaige1/panelverse-api/testutil"
)

func TestValidatePosition(t *testing.T) {
	tests := []struct {
		name    string
		points  []services.PointInput
		wantErr string
	}{
		{name: "triangle", points: testutil.Triangle()},
		{name: "zero coordinates allowed", points: []services.PointInput{testutil.Pt(0, 0), testutil.Pt(0, 0), testutil.Pt(0, 0)}},
		{name: "nil", points: nil, wantErr: "position is required"},
		{name: "two points", points: []services.PointInput{testutil.Pt(0, 0), testutil.Pt(1, 1)}, wantErr: "position must contain at least 3 entries"},
		{
			name:    "missing y",
			points:  []services.PointInput{testutil.Pt(0, 0), testutil.Pt(1, 1), {X: new(float64)}},
			wantErr: "position[2].y is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := services.ValidatePosition(tt.points)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, services.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidatePanelIndex(t *testing.T) {
	for _, i := range []int{0, 1, 2} {
		assert.NoError(t, services.ValidatePanelIndex(i))
	}
	for _, i := range []int{-1, 3} {
		assert.ErrorIs(t, services.ValidatePanelIndex(i), services.ErrValidation)
	}
}

func TestPointsPreservesCoordinates(t *testing.T) {
	points := services.Points([]services.PointInput{testutil.Pt(0.1, 2.5), testutil.Pt(-3, 1e-9), testutil.Pt(7, 7)})

	assert.Equal(t, 0.1, points[0].X)
	assert.Equal(t, 2.5, points[0].Y)
	assert.Equal(t, -3.0, points[1].X)
	assert.Equal(t, 1e-9, points[1].Y)
}
