package goal

import (
	"testing"

	"nutritrack/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggest(t *testing.T) {
	base := BodyProfile{Sex: SexMale, Age: 30, HeightCM: 180, WeightKG: 80, GoalWeightKG: 80, Activity: ActivityModerate}

	tests := []struct {
		name    string
		mutate  func(p *BodyProfile)
		want    entity.Nutrients
		wantErr bool
	}{
		{
			name:   "maintain weight",
			mutate: func(*BodyProfile) {},
			want:   entity.Nutrients{Calories: 2759, Protein: 207, Carbs: 276, Fat: 92},
		},
		{
			name:   "lose weight",
			mutate: func(p *BodyProfile) { p.GoalWeightKG = 75 },
			want:   entity.Nutrients{Calories: 2459, Protein: 246, Carbs: 184, Fat: 82},
		},
		{
			name:   "gain weight",
			mutate: func(p *BodyProfile) { p.GoalWeightKG = 85 },
			want:   entity.Nutrients{Calories: 3059, Protein: 268, Carbs: 344, Fat: 68},
		},
		{
			name:    "unknown activity level",
			mutate:  func(p *BodyProfile) { p.Activity = "couch" },
			wantErr: true,
		},
		{
			name:    "non-positive weight",
			mutate:  func(p *BodyProfile) { p.WeightKG = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			tt.mutate(&p)

			got, err := Suggest(p)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidBodyProfile)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
