package strength

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pwmeter/internal/model"
)

func TestLabelFromIndex(t *testing.T) {
	for i, want := range []Label{LabelWeak, LabelMedium, LabelStrong} {
		got, err := LabelFromIndex(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	for _, i := range []int{-1, 3, 42} {
		_, err := LabelFromIndex(i)
		assert.Error(t, err, "index %d", i)
	}
}

func TestLabel_MatchesArtifactClasses(t *testing.T) {
	require.Len(t, model.ClassNames, NumLabels)
	for i, name := range model.ClassNames {
		assert.Equal(t, name, Label(i).String())
	}
}

func TestLabel_MeterPercent(t *testing.T) {
	assert.Equal(t, 0.30, LabelWeak.MeterPercent())
	assert.Equal(t, 0.60, LabelMedium.MeterPercent())
	assert.Equal(t, 0.90, LabelStrong.MeterPercent())
}

func TestLabel_StringUnknown(t *testing.T) {
	assert.Equal(t, "Label(7)", Label(7).String())
}

func TestSuggestions(t *testing.T) {
	assert.Contains(t, Suggestions(LabelWeak), "at least 12 characters")
	assert.Contains(t, Suggestions(LabelMedium), "more than 12 characters")
	assert.Contains(t, Suggestions(LabelStrong), "avoid reusing passwords")
}

func TestValidatePassword(t *testing.T) {
	assert.ErrorIs(t, ValidatePassword(""), ErrEmptyPassword)
	assert.NoError(t, ValidatePassword(" "))
}

func TestResult_ProbabilityOutOfRange(t *testing.T) {
	r := Result{Probabilities: [NumLabels]float64{0.2, 0.3, 0.5}}
	assert.Equal(t, 0.5, r.Probability(LabelStrong))
	assert.Equal(t, 0.0, r.Probability(Label(9)))
}
