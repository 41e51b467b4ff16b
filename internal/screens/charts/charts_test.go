package charts

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pwmeter/internal/features"
	"github.com/abhisek/pwmeter/internal/router"
	"github.com/abhisek/pwmeter/internal/strength"
)

func testChartsScreen(password string, probs [3]float64) *ChartsScreen {
	res := strength.Result{
		Label:         strength.LabelMedium,
		Probabilities: probs,
		Features:      features.Extract(password),
	}
	return New(res, features.Criteria(password))
}

func TestProbabilityChart(t *testing.T) {
	c := testChartsScreen("abc", [3]float64{0.2, 0.5, 0.3})
	chart := c.ProbabilityChart(60)

	require.Len(t, chart.Bars, 3)
	assert.Equal(t, 1.0, chart.Max)
	assert.Equal(t, "Weak", chart.Bars[0].Label)
	assert.Equal(t, 0.5, chart.Bars[1].Value)
	assert.Equal(t, "Strong", chart.Bars[2].Label)
}

func TestCriteriaChart(t *testing.T) {
	c := testChartsScreen("abc1", [3]float64{1, 0, 0})
	chart := c.CriteriaChart(60)

	require.Len(t, chart.Bars, 3)
	assert.Equal(t, 1.0, chart.Bars[0].Value, "has digits")
	assert.Equal(t, 0.0, chart.Bars[1].Value, "has special symbols")
	assert.Equal(t, 0.0, chart.Bars[2].Value, "length >= 12")
}

func TestCharacterChartScale(t *testing.T) {
	short := testChartsScreen("Ab1!", [3]float64{1, 0, 0}).CharacterChart(60)
	assert.Equal(t, 12.0, short.Max)
	assert.Equal(t, 4.0, short.Bars[0].Value)
	for _, b := range short.Bars[1:] {
		assert.Equal(t, 1.0, b.Value, b.Label)
	}

	long := testChartsScreen("abcdefghijklmnopqrst", [3]float64{0, 0, 1}).CharacterChart(60)
	assert.Equal(t, 20.0, long.Max)
	assert.Equal(t, 0.0, long.Bars[1].Value, "no uppercase")
	assert.Equal(t, 1.0, long.Bars[2].Value, "lowercase")
}

func TestViewRendersAllCharts(t *testing.T) {
	view := testChartsScreen("hello", [3]float64{0.7, 0.2, 0.1}).View(80, 40)
	assert.Contains(t, view, "Password Strength Prediction Probabilities")
	assert.Contains(t, view, "Password Criteria Breakdown")
	assert.Contains(t, view, "Detailed Character Criteria Analysis")
}

func TestTabPops(t *testing.T) {
	c := testChartsScreen("x", [3]float64{1, 0, 0})
	_, cmd := c.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)

	_, cmd = c.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	assert.Nil(t, cmd)
}
