package checker

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pwmeter/internal/model"
	"github.com/abhisek/pwmeter/internal/router"
	"github.com/abhisek/pwmeter/internal/screen"
	"github.com/abhisek/pwmeter/internal/screens/charts"
	"github.com/abhisek/pwmeter/internal/strength"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testScreen(probs ...float64) (*CheckerScreen, *model.Stub) {
	stub := model.NewStub(probs...)
	return New(strength.NewHandle(stub)), stub
}

func TestEnterOnEmptyInputWarns(t *testing.T) {
	s, stub := testScreen(0.1, 0.2, 0.7)

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	assert.Nil(t, cmd)

	cs := scr.(*CheckerScreen)
	assert.Equal(t, emptyWarning, cs.warning)
	assert.Nil(t, cs.Result())
	assert.Equal(t, 0, stub.CallCount(), "classifier must not run on empty input")
	assert.Contains(t, cs.View(80, 30), emptyWarning)
}

func TestEnterShowsVerdict(t *testing.T) {
	s, _ := testScreen(0.1, 0.2, 0.7)
	s.input.Model.SetValue("Tr0ub4dor&3x!")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	cs := scr.(*CheckerScreen)

	require.NotNil(t, cs.Result())
	assert.Equal(t, strength.LabelStrong, cs.Result().Label)
	assert.Empty(t, cs.warning)

	view := cs.View(80, 30)
	assert.Contains(t, view, "Password Strength: Strong")
	assert.Contains(t, view, "Your password is strong")
}

func TestClassifierErrorIsShown(t *testing.T) {
	s, stub := testScreen(0.1, 0.2, 0.7)
	stub.Err = errors.New("boom")
	s.input.Model.SetValue("secret")

	s.Update(specialKey(tea.KeyEnter))
	assert.Nil(t, s.Result())
	require.Error(t, s.err)
	assert.Contains(t, s.View(80, 30), "boom")
}

func TestChecklistTracksInput(t *testing.T) {
	s, _ := testScreen(1, 0, 0)
	assert.Equal(t, 0, s.checklist.MetCount())

	s.input.Model.SetValue("Abc1")
	s.Update(keyPress('!'))

	assert.True(t, s.checklist.Uppercase)
	assert.True(t, s.checklist.Lowercase)
	assert.True(t, s.checklist.Digit)
	assert.False(t, s.checklist.MinLength)
}

func TestCtrlTTogglesReveal(t *testing.T) {
	s, _ := testScreen(1, 0, 0)
	assert.False(t, s.input.Revealed())

	ctrlT := tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl}
	s.Update(ctrlT)
	assert.True(t, s.input.Revealed())
	assert.Equal(t, "Hide", s.KeyHints()[1].Description)

	s.Update(ctrlT)
	assert.False(t, s.input.Revealed())
}

func TestTabPushesChartsOnlyAfterCheck(t *testing.T) {
	s, _ := testScreen(0.6, 0.3, 0.1)

	_, cmd := s.Update(specialKey(tea.KeyTab))
	assert.Nil(t, cmd, "no charts before the first check")

	s.input.Model.SetValue("password")
	s.Update(specialKey(tea.KeyEnter))

	_, cmd = s.Update(specialKey(tea.KeyTab))
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	_, ok = push.Screen.(*charts.ChartsScreen)
	assert.True(t, ok)
}

func TestKeyHintsAdvertiseCharts(t *testing.T) {
	s, _ := testScreen(0.6, 0.3, 0.1)
	for _, h := range s.KeyHints() {
		assert.NotEqual(t, "Tab", h.Key)
	}

	s.input.Model.SetValue("password")
	s.Update(specialKey(tea.KeyEnter))

	var keys []string
	for _, h := range s.KeyHints() {
		keys = append(keys, h.Key)
	}
	assert.True(t, strings.Contains(strings.Join(keys, " "), "Tab"))
}

func TestLabelColor(t *testing.T) {
	assert.NotEqual(t, LabelColor(strength.LabelWeak), LabelColor(strength.LabelStrong))
	assert.NotEqual(t, LabelColor(strength.LabelMedium), LabelColor(strength.LabelStrong))
}

func TestChartsUseCheckedPasswordAfterEdit(t *testing.T) {
	s, _ := testScreen(0.1, 0.2, 0.7)
	s.input.Model.SetValue("ABC1!")
	s.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, s.Result())

	s.Update(keyPress('x'))
	assert.True(t, s.checklist.Lowercase, "live checklist follows the input")

	_, cmd := s.Update(specialKey(tea.KeyTab))
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	cs, ok := push.Screen.(*charts.ChartsScreen)
	require.True(t, ok)

	chart := cs.CharacterChart(60)
	assert.Equal(t, 5.0, chart.Bars[0].Value, "length")
	assert.Equal(t, 1.0, chart.Bars[1].Value, "uppercase")
	assert.Equal(t, 0.0, chart.Bars[2].Value, "lowercase belongs to the edit, not the checked password")
}

func TestLongPasswordIsNotTruncated(t *testing.T) {
	s, _ := testScreen(0.1, 0.2, 0.7)
	for range 300 {
		s.Update(keyPress('a'))
	}
	s.Update(specialKey(tea.KeyEnter))

	require.NotNil(t, s.Result())
	assert.Equal(t, 300, s.Result().Features.Length)
}
