package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drivenext/drivenext/internal/constants"
)

func pressed(b constants.VirtualButton) inputEvent {
	return inputEvent{button: b, pressed: true}
}

func TestFormEditsTextFields(t *testing.T) {
	name := &field{kind: fieldText, label: "name"}
	f := &formScreen{fields: []*field{name, {kind: fieldButton, action: actionSubmit}}}

	assert.True(t, f.handle(pressed(constants.VirtualButtonA)))
	assert.Same(t, name, f.editing)
}

func TestFormDisabledButton(t *testing.T) {
	ready := false
	f := &formScreen{fields: []*field{
		{kind: fieldText},
		{kind: fieldButton, action: actionSubmit, enabled: func() bool { return ready }},
	}}

	f.handle(pressed(constants.VirtualButtonDown))
	assert.False(t, f.handle(pressed(constants.VirtualButtonA)))
	assert.False(t, f.handle(pressed(constants.VirtualButtonStart)))

	ready = true
	assert.True(t, f.handle(pressed(constants.VirtualButtonStart)))
	assert.Equal(t, actionSubmit, f.action)
}

func TestFormCheckboxAndChoice(t *testing.T) {
	terms := &field{kind: fieldCheckbox}
	gender := &field{kind: fieldChoice, choices: []string{"m", "f"}, choice: -1}
	f := &formScreen{fields: []*field{terms, gender}}

	assert.False(t, f.handle(pressed(constants.VirtualButtonA)))
	assert.True(t, terms.checked)

	f.handle(pressed(constants.VirtualButtonDown))
	f.handle(pressed(constants.VirtualButtonLeft))
	assert.Equal(t, 1, gender.choice)
	f.handle(pressed(constants.VirtualButtonRight))
	assert.Equal(t, 0, gender.choice)
}

func TestFormBack(t *testing.T) {
	f := &formScreen{fields: []*field{{kind: fieldText}}}
	assert.True(t, f.handle(pressed(constants.VirtualButtonB)))
	assert.Equal(t, formBack, f.action)
}

func TestFormPhotoFieldReportsAction(t *testing.T) {
	f := &formScreen{fields: []*field{{kind: fieldPhoto, action: actionPassport}}}
	assert.True(t, f.handle(pressed(constants.VirtualButtonA)))
	assert.Equal(t, actionPassport, f.action)
	assert.Nil(t, f.editing)
}

func TestMessageScreen(t *testing.T) {
	m := &messageScreen{buttons: []string{"login", "register"}}
	m.handle(pressed(constants.VirtualButtonRight))
	assert.True(t, m.handle(pressed(constants.VirtualButtonA)))
	assert.Equal(t, 1, m.chosen)

	locked := &messageScreen{buttons: []string{"continue"}, disableBack: true}
	assert.False(t, locked.handle(pressed(constants.VirtualButtonB)))
}

func TestOnboardingScreenIgnoresHiddenSkip(t *testing.T) {
	s := &onboardingScreen{}
	s.view.ShowSkip = false
	assert.False(t, s.handle(pressed(constants.VirtualButtonX)))
	assert.False(t, s.handle(pressed(constants.VirtualButtonLeft)))
	assert.True(t, s.handle(pressed(constants.VirtualButtonA)))
}
