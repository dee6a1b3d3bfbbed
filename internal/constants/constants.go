// Package constants defines shared constants, environment variable names and
// input types used throughout the DriveNext client.
package constants

import (
	"os"
	"time"
)

// Development is the ENVIRONMENT value that enables development mode.
const Development = "DEV"

// Environment variable names understood by the client.
const (
	EnvironmentEnvVar     = "ENVIRONMENT"
	LocaleEnvVar          = "DRIVENEXT_LOCALE"
	LogLevelEnvVar        = "DRIVENEXT_LOG_LEVEL"
	ForceOnboardingEnvVar = "DRIVENEXT_FORCE_ONBOARDING"
	OfflineEnvVar         = "DRIVENEXT_OFFLINE"
	DataDirEnvVar         = "DRIVENEXT_DATA_DIR"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// VirtualButton represents an abstract input button, mapped from physical hardware
// or from a desktop keyboard in development mode.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
	VirtualButtonPower
)

func (vb VirtualButton) String() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonX:
		return "X"
	case VirtualButtonY:
		return "Y"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonSelect:
		return "Select"
	case VirtualButtonMenu:
		return "Menu"
	case VirtualButtonPower:
		return "Power"
	default:
		return "Unknown"
	}
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)

// Default timing constants.
const (
	DefaultInputDelay  = 20 * time.Millisecond // Debounce delay between input events
	DefaultSplashDelay = 2 * time.Second       // Splash presentation before the first routing decision
	DefaultNoticeTime  = 2 * time.Second       // How long a transient notice stays on screen
	LongNoticeTime     = 3500 * time.Millisecond
)

// Icon glyphs rendered with the theme's icon font (Material Design Icons).
const (
	IconWiFi       = "\uF1EB"
	IconCloudCheck = "\U000F0160"
	IconCar        = "\U000F010B"
)
