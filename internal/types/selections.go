// Package types provides type definitions for structured data used throughout
// the pulsecheck system.
package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Channel is one way a business is findable by customers. presenceChannels is
// the only multi-select answer.
type Channel string

// Presence channel values.
const (
	ChannelWordOfMouth       Channel = "word_of_mouth"
	ChannelFacebookPage      Channel = "facebook_page"
	ChannelInstagram         Channel = "instagram"
	ChannelGoogleBusiness    Channel = "google_business_profile"
	ChannelWebsite           Channel = "website"
	ChannelOnlineDirectories Channel = "online_directories"
)

// TeamShape describes who does the work.
type TeamShape string

// Team shape values.
const (
	TeamSoloOrOneHelper TeamShape = "solo_or_one_helper"
	TeamSmallCrew       TeamShape = "small_crew"
	TeamMidTeam         TeamShape = "mid_team"
	TeamMultiCrew       TeamShape = "multi_crew"
)

// Scheduling describes how jobs get onto a calendar.
type Scheduling string

// Scheduling values.
const (
	SchedulingHeadNotebook   Scheduling = "head_notebook"
	SchedulingPaperCalendar  Scheduling = "paper_calendar"
	SchedulingSharedCalendar Scheduling = "shared_digital_calendar"
	SchedulingSoftware       Scheduling = "scheduling_software"
)

// Invoicing describes how money gets billed and tracked.
type Invoicing string

// Invoicing values.
const (
	InvoicingPaperVerbal  Invoicing = "paper_verbal"
	InvoicingSpreadsheets Invoicing = "spreadsheets_templates"
	InvoicingApp          Invoicing = "invoicing_app"
	InvoicingIntegrated   Invoicing = "integrated_accounting"
)

// CallHandling describes who answers the phone.
type CallHandling string

// Call handling values.
const (
	CallsPersonalPhone    CallHandling = "personal_phone"
	CallsDedicatedLine    CallHandling = "dedicated_business_line"
	CallsOfficeStaff      CallHandling = "office_staff"
	CallsAnsweringService CallHandling = "answering_service"
)

// BusinessFeeling is the owner's read on how the business feels day to day.
// It is the strongest behavioral signal and the scorer weights it double.
type BusinessFeeling string

// Business feeling values.
const (
	FeelingReactiveAllTheTime BusinessFeeling = "reactive_all_the_time"
	FeelingBusyNotGrowing     BusinessFeeling = "busy_but_not_growing"
	FeelingSteadyButStuck     BusinessFeeling = "steady_but_stuck"
	FeelingGrowingStretched   BusinessFeeling = "growing_and_stretched"
	FeelingSmoothAndScaling   BusinessFeeling = "smooth_and_scaling"
)

// Selections is the complete six-question answer set. Every field is required
// and must hold enumerated values; the scorer is never called with anything
// that failed Validate.
type Selections struct {
	PresenceChannels []Channel       `json:"presenceChannels" validate:"required,min=1,unique,dive,oneof=word_of_mouth facebook_page instagram google_business_profile website online_directories"`
	TeamShape        TeamShape       `json:"teamShape" validate:"required,oneof=solo_or_one_helper small_crew mid_team multi_crew"`
	Scheduling       Scheduling      `json:"scheduling" validate:"required,oneof=head_notebook paper_calendar shared_digital_calendar scheduling_software"`
	Invoicing        Invoicing       `json:"invoicing" validate:"required,oneof=paper_verbal spreadsheets_templates invoicing_app integrated_accounting"`
	CallHandling     CallHandling    `json:"callHandling" validate:"required,oneof=personal_phone dedicated_business_line office_staff answering_service"`
	BusinessFeeling  BusinessFeeling `json:"businessFeeling" validate:"required,oneof=reactive_all_the_time busy_but_not_growing steady_but_stuck growing_and_stretched smooth_and_scaling"`
}

// Validate validates the Selections using the validator.
func (s *Selections) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid selections: %w", err)
	}
	return nil
}
