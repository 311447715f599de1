package scoring

import (
	"github.com/jordanh/pulsecheck/internal/taxonomy"
	"github.com/jordanh/pulsecheck/internal/types"
)

// WeightEntry is the fixed numeric contribution of one answer value: signed
// deltas per stage (canonical order), a partial archetype delta map, and the
// flags the value contributes. All magnitudes stay within [-1, 1]; the
// businessFeeling entries are applied at double weight by the scorer.
type WeightEntry struct {
	Stages     [taxonomy.StageCount]float64
	Archetypes map[taxonomy.Archetype]float64
	Flags      []types.Flag
}

// feelingWeight is the multiplier for businessFeeling contributions. How the
// business feels day to day is the strongest behavioral signal in the set.
const feelingWeight = 2.0

// Behavioral flags contributed by answer values.
const (
	FlagSoloOperator        types.Flag = "solo_operator"
	FlagNoSystem            types.Flag = "no_system"
	FlagReferralDependent   types.Flag = "referral_dependent"
	FlagSocialPresence      types.Flag = "social_presence"
	FlagDiscoverable        types.Flag = "discoverable"
	FlagManualScheduling    types.Flag = "manual_scheduling"
	FlagSchedulingAutomated types.Flag = "scheduling_automated"
	FlagManualInvoicing     types.Flag = "manual_invoicing"
	FlagCashFlowRisk        types.Flag = "cash_flow_risk"
	FlagBooksIntegrated     types.Flag = "books_integrated"
	FlagOwnerAnswers        types.Flag = "owner_answers"
	FlagCallCoverage        types.Flag = "call_coverage"
	FlagDelegationPressure  types.Flag = "delegation_pressure"
	FlagScaledTeam          types.Flag = "scaled_team"
	FlagReactiveMode        types.Flag = "reactive_mode"
	FlagPlateau             types.Flag = "plateau"
	FlagGrowthStrain        types.Flag = "growth_strain"
	FlagSystemsWorking      types.Flag = "systems_working"
)

// Shorthand for the table literals below.
const (
	rso = taxonomy.ArchetypeReactiveSoloOperator
	oj  = taxonomy.ArchetypeOverbookedJuggler
	pto = taxonomy.ArchetypePaperTrailOperator
	pho = taxonomy.ArchetypePhoneTetheredOwner
	ilb = taxonomy.ArchetypeInvisibleLocalBusiness
	gbl = taxonomy.ArchetypeGrowingButLeaking
	ptw = taxonomy.ArchetypePatchworkToolWrangler
	slo = taxonomy.ArchetypeSystemsLedOperator
)

// channelWeights maps each presence channel to its contribution. The
// multi-select accumulates one entry per selected channel.
var channelWeights = map[types.Channel]WeightEntry{
	types.ChannelWordOfMouth: {
		Stages:     [3]float64{0.6, -0.1, -0.3},
		Archetypes: map[taxonomy.Archetype]float64{rso: 0.4, ilb: 0.6},
		Flags:      []types.Flag{FlagReferralDependent},
	},
	types.ChannelFacebookPage: {
		Stages:     [3]float64{0.2, 0.1, -0.1},
		Archetypes: map[taxonomy.Archetype]float64{ilb: 0.2, ptw: 0.1},
		Flags:      []types.Flag{FlagSocialPresence},
	},
	types.ChannelInstagram: {
		Stages:     [3]float64{0.1, 0.2, 0.0},
		Archetypes: map[taxonomy.Archetype]float64{ptw: 0.2},
		Flags:      []types.Flag{FlagSocialPresence},
	},
	types.ChannelGoogleBusiness: {
		Stages:     [3]float64{-0.1, 0.3, 0.2},
		Archetypes: map[taxonomy.Archetype]float64{ilb: -0.3, slo: 0.2},
		Flags:      []types.Flag{FlagDiscoverable},
	},
	types.ChannelWebsite: {
		Stages:     [3]float64{-0.2, 0.2, 0.4},
		Archetypes: map[taxonomy.Archetype]float64{ilb: -0.4, slo: 0.3},
		Flags:      []types.Flag{FlagDiscoverable},
	},
	types.ChannelOnlineDirectories: {
		Stages:     [3]float64{0.0, 0.2, 0.1},
		Archetypes: map[taxonomy.Archetype]float64{ilb: -0.2, ptw: 0.2},
	},
}

var teamShapeWeights = map[types.TeamShape]WeightEntry{
	types.TeamSoloOrOneHelper: {
		Stages:     [3]float64{0.8, -0.2, -0.5},
		Archetypes: map[taxonomy.Archetype]float64{rso: 0.7, pho: 0.3},
		Flags:      []types.Flag{FlagSoloOperator},
	},
	types.TeamSmallCrew: {
		Stages:     [3]float64{0.3, 0.4, -0.2},
		Archetypes: map[taxonomy.Archetype]float64{oj: 0.4, gbl: 0.3},
	},
	types.TeamMidTeam: {
		Stages:     [3]float64{-0.3, 0.5, 0.4},
		Archetypes: map[taxonomy.Archetype]float64{gbl: 0.5, slo: 0.2},
		Flags:      []types.Flag{FlagDelegationPressure},
	},
	types.TeamMultiCrew: {
		Stages:     [3]float64{-0.6, 0.2, 0.8},
		Archetypes: map[taxonomy.Archetype]float64{slo: 0.6, gbl: 0.2},
		Flags:      []types.Flag{FlagScaledTeam},
	},
}

var schedulingWeights = map[types.Scheduling]WeightEntry{
	types.SchedulingHeadNotebook: {
		Stages:     [3]float64{0.9, -0.3, -0.6},
		Archetypes: map[taxonomy.Archetype]float64{rso: 0.8, oj: 0.4},
		Flags:      []types.Flag{FlagNoSystem},
	},
	types.SchedulingPaperCalendar: {
		Stages:     [3]float64{0.5, 0.1, -0.4},
		Archetypes: map[taxonomy.Archetype]float64{pto: 0.6, oj: 0.3},
		Flags:      []types.Flag{FlagManualScheduling},
	},
	types.SchedulingSharedCalendar: {
		Stages:     [3]float64{-0.2, 0.5, 0.2},
		Archetypes: map[taxonomy.Archetype]float64{gbl: 0.3, ptw: 0.3},
	},
	types.SchedulingSoftware: {
		Stages:     [3]float64{-0.5, 0.2, 0.7},
		Archetypes: map[taxonomy.Archetype]float64{slo: 0.5},
		Flags:      []types.Flag{FlagSchedulingAutomated},
	},
}

var invoicingWeights = map[types.Invoicing]WeightEntry{
	types.InvoicingPaperVerbal: {
		Stages:     [3]float64{0.8, -0.2, -0.6},
		Archetypes: map[taxonomy.Archetype]float64{rso: 0.5, pto: 0.7},
		Flags:      []types.Flag{FlagNoSystem, FlagCashFlowRisk},
	},
	types.InvoicingSpreadsheets: {
		Stages:     [3]float64{0.3, 0.3, -0.2},
		Archetypes: map[taxonomy.Archetype]float64{pto: 0.3, ptw: 0.4},
		Flags:      []types.Flag{FlagManualInvoicing},
	},
	types.InvoicingApp: {
		Stages:     [3]float64{-0.2, 0.4, 0.3},
		Archetypes: map[taxonomy.Archetype]float64{ptw: 0.3, slo: 0.2},
	},
	types.InvoicingIntegrated: {
		Stages:     [3]float64{-0.5, 0.1, 0.8},
		Archetypes: map[taxonomy.Archetype]float64{slo: 0.6},
		Flags:      []types.Flag{FlagBooksIntegrated},
	},
}

var callHandlingWeights = map[types.CallHandling]WeightEntry{
	types.CallsPersonalPhone: {
		Stages:     [3]float64{0.7, -0.1, -0.5},
		Archetypes: map[taxonomy.Archetype]float64{pho: 0.8, rso: 0.5},
		Flags:      []types.Flag{FlagOwnerAnswers},
	},
	types.CallsDedicatedLine: {
		Stages:     [3]float64{0.2, 0.3, -0.1},
		Archetypes: map[taxonomy.Archetype]float64{pho: 0.3, oj: 0.2},
	},
	types.CallsOfficeStaff: {
		Stages:     [3]float64{-0.3, 0.4, 0.4},
		Archetypes: map[taxonomy.Archetype]float64{gbl: 0.3, slo: 0.2},
		Flags:      []types.Flag{FlagCallCoverage},
	},
	types.CallsAnsweringService: {
		Stages:     [3]float64{-0.4, 0.2, 0.6},
		Archetypes: map[taxonomy.Archetype]float64{slo: 0.4},
		Flags:      []types.Flag{FlagCallCoverage},
	},
}

var feelingWeights = map[types.BusinessFeeling]WeightEntry{
	types.FeelingReactiveAllTheTime: {
		Stages:     [3]float64{0.8, -0.2, -0.5},
		Archetypes: map[taxonomy.Archetype]float64{rso: 0.8, oj: 0.3},
		Flags:      []types.Flag{FlagReactiveMode},
	},
	types.FeelingBusyNotGrowing: {
		Stages:     [3]float64{0.4, 0.3, -0.3},
		Archetypes: map[taxonomy.Archetype]float64{oj: 0.6, ilb: 0.3},
		Flags:      []types.Flag{FlagPlateau},
	},
	types.FeelingSteadyButStuck: {
		Stages:     [3]float64{0.2, 0.5, -0.1},
		Archetypes: map[taxonomy.Archetype]float64{pto: 0.3, ilb: 0.4, gbl: 0.2},
		Flags:      []types.Flag{FlagPlateau},
	},
	types.FeelingGrowingStretched: {
		Stages:     [3]float64{-0.2, 0.7, 0.2},
		Archetypes: map[taxonomy.Archetype]float64{gbl: 0.7, oj: 0.2},
		Flags:      []types.Flag{FlagGrowthStrain},
	},
	types.FeelingSmoothAndScaling: {
		Stages:     [3]float64{-0.5, 0.0, 0.9},
		Archetypes: map[taxonomy.Archetype]float64{slo: 0.8},
		Flags:      []types.Flag{FlagSystemsWorking},
	},
}
