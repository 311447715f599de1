package taxonomy

// Profile is the canonical static text for one archetype: recognition signals,
// typical costs, and first fixes. It feeds both the narrative prompt and the
// deterministic fallback panes, so wording changes here change user-visible
// output on both paths.
type Profile struct {
	Archetype   Archetype
	DisplayName string
	Signals     []string
	Costs       []string
	Fixes       []string
}

var profiles = map[Archetype]Profile{
	ArchetypeReactiveSoloOperator: {
		Archetype:   ArchetypeReactiveSoloOperator,
		DisplayName: "The Reactive Solo Operator",
		Signals: []string{
			"Every job, call, and invoice runs through you personally",
			"Your schedule lives in your head and changes by the hour",
			"You end most days reacting to whatever shouted loudest",
		},
		Costs: []string{
			"Missed calls while on a job turn directly into lost work",
			"No written trail means quotes, follow-ups, and payments slip",
			"You can't take a day off without the business stopping",
		},
		Fixes: []string{
			"Move your schedule out of your head into one shared calendar",
			"Set up a dedicated business line with voicemail you actually check",
		},
	},
	ArchetypeOverbookedJuggler: {
		Archetype:   ArchetypeOverbookedJuggler,
		DisplayName: "The Overbooked Juggler",
		Signals: []string{
			"Work keeps coming in but the days feel like constant triage",
			"Double bookings and reshuffles happen most weeks",
			"You're busy enough to hire but too busy to train anyone",
		},
		Costs: []string{
			"Rework and rescheduling quietly eat your margin",
			"Good customers wait too long and drift to competitors",
			"Growth stalls because your calendar is the bottleneck",
		},
		Fixes: []string{
			"Adopt scheduling software that blocks double bookings for you",
			"Carve out one protected half-day a week for catch-up and planning",
		},
	},
	ArchetypePaperTrailOperator: {
		Archetype:   ArchetypePaperTrailOperator,
		DisplayName: "The Paper Trail Operator",
		Signals: []string{
			"Invoices and quotes live on paper, in texts, or nowhere",
			"You find out who owes you money by trying to remember",
			"End of month means a shoebox of receipts and a long evening",
		},
		Costs: []string{
			"Unbilled and forgotten work is money you already earned and lost",
			"Slow invoicing stretches out how long customers take to pay",
			"Tax time costs you days of reconstruction every year",
		},
		Fixes: []string{
			"Start invoicing from an app the same day the job finishes",
			"Send every quote in writing, even if it's one line",
		},
	},
	ArchetypePhoneTetheredOwner: {
		Archetype:   ArchetypePhoneTetheredOwner,
		DisplayName: "The Phone-Tethered Owner",
		Signals: []string{
			"Your personal phone is the business's only front door",
			"You answer calls on jobs, at dinner, and on your day off",
			"A missed call feels like a small emergency",
		},
		Costs: []string{
			"Calls you can't take while working go straight to a competitor",
			"You pay for always-on availability with your own recovery time",
			"Callers get a person when you're free and silence when you're not",
		},
		Fixes: []string{
			"Split business calls onto their own line or answering service",
			"Publish hours and let after-hours calls hit a professional voicemail",
		},
	},
	ArchetypeInvisibleLocalBusiness: {
		Archetype:   ArchetypeInvisibleLocalBusiness,
		DisplayName: "The Invisible Local Business",
		Signals: []string{
			"Nearly all new work arrives by word of mouth",
			"Searching your business name online turns up little or nothing",
			"You rely on a few loyal customers to keep referring you",
		},
		Costs: []string{
			"People who'd happily hire you can't find you to try",
			"One slow referral month becomes a slow revenue month",
			"Competitors with worse work but better listings win the search",
		},
		Fixes: []string{
			"Claim your free business listing and add photos and hours",
			"Ask your three happiest customers for an online review this week",
		},
	},
	ArchetypeGrowingButLeaking: {
		Archetype:   ArchetypeGrowingButLeaking,
		DisplayName: "The Growing-but-Leaking Operator",
		Signals: []string{
			"You've added people but everything still routes through you",
			"Handoffs between you and the crew drop details weekly",
			"Revenue is up while profit stays stubbornly flat",
		},
		Costs: []string{
			"Leaked details become callbacks, comps, and burned hours",
			"Your team idles waiting on answers only you can give",
			"Growth multiplies chaos instead of capacity",
		},
		Fixes: []string{
			"Write down the one process that breaks most and hand it off whole",
			"Give the crew direct access to the schedule instead of relaying it",
		},
	},
	ArchetypePatchworkToolWrangler: {
		Archetype:   ArchetypePatchworkToolWrangler,
		DisplayName: "The Patchwork Tool Wrangler",
		Signals: []string{
			"You have an app for everything and none of them talk",
			"The same job gets typed into two or three different places",
			"Nobody is quite sure which tool holds the current truth",
		},
		Costs: []string{
			"Double entry burns hours and breeds contradicting records",
			"Subscriptions pile up for tools used at ten percent",
			"Every new hire needs a tour of five systems to book one job",
		},
		Fixes: []string{
			"Pick the one tool that owns the schedule and make it the law",
			"Cancel anything that hasn't been opened in a month",
		},
	},
	ArchetypeSystemsLedOperator: {
		Archetype:   ArchetypeSystemsLedOperator,
		DisplayName: "The Systems-Led Operator",
		Signals: []string{
			"Booking, invoicing, and calls run without you touching each one",
			"You look at reports more often than you fight fires",
			"The business keeps moving when you step away",
		},
		Costs: []string{
			"Systems can hide slow drift that a hands-on owner would feel",
			"Process comfort can delay the next uncomfortable growth move",
		},
		Fixes: []string{
			"Pick one growth experiment this quarter and put a number on it",
		},
	},
}

// ProfileFor returns the static profile for an archetype. It panics on an
// unknown archetype; callers hold a value produced by this package.
func ProfileFor(a Archetype) Profile {
	p, ok := profiles[a]
	if !ok {
		panic("taxonomy: unknown archetype " + string(a))
	}
	return p
}

// AllProfiles returns every profile in canonical archetype order.
func AllProfiles() []Profile {
	out := make([]Profile, 0, ArchetypeCount)
	for _, a := range Archetypes() {
		out = append(out, profiles[a])
	}
	return out
}
