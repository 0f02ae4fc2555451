package classify

// Reference tables for workout classification. Matching everywhere is
// case-insensitive substring containment; no tokenization or stemming.

// fitnessCalendars are calendar names whose events are always included.
var fitnessCalendars = []string{
	"fitness", "workout", "gym", "exercise", "training", "health",
}

// businessTerms mark an event as a work meeting and exclude it, even when
// the title also contains a workout word ("Weekly Standup Run").
var businessTerms = []string{
	// Regular meetings
	"weeklies", "weekly", "meeting", "sync", "1:1", "one-on-one", "standup",
	"scrum", "sprint", "huddle", "check-in", "alignment", "status",
	// Communication
	"interview", "call", "chat", "discussion", "conversation", "debrief",
	"presentation", "demo", "workshop", "training", "onboarding",
	// Planning and review
	"brand", "tasting", "review", "planning", "retro", "retrospective",
	"strategy", "roadmap", "brainstorm", "ideation", "kickoff",
	// General business terms
	"deadline", "project", "client", "stakeholder", "vendor", "partner",
}

// personalTerms mark an event as a personal appointment and exclude it.
var personalTerms = []string{
	// Meals and social gatherings
	"lunch", "dinner", "breakfast", "brunch", "coffee", "drinks", "happy hour",
	"party", "celebration", "gathering", "meetup", "hangout", "date", "social",
	// Personal appointments
	"birthday", "anniversary", "doctor", "dentist", "appointment", "haircut",
	"salon", "spa", "massage", "therapy", "counseling",
	// Travel and events
	"flight", "trip", "vacation", "concert", "movie", "show", "theater",
	// General social terms
	"catch-up", "hang", "meet", "visit",
}

// fitnessVenues are gym chains, boutique studios and class names that
// identify an event as a workout from its title or location.
var fitnessVenues = []string{
	// Major gym chains
	"equinox", "soulcycle", "peloton", "orangetheory", "barry's", "barrys",
	"f45", "crunch", "lifetime", "ymca", "planet fitness", "la fitness",
	"24 hour fitness", "gold's gym", "anytime fitness", "fitness first",
	// Boutique studios
	"solidcore", "pure barre", "club pilates", "corepower", "rumble",
	"flywheel", "cyclebar", "row house", "boxing", "kickboxing",
	// Activities and classes
	"yoga", "pilates", "cycling", "run club", "crossfit", "zumba",
	"bootcamp", "hiit class", "spin class", "barre", "reformer",
	"trx", "circuit training", "personal training", "pt session",
}

// workoutTerms are generic words that identify a workout anywhere in the
// title.
var workoutTerms = []string{
	"workout", "class", "training", "gym", "fitness", "exercise",
}

// activityNames are simple workout activities matched exactly, as a title
// prefix, behind a time-of-day prefix, or as a substring.
var activityNames = []string{
	"spin", "run", "running", "swim", "swimming", "hike", "hiking",
	"walk", "walking", "bike", "biking", "cycle", "cycling", "lift",
	"lifting", "weights", "cardio", "hiit", "yoga", "pilates",
	// Body part specific workouts
	"upper body", "lower body", "core", "abs", "leg day", "arm day",
	"chest", "back", "shoulders", "arms", "legs", "glutes",
	// Workout types
	"set", "circuit", "strength", "conditioning", "mobility", "stretch",
	"functional", "bodyweight", "resistance", "endurance",
}

// timePrefixes are allowed in front of an activity name ("morning spin").
var timePrefixes = []string{
	"morning", "evening", "afternoon", "night", "daily", "weekly",
}
