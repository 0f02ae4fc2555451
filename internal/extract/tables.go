package extract

// platform is a fitness service recognizable from event text.
type platform struct {
	name     string
	keywords []string
}

// platformIdentifiers is scanned in order against the combined
// title+notes+location text; the first matching platform wins.
var platformIdentifiers = []platform{
	{"ClassPass", []string{"classpass", "class pass"}},
	{"Strava", []string{"strava"}},
	{"MindBody", []string{"mindbody", "mind body"}},
	{"Peloton", []string{"peloton"}},
	{"Nike Training Club", []string{"nike", "ntc"}},
	{"Equinox+", []string{"equinox"}},
	{"Barry's", []string{"barry", "barrys"}},
	{"SoulCycle", []string{"soul", "soulcycle"}},
}

// workoutTypes is scanned in order against the title; the first
// case-insensitive substring match becomes the workout type.
var workoutTypes = []string{
	"Strength", "Cardio", "HIIT", "Yoga", "Running", "Cycling",
	"Swimming", "CrossFit", "Pilates", "Boxing", "Kickboxing",
	"Zumba", "Barre", "Stretching", "Core", "Abs", "Legs", "Arms",
	"Upper Body", "Lower Body", "Full Body",
}

// intensityBucket maps a display label to its trigger keywords. Buckets
// are checked in order; the first bucket with a keyword in title+notes
// wins.
type intensityBucket struct {
	label    string
	keywords []string
}

var intensityBuckets = []intensityBucket{
	{"Light", []string{"light", "easy", "beginner", "recovery"}},
	{"Moderate", []string{"moderate", "medium", "intermediate"}},
	{"Intense", []string{"intense", "hard", "advanced", "heavy", "power", "hiit"}},
}

// Type-based intensity defaults used when no keyword matched.
var intenseTypes = []string{"HIIT", "CrossFit", "Boxing", "Kickboxing"}
var lightTypes = []string{"Yoga", "Stretching", "Barre"}
