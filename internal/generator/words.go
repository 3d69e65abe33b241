package generator

// Category names a word table.
type Category string

// Word tables available to Word.
const (
	CategoryNouns      Category = "nouns"
	CategoryAdjectives Category = "adjectives"
	CategorySuffixes   Category = "business_suffixes"
	CategoryGerman     Category = "german_words"
)

var words = map[Category][]string{
	CategoryNouns: {
		"tech", "data", "cloud", "digital", "systems", "solutions", "services",
		"network", "security", "software", "web", "mobile", "app", "platform",
		"innovation", "consulting", "development", "design", "media", "marketing",
		"finance", "health", "education", "energy", "transport", "logistics",
		"retail", "commerce", "trade", "business", "enterprise", "venture",
		"startup", "company", "corporation", "agency", "studio", "lab",
		"research", "analytics", "intelligence", "automation", "robotics",
		"artificial", "machine", "learning", "blockchain", "crypto", "fintech",
	},
	CategoryAdjectives: {
		"smart", "global", "secure", "advanced", "rapid", "modern", "dynamic",
		"innovative", "professional", "reliable", "efficient", "creative",
		"strategic", "premium", "elite", "expert", "leading", "prime", "core", "next",
		"future", "digital", "virtual", "intelligent", "automated", "integrated",
		"unified", "optimized", "enhanced", "superior", "ultimate", "perfect",
		"instant", "swift", "agile", "flexible", "scalable", "robust",
		"powerful", "cuttingedge", "stateoftheart", "revolutionary", "breakthrough",
	},
	CategorySuffixes: {
		"tech", "solutions", "group", "corp", "inc", "ltd", "company", "enterprises",
		"systems", "services", "consulting", "partners", "associates", "ventures",
		"innovations", "dynamics", "works", "labs", "studio", "agency",
		"collective", "alliance", "network", "hub", "center", "institute",
		"foundation", "organization", "cooperative", "syndicate", "consortium",
		"federation", "union", "guild", "society", "club", "team", "crew",
	},
	CategoryGerman: {
		"müller", "bäcker", "größe", "weiß", "straße", "büro", "geschäft",
		"lösung", "größer", "schön", "grün", "blau", "süß", "heiß", "kühl",
		"früh", "spät", "neu", "alt", "groß", "klein", "hoch", "tief",
		"stark", "schwach", "schnell", "langsam", "gut", "böse", "reich", "arm",
	},
}

// languages maps a supported language to its word table and the suffixes
// appended to it by InternationalName. An empty suffix uses the bare word.
var languages = map[string]struct {
	category Category
	suffixes []string
}{
	"german": {category: CategoryGerman, suffixes: []string{"tech", "solutions", "", "group"}},
}

type weightedTLD struct {
	tld    string
	weight int
}

// tlds is roughly the real-world registration share of each suffix.
var tlds = []weightedTLD{
	{".com", 40}, {".org", 15}, {".net", 10}, {".de", 8}, {".co.uk", 5},
	{".ca", 4}, {".au", 3}, {".fr", 3}, {".tech", 3},
	{".io", 2}, {".app", 2}, {".dev", 2}, {".shop", 2},
	{".online", 1}, {".store", 1}, {".site", 1}, {".website", 1}, {".biz", 1},
	{".info", 1}, {".eu", 1}, {".us", 1}, {".jp", 1}, {".cn", 1}, {".in", 1},
	{".br", 1}, {".mx", 1}, {".es", 1}, {".it", 1}, {".nl", 1}, {".se", 1},
	{".no", 1}, {".dk", 1}, {".fi", 1}, {".pl", 1}, {".cz", 1}, {".at", 1},
	{".ch", 1}, {".be", 1}, {".pt", 1}, {".gr", 1}, {".ru", 1}, {".kr", 1},
	{".sg", 1}, {".hk", 1}, {".tw", 1}, {".th", 1}, {".my", 1}, {".id", 1},
	{".ph", 1}, {".vn", 1}, {".nz", 1}, {".za", 1},
}

var totalWeight = func() int {
	n := 0
	for _, t := range tlds {
		n += t.weight
	}
	return n
}()
