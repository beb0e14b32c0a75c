package vocab

// Entry maps an English lemma to its Owens Valley Paiute target stem.
type Entry struct {
	Lemma  string `json:"lemma" db:"lemma"`
	Target string `json:"target" db:"target"`
}

// Category identifies one of the three disjoint lexicon collections.
type Category string

const (
	Nouns             Category = "nouns"
	TransitiveVerbs   Category = "transitive_verbs"
	IntransitiveVerbs Category = "intransitive_verbs"
)

func (c Category) Valid() bool {
	return c == Nouns || c == TransitiveVerbs || c == IntransitiveVerbs
}

// Categories lists all lexicon categories in a stable order.
func Categories() []Category {
	return []Category{Nouns, TransitiveVerbs, IntransitiveVerbs}
}

// The reference word lists. Verb lemmas may appear in both verb tables when
// the language genuinely has a homophonous intransitive/transitive pair
// (e.g. "climb"); callers that only hold a bare lemma must go through
// LookupAnyVerb, which prefers the transitive reading.
var nounEntries = []Entry{
	{Lemma: "coyote", Target: "isha'"},
	{Lemma: "vulture", Target: "wiho"},
	{Lemma: "dog", Target: "ishapugu"},
	{Lemma: "cat", Target: "kidi'"},
	{Lemma: "horse", Target: "pugu"},
	{Lemma: "rice", Target: "wai"},
	{Lemma: "pinenuts", Target: "tüba"},
	{Lemma: "corn", Target: "maishibü"},
	{Lemma: "water", Target: "paya"},
	{Lemma: "river", Target: "payahuupü"},
	{Lemma: "chair", Target: "katünu"},
	{Lemma: "mountain", Target: "toyabi"},
	{Lemma: "food", Target: "tuunapi"},
	{Lemma: "tree", Target: "pasohobü"},
	{Lemma: "house", Target: "nobi"},
	{Lemma: "wickiup", Target: "toni"},
	{Lemma: "cup", Target: "apo"},
	{Lemma: "wood", Target: "küna"},
	{Lemma: "rock", Target: "tübbi"},
	{Lemma: "cottontail", Target: "tabuutsi'"},
	{Lemma: "jackrabbit", Target: "kamü"},
	{Lemma: "apple", Target: "aaponu'"},
	{Lemma: "weasle", Target: "tüsüga"},
	{Lemma: "lizard", Target: "mukita"},
	{Lemma: "mosquito", Target: "wo'ada"},
	{Lemma: "bird_snake", Target: "wükada"},
	{Lemma: "worm", Target: "wo'abi"},
	{Lemma: "squirrel", Target: "aingwü"},
	{Lemma: "bird", Target: "tsiipa"},
	{Lemma: "earth", Target: "tüwoobü"},
	{Lemma: "coffee", Target: "koopi'"},
	{Lemma: "bear", Target: "pahabichi"},
	{Lemma: "fish", Target: "pagwi"},
	{Lemma: "tail", Target: "kwadzi"},
	{Lemma: "raccoon", Target: "padaka'i"},
	{Lemma: "chipmunk", Target: "taba'ya"},
	{Lemma: "knife", Target: "wihi"},
}

var transitiveVerbEntries = []Entry{
	{Lemma: "eat", Target: "tüka"},
	{Lemma: "see", Target: "puni"},
	{Lemma: "drink", Target: "hibi"},
	{Lemma: "hear", Target: "naka"},
	{Lemma: "smell", Target: "kwana"},
	{Lemma: "hit", Target: "kwati"},
	{Lemma: "talk_to", Target: "yadohi"},
	{Lemma: "chase", Target: "naki"},
	{Lemma: "climb", Target: "tsibui"},
	{Lemma: "cook", Target: "sawa"},
	{Lemma: "read", Target: "nia"},
	{Lemma: "write", Target: "mui"},
	{Lemma: "visit", Target: "nobini"},
	{Lemma: "find", Target: "tama'i"},
}

var intransitiveVerbEntries = []Entry{
	{Lemma: "sit", Target: "katü"},
	{Lemma: "sleep", Target: "üwi"},
	{Lemma: "sneeze", Target: "kwisha'i"},
	{Lemma: "run", Target: "poyoha"},
	{Lemma: "go", Target: "mia"},
	{Lemma: "walk", Target: "hukaw̃ia"},
	{Lemma: "stand", Target: "wünü"},
	{Lemma: "lie_down", Target: "habi"},
	{Lemma: "talk", Target: "yadoha"},
	{Lemma: "fall", Target: "kwatsa'i"},
	{Lemma: "work", Target: "waakü"},
	{Lemma: "smile", Target: "wükihaa"},
	{Lemma: "sing", Target: "hubiadu"},
	{Lemma: "laugh", Target: "nishua'i"},
	{Lemma: "climb", Target: "tsibui"},
	{Lemma: "play", Target: "tübinohi"},
	{Lemma: "fly", Target: "yotsi"},
	{Lemma: "jump", Target: "yotsi"},
	{Lemma: "dance", Target: "nüga"},
	{Lemma: "swim", Target: "pahabi"},
	{Lemma: "read", Target: "tünia"},
	{Lemma: "write", Target: "tümui"},
	{Lemma: "chirp", Target: "tsiipe'i"},
}
