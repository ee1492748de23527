package expand

// association maps a canonical key phrase to related catalog vocabulary.
type association struct {
	key     string
	related []string
}

// associations is the static expansion table. It is read-only, built once,
// ordered so lookups produce a deterministic result. All entries are
// lower-case by construction.
var associations = []association{
	// Technology and making
	{"python", []string{"programming", "coding", "data science", "machine learning", "software", "development"}},
	{"programming", []string{"coding", "software", "development", "computer science", "python", "javascript"}},
	{"coding", []string{"programming", "software", "development", "computer"}},
	{"internet of things", []string{"iot", "arduino", "raspberry pi", "sensors", "electronics", "maker"}},
	{"iot", []string{"internet of things", "arduino", "raspberry pi", "sensors", "electronics"}},
	{"arduino", []string{"electronics", "microcontroller", "maker", "circuits", "raspberry pi"}},
	{"robotics", []string{"robots", "engineering", "electronics", "programming", "stem"}},
	{"3d printing", []string{"maker", "fabrication", "design", "prototyping", "printer"}},

	// Genres
	{"mystery", []string{"thriller", "detective", "crime", "suspense", "whodunit"}},
	{"thriller", []string{"mystery", "suspense", "crime", "psychological"}},
	{"romance", []string{"love", "romantic", "relationship"}},
	{"science fiction", []string{"sci-fi", "scifi", "space", "future", "dystopian"}},
	{"fantasy", []string{"magic", "wizard", "dragon", "quest", "mythology"}},
	{"horror", []string{"scary", "ghost", "supernatural", "dark"}},
	{"memoir", []string{"biography", "autobiography", "non-fiction", "life story"}},

	// Moods
	{"funny", []string{"humor", "comedy", "humorous", "witty"}},
	{"scary", []string{"horror", "thriller", "suspense", "dark"}},
	{"uplifting", []string{"inspiring", "heartwarming", "positive", "hopeful"}},
	{"stressed", []string{"mindfulness", "meditation", "anxiety", "self-help", "mental health", "relaxation"}},

	// Hobbies and practical skills
	{"cooking", []string{"recipes", "food", "baking", "cuisine", "chef", "kitchen"}},
	{"garden", []string{"gardening", "plants", "vegetables", "seeds", "compost", "landscaping"}},
	{"bike", []string{"bicycle", "cycling", "repair", "maintenance"}},
	{"repair", []string{"fix", "maintenance", "tools", "diy", "restoration"}},
	{"knitting", []string{"crochet", "yarn", "crafts", "sewing", "fiber arts"}},
	{"photography", []string{"camera", "photos", "composition", "lighting", "digital"}},
	{"chess", []string{"strategy", "board game", "tactics", "openings"}},

	// Languages and learning
	{"spanish", []string{"language", "language learning", "conversation", "grammar", "vocabulary"}},
	{"language learning", []string{"spanish", "french", "vocabulary", "grammar", "fluency"}},

	// American history (the local-history collection)
	{"philadelphia", []string{"1776", "founding fathers", "benjamin franklin", "constitution", "independence hall", "liberty bell", "colonial america"}},
	{"benjamin franklin", []string{"franklin", "founding fathers", "philadelphia", "autobiography", "electricity", "inventor"}},
	{"revolutionary war", []string{"revolution", "1776", "independence", "founding fathers", "george washington", "colonial"}},
	{"american history", []string{"united states", "founding fathers", "1776", "revolution", "civil war", "constitution", "colonial"}},

	// Formats
	{"audio", []string{"audiobook", "listening"}},
	{"digital", []string{"ebook", "electronic", "online"}},
}
