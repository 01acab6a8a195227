package textsignals

// Keyword vocabularies for the Indian-market reception model. Emotion and
// violation matching is substring based; moral-framing matching is
// word-boundary based (see moral.go).

type emotionCategory struct {
	name     string
	keywords []string
}

// Ordered so detection output is deterministic.
var emotionCategories = []emotionCategory{
	{"joy", []string{
		"happy", "happiness", "joy", "joyful", "delighted", "cheerful",
		"excited", "excitement", "celebrate", "celebration", "fun",
		"wonderful", "amazing", "fantastic", "great", "awesome",
		"smile", "laugh", "laughter", "blessed", "grateful",
	}},
	{"nostalgia", []string{
		"remember", "memories", "childhood", "nostalgia", "nostalgic",
		"old days", "throwback", "reminisce", "tradition", "traditional",
		"heritage", "roots", "classic", "vintage", "timeless",
		"golden days", "good old", "back then",
	}},
	{"pride", []string{
		"proud", "pride", "honor", "honour", "glory", "achievement",
		"success", "victory", "triumph", "excellence", "indian",
		"india", "nation", "national", "patriot", "patriotic",
		"heritage", "culture", "legacy", "dignity",
	}},
	{"humor", []string{
		"funny", "hilarious", "lol", "lmao", "haha", "hehe",
		"joke", "comedy", "comic", "laugh", "humor", "humour",
		"witty", "amusing", "entertaining", "fun", "playful",
	}},
	{"anger", []string{
		"angry", "anger", "furious", "rage", "mad", "outrage",
		"outraged", "frustrated", "frustration", "annoyed", "irritated",
		"hate", "hatred", "disgusted", "disgust", "offensive",
		"unacceptable", "wrong", "injustice", "unfair",
	}},
	{"fear", []string{
		"fear", "afraid", "scared", "worry", "worried", "anxious",
		"anxiety", "nervous", "concern", "concerned", "threat",
		"threatening", "danger", "dangerous", "risk", "risky",
		"unsafe", "insecure", "panic", "terrified", "miss out",
		"lose", "losing", "limited", "last chance", "running out",
	}},
	{"inspiration", []string{
		"inspire", "inspired", "inspiring", "inspiration", "motivate",
		"motivated", "motivating", "motivation", "empower", "empowering",
		"hope", "hopeful", "dream", "aspire", "ambition", "ambitious",
		"courage", "courageous", "brave", "strength", "strong",
		"believe", "faith", "determination", "determined",
	}},
	{"urgency", []string{
		"now", "today", "hurry", "quick", "quickly", "fast", "immediate",
		"immediately", "urgent", "asap", "limited time", "act now",
		"dont wait", "dont miss", "last chance", "ending soon", "expires",
		"deadline", "while supplies last", "limited offer", "flash sale",
		"time sensitive", "act fast", "before its gone", "only today",
	}},
}

// High-arousal emotions weigh more when computing intensity.
var emotionWeights = map[string]float64{
	"joy":         1.2,
	"anger":       1.5,
	"fear":        1.4,
	"inspiration": 1.3,
	"pride":       1.2,
	"nostalgia":   1.0,
	"humor":       1.1,
	"urgency":     1.3,
}

type moralCategory struct {
	name     string
	keywords []string
}

var moralCategories = []moralCategory{
	{"values", []string{
		"value", "values", "principle", "principles", "ethics", "ethical",
		"moral", "morality", "virtue", "virtuous", "integrity", "honesty",
		"truth", "truthful", "authentic", "authenticity", "genuine",
	}},
	{"duty", []string{
		"duty", "responsibility", "obligation", "dharma", "karma",
		"should", "must", "ought", "deserve", "right thing",
		"commitment", "dedicated", "devotion", "loyal", "loyalty",
	}},
	{"family", []string{
		"family", "families", "parent", "parents", "mother", "father",
		"children", "son", "daughter", "brother", "sister", "home",
		"together", "unity", "bond", "relationship", "care", "caring",
		"love", "respect", "elder", "elders", "generation",
	}},
	{"community", []string{
		"community", "society", "social", "collective", "together",
		"unity", "united", "harmony", "peace", "cooperation",
		"neighbor", "neighbourhood", "village", "nation", "country",
		"people", "everyone", "all of us", "we", "our",
	}},
	{"justice", []string{
		"justice", "fair", "fairness", "equal", "equality", "equity",
		"right", "rights", "wrong", "injustice", "unfair", "deserve",
		"discrimination", "bias", "prejudice", "freedom", "liberty",
	}},
	{"tradition", []string{
		"tradition", "traditional", "culture", "cultural", "heritage",
		"custom", "ritual", "ceremony", "festival", "celebration",
		"ancient", "wisdom", "legacy", "roots", "ancestors",
		"sacred", "holy", "spiritual", "religious", "faith",
	}},
	{"progress", []string{
		"progress", "development", "growth", "future", "modern",
		"innovation", "change", "transform", "improve", "improvement",
		"better", "advancement", "forward", "evolve", "evolution",
	}},
}

// Family/duty/tradition sit above justice/progress in the target market's
// value hierarchy.
var moralCategoryWeights = map[string]float64{
	"family":    1.5,
	"duty":      1.4,
	"tradition": 1.3,
	"community": 1.2,
	"values":    1.1,
	"justice":   1.0,
	"progress":  0.9,
}

type moralViolationRule struct {
	name     string
	keywords []string
	contexts []string
	score    float64
}

// A violation needs BOTH a keyword and a contextual framing term; either
// alone never counts.
var moralViolationRules = []moralViolationRule{
	{
		name: "dignity_violation",
		keywords: []string{
			"dark skin", "fat", "ugly", "inferior", "worthless",
			"disgusting", "gross", "shameful", "embarrassing",
		},
		contexts: []string{
			"problem", "issue", "fix", "change", "transform",
			"solution", "cure", "treatment",
		},
		score: 30,
	},
	{
		name: "discrimination_normalization",
		keywords: []string{
			"employers prefer", "society wants", "everyone knows",
			"people like", "nobody wants", "everyone prefers",
		},
		contexts: []string{
			"fair", "light", "white", "slim", "thin", "tall",
			"beautiful", "attractive",
		},
		score: 35,
	},
	{
		name: "victim_blaming",
		keywords: []string{
			"your fault", "youre responsible", "you let", "dont let",
			"because of you", "due to your", "if only you",
		},
		contexts: []string{
			"job", "rejection", "marriage", "failure", "problem",
			"issue", "struggle",
		},
		score: 40,
	},
	{
		name: "stereotype_reinforcement",
		keywords: []string{
			"real men", "real women", "good wife", "good husband",
			"proper woman", "proper man", "like a man", "like a woman",
		},
		contexts: []string{
			"should", "must", "need to", "have to", "supposed to",
			"expected to",
		},
		score: 30,
	},
}

var abstractKeywords = []string{
	"thing", "things", "something", "anything", "everything",
	"maybe", "perhaps", "possibly", "might", "could", "would",
	"some", "any", "many", "few", "several", "various",
	"kind of", "sort of", "type of", "like", "seems",
	"appears", "suggests", "implies", "indicates",
	"concept", "idea", "notion", "sense", "feeling",
	"essence", "nature", "quality", "aspect", "element",
	"generally", "usually", "often", "sometimes", "rarely",
	"basically", "essentially", "fundamentally",
	"somewhat", "rather", "quite", "fairly", "pretty",
	"best", "better", "great", "amazing", "incredible",
	"big", "huge", "massive", "enormous",
	"more", "most", "less", "least",
}

var openEndedPhrases = []string{
	"what do you think", "how do you feel", "tell us", "share your",
	"let us know", "comment below", "your thoughts", "your opinion",
	"what if", "imagine", "consider", "think about", "wonder",
	"curious", "explore", "discover", "find out",
}

var metaphorIndicators = []string{
	"like", "as if", "as though", "reminds", "symbolizes",
	"represents", "embodies", "reflects", "mirrors",
	"journey", "path", "bridge", "door", "window",
	"light", "darkness", "shadow", "wave", "storm",
	"seed", "root", "flower", "tree", "river", "ocean",
}

var ambiguousPronouns = []string{"it", "this", "that", "these", "those", "they", "them"}
