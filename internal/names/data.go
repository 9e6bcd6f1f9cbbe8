// Copyright Casefile Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package names

// Static word tables backing the name validity rules. They are exposed as
// data rather than scattered literals so the rejection behavior can be unit
// tested and extended without touching the rule chain in validator.go.
//
// Every table holds lowercase entries; callers lowercase before lookup.

// verbSet holds verbs that never begin or end a real person name. Sentence
// fragments capitalized mid-clause ("Flew To Paris") routinely match the
// capitalized-phrase pattern, and leading or trailing verbs are the most
// common tell.
var verbSet = map[string]bool{
	"accepted": true, "accused": true, "acknowledged": true, "acted": true,
	"added": true, "admitted": true, "advised": true, "agreed": true,
	"alleged": true, "allowed": true, "announced": true, "answered": true,
	"appeared": true, "approached": true, "argued": true, "arranged": true,
	"arrested": true, "arrived": true, "asked": true, "asserted": true,
	"attended": true, "authorized": true, "became": true, "began": true,
	"believed": true, "brought": true, "called": true, "came": true,
	"carried": true, "caused": true, "changed": true, "charged": true,
	"choose": true, "chose": true, "claimed": true, "come": true,
	"confirmed": true, "considered": true, "contacted": true, "continued": true,
	"convicted": true, "decided": true, "declared": true, "declined": true,
	"demanded": true, "denied": true, "departed": true, "described": true,
	"directed": true, "discussed": true, "does": true, "drove": true,
	"emailed": true, "ended": true, "entered": true, "explained": true,
	"filed": true, "flew": true, "followed": true, "found": true,
	"gave": true, "given": true, "goes": true, "going": true, "gone": true,
	"took": true, "happened": true, "heard": true, "held": true,
	"helped": true, "hired": true, "identified": true, "included": true,
	"indicated": true, "informed": true, "introduced": true, "invited": true,
	"involved": true, "joined": true, "kept": true, "knew": true,
	"known": true, "landed": true, "learned": true, "left": true,
	"lived": true, "looked": true, "made": true, "maintained": true,
	"managed": true, "meet": true, "mentioned": true, "met": true,
	"moved": true, "named": true, "needed": true, "noted": true,
	"observed": true, "obtained": true, "occurred": true, "offered": true,
	"opened": true, "ordered": true, "organized": true, "paid": true,
	"passed": true, "performed": true, "placed": true, "planned": true,
	"pleaded": true, "pointed": true, "presented": true, "produced": true,
	"promised": true, "provided": true, "purchased": true, "questioned": true,
	"raised": true, "reached": true, "received": true, "recalled": true,
	"recruited": true, "refused": true, "rejected": true, "remained": true,
	"remembered": true, "removed": true, "repeated": true, "replied": true,
	"requested": true, "required": true, "responded": true, "returned": true,
	"revealed": true, "reviewed": true, "said": true, "saw": true,
	"scheduled": true, "seemed": true, "seen": true, "sent": true,
	"served": true, "settled": true, "showed": true, "signed": true,
	"spoke": true, "started": true, "stated": true, "stayed": true,
	"stopped": true, "submitted": true, "suggested": true, "testified": true,
	"told": true, "traveled": true, "tried": true, "turned": true,
	"visited": true, "waited": true, "walked": true, "wanted": true,
	"went": true, "worked": true, "wrote": true,
}

// reportingVerbSet holds attribution verbs; a phrase ending in one is a
// sentence fragment ("Epstein Said"), never a name.
var reportingVerbSet = map[string]bool{
	"said": true, "stated": true, "testified": true, "claimed": true,
	"alleged": true, "told": true, "wrote": true, "added": true,
	"replied": true, "responded": true, "confirmed": true, "denied": true,
	"recalled": true, "explained": true, "noted": true, "continued": true,
	"asked": true, "answered": true, "declared": true, "admitted": true,
}

// modalVerbSet holds modal verbs; a modal followed by an infinitive
// ("May Choose", "Will Travel") is always a clause fragment even though both
// tokens look name-shaped.
var modalVerbSet = map[string]bool{
	"may": true, "might": true, "must": true, "shall": true, "should": true,
	"will": true, "would": true, "can": true, "could": true,
}

var prepositionSet = map[string]bool{
	"about": true, "above": true, "across": true, "after": true,
	"against": true, "along": true, "among": true, "around": true,
	"at": true, "before": true, "behind": true, "below": true,
	"beneath": true, "beside": true, "between": true, "beyond": true,
	"by": true, "concerning": true, "despite": true, "during": true,
	"except": true, "for": true, "from": true, "in": true, "inside": true,
	"into": true, "near": true, "of": true, "off": true, "on": true,
	"onto": true, "outside": true, "over": true, "per": true,
	"regarding": true, "since": true, "through": true, "throughout": true,
	"to": true, "toward": true, "towards": true, "under": true,
	"until": true, "upon": true, "via": true, "with": true,
	"within": true, "without": true,
}

var pronounSet = map[string]bool{
	"all": true, "another": true, "any": true, "anybody": true,
	"anyone": true, "anything": true, "both": true, "each": true,
	"either": true, "everybody": true, "everyone": true, "everything": true,
	"few": true, "he": true, "her": true, "hers": true, "herself": true,
	"him": true, "himself": true, "his": true, "i": true, "it": true,
	"its": true, "itself": true, "many": true, "me": true, "mine": true,
	"my": true, "myself": true, "neither": true, "no one": true,
	"nobody": true, "none": true, "nothing": true, "one": true,
	"other": true, "others": true, "our": true, "ours": true,
	"ourselves": true, "several": true, "she": true, "some": true,
	"somebody": true, "someone": true, "something": true, "that": true,
	"their": true, "theirs": true, "them": true, "themselves": true,
	"these": true, "they": true, "this": true, "those": true, "us": true,
	"we": true, "what": true, "whatever": true, "which": true, "who": true,
	"whoever": true, "whom": true, "whose": true, "you": true,
	"your": true, "yours": true, "yourself": true,
}

var adverbSet = map[string]bool{
	"again": true, "ago": true, "almost": true, "already": true,
	"also": true, "always": true, "anywhere": true, "apparently": true,
	"approximately": true, "certainly": true, "clearly": true,
	"currently": true, "directly": true, "earlier": true, "early": true,
	"especially": true, "eventually": true, "exactly": true,
	"finally": true, "frequently": true, "generally": true, "here": true,
	"however": true, "immediately": true, "indeed": true, "initially": true,
	"instead": true, "just": true, "later": true, "likely": true,
	"maybe": true, "meanwhile": true, "moreover": true, "mostly": true,
	"never": true, "nevertheless": true, "now": true, "nowhere": true,
	"occasionally": true, "often": true, "once": true, "only": true,
	"otherwise": true, "perhaps": true, "possibly": true, "previously": true,
	"probably": true, "quickly": true, "rarely": true, "really": true,
	"recently": true, "regularly": true, "reportedly": true, "shortly": true,
	"sometimes": true, "soon": true, "still": true, "subsequently": true,
	"then": true, "there": true, "therefore": true, "thus": true,
	"today": true, "together": true, "tomorrow": true, "tonight": true,
	"usually": true, "very": true, "well": true, "yesterday": true,
	"yet": true,
}

var conjunctionSet = map[string]bool{
	"although": true, "and": true, "because": true, "but": true,
	"however": true, "if": true, "nor": true, "or": true, "so": true,
	"though": true, "unless": true, "until": true, "when": true,
	"whenever": true, "where": true, "whereas": true, "wherever": true,
	"whether": true, "while": true, "yet": true,
}

// genericNounSet holds capitalized-in-headlines nouns that start or end far
// too many false candidates ("Flight Manifest", "International Jet Services",
// "Court Records Show").
var genericNounSet = map[string]bool{
	"account": true, "action": true, "address": true, "agency": true,
	"agreement": true, "aircraft": true, "airline": true, "airport": true,
	"allegation": true, "america": true, "american": true, "amount": true,
	"answer": true, "apartment": true, "appeal": true, "area": true,
	"article": true, "attachment": true, "attorney": true, "bank": true,
	"beach": true, "board": true, "building": true,
	"business": true, "case": true, "cell": true, "center": true,
	"charges": true, "check": true, "city": true, "claim": true,
	"client": true, "company": true, "complaint": true, "conference": true,
	"contact": true, "copy": true, "counsel": true, "country": true,
	"county": true, "court": true, "date": true, "day": true, "days": true,
	"defendant": true, "defendants": true, "department": true,
	"deposition": true, "detail": true, "details": true, "district": true,
	"document": true, "documents": true, "dollar": true, "dollars": true,
	"email": true, "emails": true, "employee": true, "estate": true,
	"evidence": true, "exhibit": true, "fact": true, "family": true,
	"federal": true, "file": true, "files": true, "flight": true,
	"flights": true, "floor": true, "form": true, "friend": true,
	"government": true, "group": true, "home": true, "hotel": true,
	"hour": true, "hours": true, "house": true, "information": true,
	"international": true, "interview": true, "island": true,
	"islands": true, "issue": true, "jet": true,
	"jury": true, "law": true, "lawsuit": true, "lawyer": true,
	"letter": true, "list": true, "location": true, "log": true,
	"logs": true, "manifest": true, "mansion": true, "massage": true,
	"matter": true, "media": true, "meeting": true, "member": true,
	"memo": true, "message": true, "money": true, "month": true,
	"morning": true, "motion": true, "name": true, "night": true,
	"number": true, "offense": true, "office": true, "officer": true,
	"order": true, "page": true, "pages": true, "paper": true,
	"party": true, "passenger": true, "passengers": true, "people": true,
	"person": true, "phone": true, "photo": true, "photos": true,
	"place": true, "plaintiff": true, "plaintiffs": true, "plane": true,
	"point": true, "police": true, "privilege": true, "problem": true,
	"property": true, "prosecution": true, "question": true,
	"questions": true, "ranch": true, "record": true, "records": true,
	"report": true, "reports": true, "request": true, "residence": true,
	"response": true, "room": true, "school": true, "section": true,
	"service": true, "services": true, "settlement": true, "source": true,
	"staff": true, "state": true, "statement": true, "states": true,
	"story": true, "street": true, "subject": true, "subpoena": true,
	"system": true, "table": true, "team": true, "testimony": true,
	"thing": true, "things": true, "time": true, "times": true,
	"town": true, "transcript": true, "travel": true, "trial": true,
	"trip": true, "trust": true, "unit": true, "victim": true,
	"victims": true, "video": true, "week": true, "witness": true,
	"witnesses": true, "woman": true, "women": true, "word": true,
	"work": true, "year": true, "years": true,
}

var articleSet = map[string]bool{
	"a": true, "an": true, "the": true,
}

// politePhraseSet holds letter and email boilerplate that matches the
// two-capitalized-words shape exactly.
var politePhraseSet = map[string]bool{
	"thank you": true, "thanks again": true, "best regards": true,
	"kind regards": true, "warm regards": true, "best wishes": true,
	"dear sir": true, "dear madam": true, "dear sirs": true,
	"good morning": true, "good afternoon": true, "good evening": true,
	"good day": true, "yours truly": true, "yours sincerely": true,
	"sincerely yours": true, "respectfully yours": true,
	"happy birthday": true, "happy holidays": true, "merry christmas": true,
	"happy new": true, "please advise": true, "please note": true,
	"see below": true, "see attached": true,
}

// titleTokenSet holds role/title words that may legitimately begin a name
// ("President Clinton") but demand a real name continuation afterwards.
var titleTokenSet = map[string]bool{
	"president": true, "senator": true, "governor": true,
	"congressman": true, "congresswoman": true, "representative": true,
	"secretary": true, "ambassador": true, "attorney": true,
	"judge": true, "justice": true, "prosecutor": true, "counsel": true,
	"professor": true, "doctor": true, "dean": true,
	"prince": true, "princess": true, "king": true, "queen": true,
	"duke": true, "duchess": true, "lord": true, "lady": true,
	"chairman": true, "chairwoman": true, "director": true,
	"chief": true, "officer": true, "captain": true, "colonel": true,
	"general": true, "admiral": true, "sergeant": true, "detective": true,
	"sheriff": true, "agent": true, "deputy": true,
}

// nobiliaryParticleSet holds lowercase surname particles that are allowed to
// break the capitalization rule ("Catherine de Castelbajac").
var nobiliaryParticleSet = map[string]bool{
	"de": true, "del": true, "della": true, "der": true, "di": true,
	"du": true, "la": true, "le": true, "van": true, "von": true,
	"bin": true, "ibn": true, "al": true, "el": true, "ter": true,
	"ten": true, "da": true, "dos": true, "das": true,
}

// romanNumeralSet holds generational suffixes permitted as name tokens.
var romanNumeralSet = map[string]bool{
	"II": true, "III": true, "IV": true, "V": true,
	"VI": true, "VII": true, "VIII": true, "IX": true, "X": true,
	"Jr.": true, "Sr.": true, "Jr": true, "Sr": true,
}

// organizationSet is the closed list of recognized organizations. Matching is
// deliberately exact (or "The "-prefixed) rather than substring-based: a
// conservative list that misses organizations is cheaper to correct than an
// entity graph polluted by phrases that merely look organizational.
var organizationSet = map[string]bool{
	"department of justice":               true,
	"federal bureau of investigation":     true,
	"palm beach police department":        true,
	"new york police department":          true,
	"metropolitan correctional center":    true,
	"southern district of new york":       true,
	"united states attorney's office":     true,
	"bureau of prisons":                   true,
	"customs and border protection":       true,
	"securities and exchange commission":  true,
	"internal revenue service":            true,
	"j. epstein & company":                true,
	"financial trust company":             true,
	"southern trust company":              true,
	"liquid funding ltd":                  true,
	"gratitude america":                   true,
	"mc2 model management":                true,
	"victoria's secret":                   true,
	"l brands":                            true,
	"bear stearns":                        true,
	"jpmorgan chase":                      true,
	"deutsche bank":                       true,
	"harvard university":                  true,
	"massachusetts institute of technology": true,
	"interlochen arts academy":            true,
	"dalton school":                       true,
	"edge foundation":                     true,
	"clinton foundation":                  true,
	"trump organization":                  true,
	"hyperion air":                        true,
	"jeag llc":                            true,
	"nes llc":                             true,
	"maple inc":                           true,
	"miami herald":                        true,
	"new york times":                      true,
	"washington post":                     true,
	"vanity fair":                         true,
	"associated press":                    true,
}

// variantTable maps each canonical identity to the lowercase spellings and
// references that fold into it. Read-only at runtime; consolidation scans
// canonicals in sorted order for determinism.
var variantTable = map[string][]string{
	"Jeffrey Epstein": {
		"jeffrey epstein", "jeffrey e. epstein", "jeffery epstein",
		"jeff epstein", "j. epstein", "epstein, jeffrey",
		"mr. epstein", "jeffrey edward epstein",
	},
	"Ghislaine Maxwell": {
		"ghislaine maxwell", "ghislaine noelle maxwell", "ghislane maxwell",
		"g. maxwell", "gmax", "maxwell, ghislaine", "ms. maxwell",
	},
	"Virginia Giuffre": {
		"virginia giuffre", "virginia roberts", "virginia roberts giuffre",
		"virginia l. giuffre", "giuffre, virginia",
	},
	"Prince Andrew": {
		"prince andrew", "duke of york", "andrew albert christian edward",
		"hrh prince andrew",
	},
	"Bill Clinton": {
		"bill clinton", "william j. clinton", "william jefferson clinton",
		"president clinton", "clinton, william",
	},
	"Donald Trump": {
		"donald trump", "donald j. trump", "president trump",
		"trump, donald",
	},
	"Alan Dershowitz": {
		"alan dershowitz", "alan m. dershowitz", "dershowitz, alan",
		"professor dershowitz",
	},
	"Jean-Luc Brunel": {
		"jean-luc brunel", "jean luc brunel", "brunel, jean-luc",
	},
	"Les Wexner": {
		"les wexner", "leslie wexner", "leslie h. wexner",
		"wexner, leslie",
	},
	"Sarah Kellen": {
		"sarah kellen", "sarah kensington", "sarah vickers",
		"kellen, sarah",
	},
	"Nadia Marcinkova": {
		"nadia marcinkova", "nadia marcinko", "marcinkova, nadia",
	},
	"Alexander Acosta": {
		"alexander acosta", "alex acosta", "r. alexander acosta",
		"acosta, alexander",
	},
}
