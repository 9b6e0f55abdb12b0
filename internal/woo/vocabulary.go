package woo

// TopicMapping links an anchor term to the Woo topics it implies. Matching
// is bidirectional substring: the anchor inside a keyword or the keyword
// inside the anchor both count.
type TopicMapping struct {
	Anchor string
	Topics []string
}

// Category is one statutory Woo disclosure category (Art 3.3 Woo) together
// with the keyword substrings that trigger it.
type Category struct {
	ID       string
	Name     string
	Triggers []string
}

// TopicRule emits a category when the analysed topics intersect a topic set.
type TopicRule struct {
	CategoryID string
	Topics     []string
	Reason     string
}

// Vocabulary holds the static matching tables. It is configuration data,
// immutable after construction, so alternate vocabularies can be injected
// in tests.
type Vocabulary struct {
	Stopwords  []string
	Topics     []TopicMapping
	Categories []Category
	TopicRules []TopicRule
}

// CategoryName returns the display name for a category id, or "".
func (v *Vocabulary) CategoryName(id string) string {
	for _, c := range v.Categories {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

// DefaultVocabulary returns the Dutch vocabulary for Utrecht datasets:
// basic Dutch stopwords, the dataset-keyword → Woo-topic table, and the
// Art 3.3 Woo categories with their trigger terms.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		Stopwords: []string{
			"de", "het", "een", "van", "in", "op", "voor", "met", "aan",
			"uit", "en", "of", "maar", "is", "zijn", "was", "waren",
			"deze", "dit", "die", "dat", "door", "naar", "bij", "om",
			"te", "tot", "over", "onder", "tussen", "na", "als", "dan",
		},
		Topics: []TopicMapping{
			// Ruimtelijke ordening & infrastructuur
			{Anchor: "afval", Topics: []string{"milieu", "openbare ruimte", "beheer", "huisvesting"}},
			{Anchor: "parkeren", Topics: []string{"verkeer", "mobiliteit", "openbare ruimte", "handhaving"}},
			{Anchor: "verkeer", Topics: []string{"mobiliteit", "infrastructuur", "veiligheid", "openbare ruimte"}},
			{Anchor: "bus", Topics: []string{"openbaar vervoer", "mobiliteit", "infrastructuur"}},
			{Anchor: "fiets", Topics: []string{"mobiliteit", "infrastructuur", "openbare ruimte"}},
			{Anchor: "straat", Topics: []string{"openbare ruimte", "beheer", "infrastructuur"}},
			{Anchor: "woning", Topics: []string{"huisvesting", "ruimtelijke ordening", "bouw"}},
			{Anchor: "bouw", Topics: []string{"ruimtelijke ordening", "vergunningen", "handhaving"}},

			// Sociale zaken
			{Anchor: "jeugd", Topics: []string{"jeugdzorg", "welzijn", "onderwijs", "zorg"}},
			{Anchor: "zorg", Topics: []string{"gezondheidszorg", "welzijn", "sociaal domein"}},
			{Anchor: "onderwijs", Topics: []string{"educatie", "jeugd", "cultuur"}},
			{Anchor: "werk", Topics: []string{"arbeidsmarkt", "economie", "sociale zaken"}},

			// Milieu & duurzaamheid
			{Anchor: "milieu", Topics: []string{"duurzaamheid", "klimaat", "natuur"}},
			{Anchor: "energie", Topics: []string{"duurzaamheid", "klimaat", "milieu"}},
			{Anchor: "water", Topics: []string{"waterbeheer", "milieu", "infrastructuur"}},
			{Anchor: "groen", Topics: []string{"natuur", "openbare ruimte", "milieu"}},

			// Veiligheid & handhaving
			{Anchor: "veiligheid", Topics: []string{"openbare orde", "handhaving", "politie"}},
			{Anchor: "criminaliteit", Topics: []string{"veiligheid", "politie", "handhaving"}},
			{Anchor: "overlast", Topics: []string{"openbare orde", "handhaving", "veiligheid"}},

			// Bestuur & organisatie
			{Anchor: "subsidie", Topics: []string{"financiën", "beleid", "ondersteuning"}},
			{Anchor: "beleid", Topics: []string{"bestuur", "regelgeving", "strategie"}},
			{Anchor: "financiën", Topics: []string{"begroting", "subsidie", "economie"}},
			{Anchor: "vergunning", Topics: []string{"handhaving", "regelgeving", "bouw"}},
		},
		Categories: []Category{
			{ID: "1a", Name: "Convenanten", Triggers: []string{"convenant", "overeenkomst", "samenwerkings"}},
			{ID: "1b", Name: "Jaarplannen en jaarverslagen", Triggers: []string{"jaarplan", "jaarverslag", "begroting"}},
			{ID: "1c", Name: "Onderzoeksrapporten", Triggers: []string{"onderzoek", "rapport", "evaluatie", "studie"}},
			{ID: "1d", Name: "Adviezen van adviescolleges", Triggers: []string{"advies", "aanbeveling", "commissie"}},
			{ID: "1e", Name: "Beschikkingen over aanvragen om een subsidie", Triggers: []string{"subsidie", "financiering", "ondersteuning"}},
			{ID: "1f", Name: "Beschikkingen Wob-verzoeken", Triggers: []string{"wob", "openbaarmaking"}},
			{ID: "1g", Name: "Beschikkingen Woo-verzoeken", Triggers: []string{"woo", "openbaarmaking"}},
			{ID: "2", Name: "Vergaderstukken bestuursorganen", Triggers: []string{"vergader", "raad", "commissie", "besluit"}},
			{ID: "3", Name: "Bestuurlijke besluiten", Triggers: []string{"besluit", "beschikking", "verordening"}},
			{ID: "4", Name: "Regelingen en beleidsnota's", Triggers: []string{"beleid", "regeling", "verordening", "nota"}},
		},
		TopicRules: []TopicRule{
			{CategoryID: "4", Topics: []string{"beleid", "regelgeving", "bestuur"}, Reason: "Gerelateerd aan beleid en regelgeving"},
			{CategoryID: "1e", Topics: []string{"subsidie", "financiën"}, Reason: "Gerelateerd aan subsidies"},
		},
	}
}
