package lexer

// Token is one word of a sentence annotated with its position and its
// frequency within that sentence. Tokens are handed out by value and are
// never modified after construction.
type Token struct {
	Text                    string `json:"text"`
	Position                int    `json:"position"`
	CharacterPosition       int    `json:"characterPosition"`
	SentenceTokenLength     int    `json:"sentenceTokenLength"`
	SentenceCharacterLength int    `json:"sentenceCharacterLength"`
	// Occurrence is the 1-based ordinal of this text among its repeats.
	Occurrence int `json:"occurrence"`
	// Occurrences is the number of times this text appears in the sentence.
	Occurrences int `json:"occurrences"`
}
