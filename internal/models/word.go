package models

type Word struct {
	ID                     int64   `json:"id"`
	Text                   string  `json:"text"`
	Meaning                string  `json:"meaning"`
	GradeLevel             *int    `json:"grade_level,omitempty"`
	Pronunciation          *string `json:"pronunciation,omitempty"`
	EnglishAudioURL        *string `json:"english_audio_url,omitempty"`
	KoreanAudioURL         *string `json:"korean_audio_url,omitempty"`
	ExampleSentenceEnglish *string `json:"example_sentence_english,omitempty"`
	ExampleSentenceKorean  *string `json:"example_sentence_korean,omitempty"`
}

type Language string

const (
	LangEnglish Language = "en"
	LangKorean  Language = "ko"
)

func (l Language) Valid() bool {
	return l == LangEnglish || l == LangKorean
}

type ListenAction struct {
	Language Language `json:"language"`
}

// DictionaryEntry is the subset of the public dictionary response used to
// fill in pronunciation and examples the backend does not carry.
type DictionaryEntry struct {
	SourceText    string `json:"source-text"`
	Pronunciation struct {
		SourceTextPhonetic string `json:"source-text-phonetic"`
		SourceTextAudio    string `json:"source-text-audio"`
	} `json:"pronunciation"`
	Definitions []struct {
		PartOfSpeech string `json:"part-of-speech"`
		Definition   string `json:"definition"`
		Example      string `json:"example"`
	} `json:"definitions"`
}
