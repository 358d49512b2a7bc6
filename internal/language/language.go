package language

// Language is a supported transcription/translation language.
type Language struct {
	Code string // ISO 639-1 code (e.g., "en", "es", "zh")
	Name string // English name (e.g., "English", "Spanish")
}

// Auto represents auto-detection - used when the caller doesn't pin a language.
var Auto = Language{Code: "", Name: "Auto-detect"}

// languages is the master list, derived from the Whisper supported set.
var languages = []Language{
	{Code: "af", Name: "Afrikaans"},
	{Code: "ar", Name: "Arabic"},
	{Code: "hy", Name: "Armenian"},
	{Code: "az", Name: "Azerbaijani"},
	{Code: "be", Name: "Belarusian"},
	{Code: "bs", Name: "Bosnian"},
	{Code: "bg", Name: "Bulgarian"},
	{Code: "ca", Name: "Catalan"},
	{Code: "zh", Name: "Chinese"},
	{Code: "hr", Name: "Croatian"},
	{Code: "cs", Name: "Czech"},
	{Code: "da", Name: "Danish"},
	{Code: "nl", Name: "Dutch"},
	{Code: "en", Name: "English"},
	{Code: "et", Name: "Estonian"},
	{Code: "fi", Name: "Finnish"},
	{Code: "fr", Name: "French"},
	{Code: "gl", Name: "Galician"},
	{Code: "de", Name: "German"},
	{Code: "el", Name: "Greek"},
	{Code: "he", Name: "Hebrew"},
	{Code: "hi", Name: "Hindi"},
	{Code: "hu", Name: "Hungarian"},
	{Code: "is", Name: "Icelandic"},
	{Code: "id", Name: "Indonesian"},
	{Code: "it", Name: "Italian"},
	{Code: "ja", Name: "Japanese"},
	{Code: "kn", Name: "Kannada"},
	{Code: "kk", Name: "Kazakh"},
	{Code: "ko", Name: "Korean"},
	{Code: "lv", Name: "Latvian"},
	{Code: "lt", Name: "Lithuanian"},
	{Code: "mk", Name: "Macedonian"},
	{Code: "ms", Name: "Malay"},
	{Code: "mr", Name: "Marathi"},
	{Code: "mi", Name: "Maori"},
	{Code: "ne", Name: "Nepali"},
	{Code: "no", Name: "Norwegian"},
	{Code: "fa", Name: "Persian"},
	{Code: "pl", Name: "Polish"},
	{Code: "pt", Name: "Portuguese"},
	{Code: "ro", Name: "Romanian"},
	{Code: "ru", Name: "Russian"},
	{Code: "sr", Name: "Serbian"},
	{Code: "sk", Name: "Slovak"},
	{Code: "sl", Name: "Slovenian"},
	{Code: "es", Name: "Spanish"},
	{Code: "sw", Name: "Swahili"},
	{Code: "sv", Name: "Swedish"},
	{Code: "tl", Name: "Tagalog"},
	{Code: "ta", Name: "Tamil"},
	{Code: "th", Name: "Thai"},
	{Code: "tr", Name: "Turkish"},
	{Code: "uk", Name: "Ukrainian"},
	{Code: "ur", Name: "Urdu"},
	{Code: "vi", Name: "Vietnamese"},
	{Code: "cy", Name: "Welsh"},
}

// codeIndex maps language codes to their Language structs for fast lookup
var codeIndex map[string]Language

func init() {
	codeIndex = make(map[string]Language, len(languages)+1)
	codeIndex[""] = Auto
	for _, lang := range languages {
		codeIndex[lang.Code] = lang
	}
}

// FromCode returns the Language for the given code.
// Returns Auto if code is not found.
func FromCode(code string) Language {
	if lang, ok := codeIndex[code]; ok {
		return lang
	}
	return Auto
}

// Normalize maps the wire-level hint to the engine-level one: "auto" and ""
// both mean "let the engine detect the language".
func Normalize(code string) string {
	if code == "auto" {
		return ""
	}
	return code
}

// IsValidCode returns true if the code is recognized, including "" and "auto"
// for auto-detection.
func IsValidCode(code string) bool {
	_, ok := codeIndex[Normalize(code)]
	return ok
}

// Codes returns all language codes (excluding the empty auto code).
func Codes() []string {
	codes := make([]string, len(languages))
	for i, lang := range languages {
		codes[i] = lang.Code
	}
	return codes
}
