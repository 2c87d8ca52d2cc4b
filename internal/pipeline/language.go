package pipeline

// Marker characters that distinguish Ukrainian and Russian Cyrillic text.
var (
	ukrainianMarkers = map[rune]bool{'і': true, 'ї': true, 'є': true, 'ґ': true, 'І': true, 'Ї': true, 'Є': true, 'Ґ': true}
	russianMarkers   = map[rune]bool{'ы': true, 'э': true, 'ъ': true, 'Ы': true, 'Э': true, 'Ъ': true}
)

// DetectLanguage guesses the transcript language from marker characters
// unique to Ukrainian or Russian orthography. Counting is over distinct
// characters present, and Ukrainian is the default when neither dominates.
func DetectLanguage(text string) string {
	ukSeen := make(map[rune]bool)
	ruSeen := make(map[rune]bool)
	for _, r := range text {
		if ukrainianMarkers[r] {
			ukSeen[r] = true
		} else if russianMarkers[r] {
			ruSeen[r] = true
		}
	}

	if len(ruSeen) > len(ukSeen) {
		return "ru"
	}
	return "uk"
}
