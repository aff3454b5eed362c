package curriculum

// Level is one step of the Orton-Gillingham sequence. Lookups are 1-based.
type Level struct {
	Level    int
	Phonemes []string
	Words    []string
	Focus    string
	Mastery  int
}

type Sequence struct {
	levels []Level
}

func DefaultSequence() *Sequence {
	return &Sequence{levels: []Level{
		{
			Level:    1,
			Phonemes: []string{"m", "s", "t", "a", "p"},
			Words:    []string{"mat", "sat", "tap", "map", "pat"},
			Focus:    "Initial consonants and short a",
			Mastery:  80,
		},
		{
			Level:    2,
			Phonemes: []string{"i", "n", "d", "f", "o"},
			Words:    []string{"sit", "pin", "dot", "fan", "nod"},
			Focus:    "Short i and o with new consonants",
			Mastery:  80,
		},
		{
			Level:    3,
			Phonemes: []string{"sh", "ch", "th", "ck"},
			Words:    []string{"ship", "chat", "thin", "sock"},
			Focus:    "Consonant digraphs",
			Mastery:  85,
		},
	}}
}

func (s *Sequence) Count() int {
	return len(s.levels)
}

func (s *Sequence) Lookup(n int) (*Level, bool) {
	if n < 1 || n > len(s.levels) {
		return nil, false
	}
	return &s.levels[n-1], true
}

func (s *Sequence) Levels() []Level {
	return s.levels
}
