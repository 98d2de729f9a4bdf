package pcp

// Example is a named, ready-to-solve instance.
type Example struct {
	Name  string `json:"name" yaml:"name"`
	Text  string `json:"text" yaml:"text"`
	Pairs []Pair `json:"pairs" yaml:"pairs"`
}

// Examples returns the built-in demonstration instances. The slice is freshly
// allocated on each call.
func Examples() []Example {
	return []Example{
		{
			Name:  "classic",
			Text:  "Solve the PCP: (a,ab), (ba,a), (aba,b).",
			Pairs: []Pair{{"a", "ab"}, {"ba", "a"}, {"aba", "b"}},
		},
		{
			Name:  "binary-short",
			Text:  "Is there a solution to the PCP with pairs (0,01) (01,1)?",
			Pairs: []Pair{{"0", "01"}, {"01", "1"}},
		},
		{
			Name:  "binary-long",
			Text:  "Solve the Post correspondence problem with pairs: (1, 101), (10, 00), (011, 11).",
			Pairs: []Pair{{"1", "101"}, {"10", "00"}, {"011", "11"}},
		},
	}
}
