package model

type IdentifyRequestBody struct {
	Notes []int `json:"notes"`
}

type ChordResponse struct {
	Name      string `json:"name"`
	Root      string `json:"root"`
	Type      string `json:"type"`
	Symbol    string `json:"symbol"`
	Inversion int    `json:"inversion"`
	Bass      string `json:"bass,omitempty"`
}

// IdentifyResponse carries a null chord when nothing matched; "no
// chord" is a normal answer, not an error.
type IdentifyResponse struct {
	Chord *ChordResponse `json:"chord"`
}

type ChordTypeResponse struct {
	Name      string `json:"name"`
	Symbol    string `json:"symbol"`
	Intervals []int  `json:"intervals"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
