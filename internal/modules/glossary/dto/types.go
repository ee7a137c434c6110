package dto

type TermOutput struct {
	Key      string `json:"key"`
	Display  string `json:"display"`
	ReadAs   string `json:"read_as"`
	Full     string `json:"full"`
	Simple   string `json:"simple"`
	Function string `json:"function"`
	Example  string `json:"example"`
}

type SearchInput struct {
	Query string
}
