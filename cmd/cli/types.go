package main

// GenerateScriptResponse mirrors the server's script generation response.
type GenerateScriptResponse struct {
	Success  bool   `json:"success"`
	Script   string `json:"script"`
	Filename string `json:"filename"`
}

// GenerateBDDResponse mirrors the server's BDD generation response.
type GenerateBDDResponse struct {
	Success  bool   `json:"success"`
	BDDCases string `json:"bdd_cases"`
	Filename string `json:"filename"`
}

// generationResult is printed with --json.
type generationResult struct {
	Content  string `json:"content"`
	Filename string `json:"filename"`
	Source   string `json:"source,omitempty"`
}
