package entity

type ChatResult struct {
	Answer     string `json:"answer"`
	CitedNotes []Note `json:"citedNotes"`
}

type NoteCreatedEvent struct {
	CreatedNote Note `json:"createdNote"`
}
