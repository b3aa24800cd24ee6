package models

// FileRecord describes one uploaded payload. Title is the user-supplied
// display name; Filename is the generated on-disk name and is never derived
// from user input.
type FileRecord struct {
	Title    string `json:"title"`
	Filename string `json:"filename"`
}
