package models

// User is a registered account. The JSON tags are the persisted document
// format and must not change without migrating existing data files.
type User struct {
	ScreenName        string `json:"screen_name"`
	PasswordAlgorithm string `json:"password_algorithm"`
	HashedPassword    string `json:"hashed_password"`
	DataDirName       string `json:"data_dir_name"`
}
