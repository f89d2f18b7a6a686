package normalize

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a normalization progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Recorder receives the changes made to the file system. It is optional;
// history.Journal implements it.
type Recorder interface {
	RecordRename(albumDir, from, to string) error
	RecordAlbum(dir, album, artist string, tracks int, numberingOK bool) error
}
