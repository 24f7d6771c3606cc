package editor

// Clipboard provides editor-level clipboard integration.
//
// Read and write failures are reported through RejectedMsg; they never
// change the section.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
