package driven

// SavePathPrompter obtains a destination for a "save as" operation.
type SavePathPrompter interface {
	// PromptSavePath asks for a path. suggested may be empty.
	// ok is false if the user cancelled.
	PromptSavePath(suggested string) (path string, ok bool)
}
