package models

// FileMeta points to a binary payload stored on the filesystem outside the
// document store. Path is the public relative path under /uploads.
type FileMeta struct {
	OriginalName string `json:"originalName"`
	StoredName   string `json:"storedName"`
	Path         string `json:"path"`
	MimeType     string `json:"mimeType"`
	Size         int64  `json:"size"`
}
