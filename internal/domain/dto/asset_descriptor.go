package dto

// AssetDescriptor is the wire shape of a stored blob.
type AssetDescriptor struct {
	URL      string `json:"url"`
	Path     string `json:"path"`
	Size     int64  `json:"size"`
	FileType string `json:"type"`
	Uploaded int64  `json:"uploaded"`
}
