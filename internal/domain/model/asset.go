package model

// Asset is one stored blob. StoragePath is the '/'-delimited location inside
// the bucket; DownloadURL is the issued URL that encodes the path and can be
// inverted to it for deletion.
type Asset struct {
	StoragePath string `json:"path"`
	DownloadURL string `json:"url"`
	Size        int64  `json:"size"`
	ContentType string `json:"type"`
}
