package presentation

const (
	AuthKey      = "Authorization"
	BearerPrefix = "Bearer "
	AdminKey     = "admin"
	ReasonTag    = "X-Reason"

	IDParam     = "id"
	FolderParam = "folder"
	PageParam   = "page"
	BucketParam = "bucket"
	ObjectParam = "object"
)
