package model

// Fields is the feature-specific part of a record. Each content feature
// supplies its own schema with its own validation predicate; the collection
// protocol treats everything but the display order as opaque.
type Fields interface {
	// Validate reports the first missing or unusable required field.
	Validate() error

	// AssetFolder returns the blob folder key this record owns, or "" when the
	// record owns no blobs. All blobs under the key belong exclusively to this
	// record and are removed with it.
	AssetFolder() string
}

// Record is one entry of an ordered collection. ID is assigned by the document
// store on creation and immutable afterwards. A zero ID marks an unsaved draft.
type Record[F Fields] struct {
	ID     string `bson:"_id,omitempty" json:"id"`
	Order  int    `bson:"order" json:"order"`
	Fields F      `bson:",inline" json:"fields"`
}

// Draft reports whether the record has not been persisted yet.
func (r Record[F]) Draft() bool {
	return r.ID == ""
}

// DeleteSummary makes the non-atomicity of a cascade delete explicit: asset
// cleanup is best-effort and individual failures never abort the record
// deletion, so callers get counts instead of a swallowed log line.
type DeleteSummary struct {
	RecordDeleted bool `json:"recordDeleted"`
	AssetsDeleted int  `json:"assetsDeleted"`
	AssetsFailed  int  `json:"assetsFailed"`
}

// LocalizedText is the stored-string triple passed through to the site
// front end. No translation happens server-side.
type LocalizedText struct {
	Fr string `bson:"fr" json:"fr"`
	Ar string `bson:"ar" json:"ar"`
	En string `bson:"en" json:"en"`
}
