package model

import "errors"

// Collection names in the document store, one per content feature.
const (
	CreativeCategoryCollection = "creativeCategories"
	CreativeVideoCollection    = "creativeVideos"
	DesignSectionCollection    = "designSections"
	DesignItemCollection       = "designItems"
	ThemeCategoryCollection    = "devThemeCategories"
	DevThemeCollection         = "devThemes"
	SponsorImageCollection     = "sponsorImages"
	SocialLinkCollection       = "socialVideos"
	SettingsCollection         = "settings"
)

// CreativeCategory groups creative videos under one storage folder. Folder is
// the lower-cased key of the video folder the category owns.
type CreativeCategory struct {
	LabelKey string        `bson:"labelKey" json:"labelKey"`
	Folder   string        `bson:"folder" json:"folder"`
	Title    LocalizedText `bson:"title" json:"title"`
}

func (c CreativeCategory) Validate() error {
	if c.LabelKey == "" {
		return errors.New("labelKey is required")
	}
	if c.Folder == "" {
		return errors.New("folder is required")
	}

	return nil
}

func (c CreativeCategory) AssetFolder() string { return c.Folder }

// CreativeVideo is one uploaded video inside a category.
type CreativeVideo struct {
	CategoryID  string `bson:"categoryId" json:"categoryId"`
	URL         string `bson:"url" json:"url"`
	Title       string `bson:"title,omitempty" json:"title,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

func (v CreativeVideo) Validate() error {
	if v.URL == "" {
		return errors.New("url is required")
	}

	return nil
}

func (v CreativeVideo) AssetFolder() string { return "" }

// DesignSection is a top-level grouping on the design page.
type DesignSection struct {
	TitleKey string `bson:"titleKey" json:"titleKey"`
	IconType string `bson:"iconType" json:"iconType"` // Brush, Layout or Camera
}

func (s DesignSection) Validate() error {
	if s.TitleKey == "" {
		return errors.New("titleKey is required")
	}
	if s.IconType == "" {
		return errors.New("iconType is required")
	}

	return nil
}

func (s DesignSection) AssetFolder() string { return "" }

// DesignItem belongs to a section and owns an image gallery keyed by
// GalleryKey.
type DesignItem struct {
	SectionID  string `bson:"sectionId" json:"sectionId"`
	LabelKey   string `bson:"labelKey" json:"labelKey"`
	GalleryKey string `bson:"galleryKey" json:"galleryKey"`
}

func (i DesignItem) Validate() error {
	if i.LabelKey == "" {
		return errors.New("labelKey is required")
	}
	if i.GalleryKey == "" {
		return errors.New("galleryKey is required")
	}

	return nil
}

func (i DesignItem) AssetFolder() string { return i.GalleryKey }

// ThemeCategory groups developer themes. Titles are stored per language, not
// as a full triple, matching what the site renders.
type ThemeCategory struct {
	TitleFr string `bson:"titleFr" json:"titleFr"`
	TitleAr string `bson:"titleAr" json:"titleAr"`
}

func (c ThemeCategory) Validate() error {
	if c.TitleFr == "" {
		return errors.New("titleFr is required")
	}
	if c.TitleAr == "" {
		return errors.New("titleAr is required")
	}

	return nil
}

func (c ThemeCategory) AssetFolder() string { return "" }

// DevTheme is one theme inside a theme category.
type DevTheme struct {
	CategoryID string `bson:"categoryId" json:"categoryId"`
	Title      string `bson:"title" json:"title"`
	PreviewURL string `bson:"previewUrl" json:"previewUrl"`
	Thumbnail  string `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
}

func (d DevTheme) Validate() error {
	if d.Title == "" {
		return errors.New("title is required")
	}
	if d.PreviewURL == "" {
		return errors.New("previewUrl is required")
	}

	return nil
}

func (d DevTheme) AssetFolder() string { return "" }

// SponsorImage is one sponsor logo on the sponsoring page.
type SponsorImage struct {
	ImageURL string `bson:"imageUrl" json:"imageUrl"`
	Name     string `bson:"name,omitempty" json:"name,omitempty"`
}

func (s SponsorImage) Validate() error {
	if s.ImageURL == "" {
		return errors.New("imageUrl is required")
	}

	return nil
}

func (s SponsorImage) AssetFolder() string { return "" }

// SocialLink is one entry of the social page.
type SocialLink struct {
	URL   string `bson:"url" json:"url"`
	Title string `bson:"title,omitempty" json:"title,omitempty"`
}

func (s SocialLink) Validate() error {
	if s.URL == "" {
		return errors.New("url is required")
	}

	return nil
}

func (s SocialLink) AssetFolder() string { return "" }
