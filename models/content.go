package models

// Source identifies the platform category a content item was discovered on.
type Source string

const (
	SourceVideo Source = "Video"
	SourceForum Source = "Forum"
	SourceNews  Source = "News"
)

// IsValid reports whether s is one of the three known source categories.
func (s Source) IsValid() bool {
	switch s {
	case SourceVideo, SourceForum, SourceNews:
		return true
	}
	return false
}

// Comment is a single top comment attached to a discovered item.
type Comment struct {
	Author string `json:"author"`
	Text   string `json:"text"`
}

// RawContentItem is one piece of discovered content as returned by the
// discovery collaborator. Field names match the collaborator JSON contract.
// Items are never mutated after discovery returns them.
type RawContentItem struct {
	Source       Source    `json:"source"`
	SourceID     string    `json:"sourceId"`
	Permalink    string    `json:"permalink"`
	Title        string    `json:"title"`
	Creator      string    `json:"creator"`
	PublishDate  string    `json:"publishDate"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	FullText     string    `json:"fullText"`
	TopComments  []Comment `json:"topComments"`
}
