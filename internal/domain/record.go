package domain

// Record is implemented by every entity managed through the generic
// catalog service.
type Record interface {
	RecordID() int64
	RecordStatus() string
}

// Patch is implemented by every partial-update type. PatchedStatus returns
// the requested status, or nil when the patch leaves it alone.
type Patch interface {
	PatchedStatus() *string
}

// MediaOwner is implemented by entities that reference externally hosted
// files. MediaKeys returns the storage keys of every referenced file; empty
// keys are skipped by callers.
type MediaOwner interface {
	MediaKeys() []string
}

// MediaItem is one externally hosted image or video: its public URL and the
// key used to remove it from storage.
type MediaItem struct {
	URL      string `json:"url" validate:"omitempty,url"`
	PublicID string `json:"publicId"`
}

// QA is a question/answer pair embedded in trips.
type QA struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer"`
}

func mediaKeys(keys []string, items ...[]MediaItem) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k != "" {
			out = append(out, k)
		}
	}
	for _, list := range items {
		for _, m := range list {
			if m.PublicID != "" {
				out = append(out, m.PublicID)
			}
		}
	}
	return out
}
