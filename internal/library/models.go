package library

import "time"

// RatingRejected is the normalized rating for photos darktable marks rejected.
// The catalog stores rejection as flag value 6 in the low rating bits; XMP
// sidecars use -1.
const RatingRejected = -1

// ColorLabel is one of darktable's five color labels.
type ColorLabel int

const (
	LabelRed ColorLabel = iota
	LabelYellow
	LabelGreen
	LabelBlue
	LabelPurple
)

func (c ColorLabel) String() string {
	switch c {
	case LabelRed:
		return "red"
	case LabelYellow:
		return "yellow"
	case LabelGreen:
		return "green"
	case LabelBlue:
		return "blue"
	case LabelPurple:
		return "purple"
	default:
		return "unknown"
	}
}

// ColorLabelFromIndex maps a catalog color index to a label.
func ColorLabelFromIndex(index int) (ColorLabel, bool) {
	if index < int(LabelRed) || index > int(LabelPurple) {
		return 0, false
	}
	return ColorLabel(index), true
}

// Photo is one catalog row: a managed image and the metadata the catalog
// stores for it.
type Photo struct {
	ID          int64
	Filepath    string
	Version     int
	Rating      int // -1 rejected, 0 unrated, 1..5 stars
	Tags        []string
	ColorLabels []ColorLabel
	HistoryEnd  int
	Position    int64
	FilmRollID  int64
	TakenAt     time.Time
}

// HasHistory reports whether the catalog records an edit history for the photo.
func (p *Photo) HasHistory() bool {
	return p.HistoryEnd > 0
}

// Tag is a darktable tag from data.db.
type Tag struct {
	ID    int64
	Name  string
	Usage int
}

// FilmRoll is a darktable film roll (an imported directory).
type FilmRoll struct {
	ID        int64
	Directory string
	Photos    int
}
