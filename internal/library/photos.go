package library

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// concatSeparator keeps GROUP_CONCAT output splittable even when tag names
// contain commas.
const concatSeparator = "#~~~#"

// darktable stores capture times as microseconds since 0001-01-01 UTC.
const catalogEpochOffsetSeconds = 62135596800

const photoQuery = `
SELECT
    images.id,
    rtrim(film_rolls.folder, '/') || '/' || images.filename AS filepath,
    images.version,
    images.flags & 0x7 AS rating,
    images.history_end,
    images.position,
    images.datetime_taken,
    film_rolls.id AS film_id,
    (SELECT GROUP_CONCAT(t.name, ?)
       FROM tagged_images ti
       JOIN data.tags t ON t.id = ti.tagid
      WHERE ti.imgid = images.id) AS tag_names,
    (SELECT GROUP_CONCAT(cl.color, ?)
       FROM color_labels cl
      WHERE cl.imgid = images.id) AS colors
FROM images
JOIN film_rolls ON film_rolls.id = images.film_id
ORDER BY images.id`

// Photos returns every catalog photo ordered by identifier. The result is a
// fresh snapshot per call; there is no cursor to reuse.
func (l *Library) Photos(ctx context.Context) ([]*Photo, error) {
	rows, err := l.db.QueryContext(ctx, photoQuery, concatSeparator, concatSeparator)
	if err != nil {
		return nil, fmt.Errorf("query photos: %w", err)
	}
	defer rows.Close()

	var photos []*Photo
	for rows.Next() {
		photo, err := scanPhoto(rows)
		if err != nil {
			return nil, err
		}
		photos = append(photos, photo)
	}
	return photos, rows.Err()
}

func scanPhoto(scanner interface{ Scan(dest ...any) error }) (*Photo, error) {
	var (
		id         int64
		path       string
		version    int
		rating     int
		historyEnd sql.NullInt64
		position   sql.NullInt64
		takenRaw   sql.NullInt64
		filmID     int64
		tagNames   sql.NullString
		colors     sql.NullString
	)

	if err := scanner.Scan(&id, &path, &version, &rating, &historyEnd, &position, &takenRaw, &filmID, &tagNames, &colors); err != nil {
		return nil, fmt.Errorf("scan photo: %w", err)
	}

	photo := &Photo{
		ID:         id,
		Filepath:   filepath.Clean(path),
		Version:    version,
		Rating:     normalizeRating(rating),
		HistoryEnd: int(historyEnd.Int64),
		Position:   position.Int64,
		FilmRollID: filmID,
		TakenAt:    parseTakenAt(takenRaw),
	}
	if tagNames.Valid {
		photo.Tags = splitConcat(tagNames.String)
	}
	if colors.Valid {
		for _, raw := range splitConcat(colors.String) {
			index, err := strconv.Atoi(raw)
			if err != nil {
				continue
			}
			if label, ok := ColorLabelFromIndex(index); ok {
				photo.ColorLabels = append(photo.ColorLabels, label)
			}
		}
	}
	return photo, nil
}

// normalizeRating maps the catalog's low rating bits to the sidecar scale:
// 6 means rejected and becomes -1, everything else is the star count.
func normalizeRating(bits int) int {
	if bits == 6 {
		return RatingRejected
	}
	if bits < 0 || bits > 5 {
		return 0
	}
	return bits
}

func parseTakenAt(raw sql.NullInt64) time.Time {
	if !raw.Valid || raw.Int64 <= 0 {
		return time.Time{}
	}
	seconds := raw.Int64 / 1_000_000
	if seconds <= catalogEpochOffsetSeconds {
		return time.Time{}
	}
	return time.Unix(seconds-catalogEpochOffsetSeconds, 0).UTC()
}

func splitConcat(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, concatSeparator)
	out := parts[:0]
	for _, part := range parts {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
