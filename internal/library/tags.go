package library

import (
	"context"
	"fmt"
)

// Tags returns all tags from data.db with their usage counts, ordered by name.
func (l *Library) Tags(ctx context.Context) ([]Tag, error) {
	rows, err := l.db.QueryContext(ctx, `
SELECT t.id, t.name,
       (SELECT COUNT(*) FROM tagged_images ti WHERE ti.tagid = t.id) AS usage
FROM data.tags t
ORDER BY t.name`)
	if err != nil {
		return nil, fmt.Errorf("query tags: %w", err)
	}
	defer rows.Close()

	var tags []Tag
	for rows.Next() {
		var tag Tag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.Usage); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

// FilmRolls returns all film rolls with their photo counts, ordered by folder.
func (l *Library) FilmRolls(ctx context.Context) ([]FilmRoll, error) {
	rows, err := l.db.QueryContext(ctx, `
SELECT f.id, f.folder,
       (SELECT COUNT(*) FROM images i WHERE i.film_id = f.id) AS photos
FROM film_rolls f
ORDER BY f.folder`)
	if err != nil {
		return nil, fmt.Errorf("query film rolls: %w", err)
	}
	defer rows.Close()

	var rolls []FilmRoll
	for rows.Next() {
		var roll FilmRoll
		if err := rows.Scan(&roll.ID, &roll.Directory, &roll.Photos); err != nil {
			return nil, fmt.Errorf("scan film roll: %w", err)
		}
		rolls = append(rolls, roll)
	}
	return rolls, rows.Err()
}
