package catalog

import (
	models "github.com/astanton/launchbook/internal"
)

// DefaultPageSize applies when a caller does not request a page size.
const DefaultPageSize = 20

// Paginate slices one page out of launches, which must already be in the
// order pages should be served. When after names the cursor of a launch in
// the list, the page starts just past it; an unknown or empty cursor starts
// the page at the beginning. The page cursor is the cursor of the last
// launch in the page.
func Paginate(launches []models.Launch, after string, pageSize int) models.LaunchConnection {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	start := 0
	if after != "" {
		if i := cursorIndex(launches, after); i >= 0 {
			start = i + 1
		}
	}

	end := start + pageSize
	if end > len(launches) {
		end = len(launches)
	}

	page := launches[start:end]
	conn := models.LaunchConnection{
		HasMore:  end < len(launches),
		Launches: page,
	}
	if len(page) > 0 {
		conn.Cursor = page[len(page)-1].Cursor
	}
	return conn
}

// Reversed returns a newest-first copy of a chronological launch list.
func Reversed(launches []models.Launch) []models.Launch {
	out := make([]models.Launch, len(launches))
	for i, l := range launches {
		out[len(launches)-1-i] = l
	}
	return out
}

func cursorIndex(launches []models.Launch, cursor string) int {
	for i := range launches {
		if launches[i].Cursor == cursor {
			return i
		}
	}
	return -1
}
