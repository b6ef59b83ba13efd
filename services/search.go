package services

import (
	"sort"
	"strings"

	"hotelpms/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

const (
	guestMatchThreshold    = 0.7
	roomTypeMatchThreshold = 0.5
)

var roomTypeAliases = map[string]models.RoomType{
	"single": models.RoomTypeSingle,
	"sgl":    models.RoomTypeSingle,
	"double": models.RoomTypeDouble,
	"dbl":    models.RoomTypeDouble,
	"twin":   models.RoomTypeDouble,
	"suite":  models.RoomTypeSuite,
	"ste":    models.RoomTypeSuite,
	"deluxe": models.RoomTypeDeluxe,
	"dlx":    models.RoomTypeDeluxe,
	"family": models.RoomTypeFamily,
	"fam":    models.RoomTypeFamily,
}

var roomTypeMatcher = func() *closestmatch.ClosestMatch {
	keys := make([]string, 0, len(roomTypeAliases))
	for k := range roomTypeAliases {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return closestmatch.New(keys, []int{2, 3})
}()

func normalizeInput(input string) string {
	return strings.ToLower(strings.TrimSpace(unidecode.Unidecode(input)))
}

func similarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/float64(maxLen)
}

// ParseRoomType maps free text such as "Deluxe", "dlx" or "suit" to a room type.
func ParseRoomType(input string) (models.RoomType, bool) {
	q := normalizeInput(input)
	if q == "" {
		return "", false
	}
	if t, ok := roomTypeAliases[q]; ok {
		return t, true
	}
	best := roomTypeMatcher.Closest(q)
	if best == "" || similarity(q, best) < roomTypeMatchThreshold {
		return "", false
	}
	return roomTypeAliases[best], true
}

// MatchGuests returns the ids of guests whose name or email matches query, best first.
// Matching ignores case and diacritics; near misses on names are accepted.
func MatchGuests(query string, guests []models.Guest) []uint {
	q := normalizeInput(query)
	if q == "" {
		return nil
	}
	type scored struct {
		id    uint
		score float64
	}
	var hits []scored
	for _, g := range guests {
		name := normalizeInput(g.FullName())
		email := normalizeInput(g.Email)
		score := 0.0
		switch {
		case strings.Contains(name, q) || strings.Contains(email, q):
			score = 1.0
		default:
			score = similarity(q, name)
			for _, part := range strings.Fields(name) {
				if s := similarity(q, part); s > score {
					score = s
				}
			}
		}
		if score >= guestMatchThreshold {
			hits = append(hits, scored{id: g.ID, score: score})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })
	ids := make([]uint, len(hits))
	for i, h := range hits {
		ids[i] = h.id
	}
	return ids
}
