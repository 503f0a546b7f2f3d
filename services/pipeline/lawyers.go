// Package pipeline holds the pure filter, sort and paginate transformations
// applied to the marketplace datasets.
package pipeline

import (
	"sort"
	"strings"

	"legali_app_go/models"
)

// Pagination defaults
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// Lawyer sort keys
const (
	SortByRating     = "rating"
	SortByPrice      = "price"
	SortByExperience = "experience"
	SortByReviews    = "reviews"
)

// Sort directions
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// PriceRange bounds an hourly rate, inclusive
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// SearchParams holds the lawyer search criteria. Zero values disable a filter.
type SearchParams struct {
	Query        string      `json:"query,omitempty" query:"query"`
	CaseType     string      `json:"caseType,omitempty" query:"caseType"`
	Specialty    string      `json:"specialty,omitempty" query:"specialty"`
	Location     string      `json:"location,omitempty" query:"location"`
	Budget       *PriceRange `json:"budget,omitempty"`
	Rating       float64     `json:"rating,omitempty" query:"rating"`
	Experience   int         `json:"experience,omitempty" query:"experience"`
	Language     string      `json:"language,omitempty" query:"language"`
	Availability string      `json:"availability,omitempty" query:"availability"`
	Page         int         `json:"page,omitempty" query:"page"`
	Limit        int         `json:"limit,omitempty" query:"limit"`
	SortBy       string      `json:"sortBy,omitempty" query:"sortBy"`
	SortOrder    string      `json:"sortOrder,omitempty" query:"sortOrder"`
}

// LawyerPage is one page of lawyer search results
type LawyerPage struct {
	Lawyers    []models.Lawyer `json:"lawyers"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"totalPages"`
}

// IsValidLawyerSort checks if the key is a supported lawyer sort key
func IsValidLawyerSort(key string) bool {
	switch key {
	case SortByRating, SortByPrice, SortByExperience, SortByReviews:
		return true
	}
	return false
}

// SearchLawyers filters, sorts and paginates lawyers. The input slice is not modified.
func SearchLawyers(lawyers []models.Lawyer, params SearchParams) LawyerPage {
	filtered := make([]models.Lawyer, 0, len(lawyers))
	for _, l := range lawyers {
		if matchesLawyer(l, params) {
			filtered = append(filtered, l)
		}
	}

	SortLawyers(filtered, params.SortBy, params.SortOrder)

	items, page, limit, pages := Paginate(filtered, params.Page, params.Limit)
	return LawyerPage{
		Lawyers:    items,
		Total:      len(filtered),
		Page:       page,
		Limit:      limit,
		TotalPages: pages,
	}
}

func matchesLawyer(l models.Lawyer, p SearchParams) bool {
	if p.Query != "" {
		q := strings.ToLower(p.Query)
		if !containsFold(l.Name, q) && !anyContains(l.Specialties, q) && !containsFold(l.Bio, q) {
			return false
		}
	}
	if p.CaseType != "" && !anyContains(l.Specialties, strings.ToLower(p.CaseType)) {
		return false
	}
	if p.Specialty != "" && !anyEqualFold(l.Specialties, p.Specialty) {
		return false
	}
	if p.Location != "" && !anyContains(l.Jurisdiction, strings.ToLower(p.Location)) {
		return false
	}
	if p.Budget != nil && (l.HourlyRate < p.Budget.Min || l.HourlyRate > p.Budget.Max) {
		return false
	}
	if p.Rating > 0 && l.Rating < p.Rating {
		return false
	}
	if p.Experience > 0 && l.Experience < p.Experience {
		return false
	}
	if p.Language != "" && !anyContains(l.Languages, strings.ToLower(p.Language)) {
		return false
	}
	if p.Availability != "" && l.Availability != p.Availability {
		return false
	}
	return true
}

// SortLawyers sorts in place by a single key. Unknown keys leave the order untouched.
func SortLawyers(lawyers []models.Lawyer, sortBy, sortOrder string) {
	var key func(models.Lawyer) float64
	switch sortBy {
	case SortByRating:
		key = func(l models.Lawyer) float64 { return l.Rating }
	case SortByPrice:
		key = func(l models.Lawyer) float64 { return l.HourlyRate }
	case SortByExperience:
		key = func(l models.Lawyer) float64 { return float64(l.Experience) }
	case SortByReviews:
		key = func(l models.Lawyer) float64 { return float64(l.ReviewCount) }
	default:
		return
	}

	desc := sortOrder == SortDesc
	sort.SliceStable(lawyers, func(i, j int) bool {
		if desc {
			return key(lawyers[i]) > key(lawyers[j])
		}
		return key(lawyers[i]) < key(lawyers[j])
	})
}

// FeaturedLawyers returns up to six lawyers rated 4.7 or higher, best first
func FeaturedLawyers(lawyers []models.Lawyer) []models.Lawyer {
	const (
		minRating = 4.7
		maxCount  = 6
	)

	featured := make([]models.Lawyer, 0, maxCount)
	for _, l := range lawyers {
		if l.Rating >= minRating {
			featured = append(featured, l)
		}
	}
	SortLawyers(featured, SortByRating, SortDesc)
	if len(featured) > maxCount {
		featured = featured[:maxCount]
	}
	return featured
}

// Paginate returns the items of a 1-based page. Page defaults to 1 and limit
// defaults to DefaultPageSize, capped at MaxPageSize.
func Paginate[T any](items []T, page, limit int) ([]T, int, int, int) {
	page, limit = normalizePage(page, limit)
	start, end := pageBounds(len(items), page, limit)
	return items[start:end], page, limit, totalPages(len(items), limit)
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}

func pageBounds(total, page, limit int) (int, int) {
	// clamp before multiplying so huge pages cannot overflow
	if page-1 > total/limit {
		return total, total
	}
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return start, end
}

func totalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

func containsFold(s, lowerSubstr string) bool {
	return strings.Contains(strings.ToLower(s), lowerSubstr)
}

func anyContains(values []string, lowerSubstr string) bool {
	for _, v := range values {
		if containsFold(v, lowerSubstr) {
			return true
		}
	}
	return false
}

func anyEqualFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}
