package documents

import (
	"arogyanetra-service/internal/app/models"
	"arogyanetra-service/internal/pkg/constvars"
	"arogyanetra-service/internal/pkg/dto/responses"
	"arogyanetra-service/internal/pkg/utils"
	"sort"
	"strings"
	"time"
)

// Filters are ANDed. Empty fields do not filter.
type Filters struct {
	Name     string
	Type     string
	Category string
	Date     string
	Month    string
	Year     string
	// Location is the zone dates are compared in. Nil means UTC.
	Location *time.Location
}

type Sort struct {
	By    string
	Order string
}

// Project filters and sorts docs without touching the input slice. Equal
// keys keep their upstream order.
func Project(docs []models.Document, filters Filters, order Sort) []models.Document {
	location := filters.Location
	if location == nil {
		location = time.UTC
	}

	result := make([]models.Document, 0, len(docs))
	for _, doc := range docs {
		if matches(doc, filters, location) {
			result = append(result, doc)
		}
	}

	less := lessFunc(order.By)
	desc := order.Order == constvars.SortOrderDesc || (order.Order == "" && (order.By == "" || order.By == constvars.DocumentSortByDate))
	sort.SliceStable(result, func(i, j int) bool {
		if desc {
			return less(result[j], result[i])
		}
		return less(result[i], result[j])
	})
	return result
}

// Group buckets docs by category in order of first appearance.
func Group(docs []models.Document) []responses.DocumentGroup {
	groups := make([]responses.DocumentGroup, 0)
	index := make(map[string]int)
	for _, doc := range docs {
		category := doc.Category
		if category == "" {
			category = constvars.DocumentCategoryOther
		}
		i, ok := index[category]
		if !ok {
			i = len(groups)
			index[category] = i
			groups = append(groups, responses.DocumentGroup{Category: category, Documents: make([]models.Document, 0)})
		}
		groups[i].Documents = append(groups[i].Documents, doc)
	}
	return groups
}

func matches(doc models.Document, filters Filters, location *time.Location) bool {
	if filters.Name != "" && !strings.Contains(strings.ToLower(doc.FileName), strings.ToLower(filters.Name)) {
		return false
	}
	if filters.Type != "" && !matchesType(doc.FileType, filters.Type) {
		return false
	}
	if filters.Category != "" && !strings.EqualFold(doc.Category, filters.Category) {
		return false
	}

	uploaded := doc.UploadedAt.In(location)
	if filters.Date != "" && uploaded.Format("2006-01-02") != filters.Date {
		return false
	}
	if filters.Month != "" && uploaded.Format("2006-01") != filters.Month {
		return false
	}
	if filters.Year != "" && uploaded.Format("2006") != filters.Year {
		return false
	}
	return true
}

// matchesType accepts either a full MIME type or one of the toggle names.
func matchesType(fileType, filter string) bool {
	switch filter {
	case constvars.FileTypeTogglePDF, constvars.FileTypeToggleImage, constvars.FileTypeToggleDoc:
		return utils.MatchesFileTypeToggles(fileType, []string{filter})
	}
	return strings.EqualFold(fileType, filter)
}

func lessFunc(by string) func(a, b models.Document) bool {
	switch by {
	case constvars.DocumentSortByName:
		return func(a, b models.Document) bool {
			return strings.ToLower(a.FileName) < strings.ToLower(b.FileName)
		}
	case constvars.DocumentSortByType:
		return func(a, b models.Document) bool {
			return strings.ToLower(a.FileType) < strings.ToLower(b.FileType)
		}
	case constvars.DocumentSortByCategory:
		return func(a, b models.Document) bool {
			return a.Category < b.Category
		}
	}
	return func(a, b models.Document) bool {
		return a.UploadedAt.Before(b.UploadedAt)
	}
}
