// File: /listing/listing.go

// Package listing is the derived view over an already-fetched vehicle set:
// sorting, pagination and the side-by-side compare selection. It performs
// no I/O; callers hand it a result set and read pages back out.
package listing

import (
	"errors"
	"sort"

	"autohub-api/models"
)

const (
	DefaultPageSize = 9
	MaxCompare      = 3
)

// ErrCompareFull is the user-visible rejection when a fourth vehicle is
// toggled into a full compare set. The set is left unchanged.
var ErrCompareFull = errors.New("compare selection is limited to 3 vehicles")

// ErrNotInView rejects compare toggles for vehicles outside the current
// result set.
var ErrNotInView = errors.New("vehicle is not part of the current results")

type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceAsc  SortKey = "priceAsc"
	SortPriceDesc SortKey = "priceDesc"
	SortYearAsc   SortKey = "yearAsc"
	SortYearDesc  SortKey = "yearDesc"
)

// ParseSortKey maps a query-string value to a sort key. Unknown values fall
// back to newest-first rather than failing the request.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortPriceAsc, SortPriceDesc, SortYearAsc, SortYearDesc, SortNewest:
		return SortKey(s)
	}
	return SortNewest
}

// View holds one session's sort key, current page and compare selection
// over the last fetched vehicle sequence.
type View struct {
	vehicles []models.Vehicle
	sortKey  SortKey
	page     int
	pageSize int
	compare  []string // selected vehicle ids, insertion order
}

func NewView(pageSize int) *View {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &View{
		sortKey:  SortNewest,
		page:     1,
		pageSize: pageSize,
	}
}

// SetVehicles replaces the underlying result set, e.g. after a filter
// change. The page is clamped into the new bounds and compare entries that
// are no longer part of the set are dropped.
func (v *View) SetVehicles(vehicles []models.Vehicle) {
	v.vehicles = make([]models.Vehicle, len(vehicles))
	copy(v.vehicles, vehicles)
	v.resort()
	v.page = clamp(v.page, 1, v.TotalPages())

	present := make(map[string]bool, len(v.vehicles))
	for _, vehicle := range v.vehicles {
		present[vehicle.ID] = true
	}
	kept := v.compare[:0]
	for _, id := range v.compare {
		if present[id] {
			kept = append(kept, id)
		}
	}
	v.compare = kept
}

// SetSort changes the ordering and moves back to the first page. The
// compare selection is independent of ordering and survives.
func (v *View) SetSort(key SortKey) {
	v.sortKey = ParseSortKey(string(key))
	v.resort()
	v.page = 1
}

func (v *View) Sort() SortKey { return v.sortKey }

func (v *View) TotalPages() int {
	if len(v.vehicles) == 0 {
		return 1
	}
	return (len(v.vehicles) + v.pageSize - 1) / v.pageSize
}

func (v *View) Page() int { return v.page }

// SetPage clamps into [1, TotalPages]; navigating past either bound is a
// no-op, not an error.
func (v *View) SetPage(n int) {
	v.page = clamp(n, 1, v.TotalPages())
}

func (v *View) NextPage() { v.SetPage(v.page + 1) }
func (v *View) PrevPage() { v.SetPage(v.page - 1) }

// CurrentPage returns the slice of the sorted sequence for the current page.
func (v *View) CurrentPage() []models.Vehicle {
	start := (v.page - 1) * v.pageSize
	if start >= len(v.vehicles) {
		return nil
	}
	end := start + v.pageSize
	if end > len(v.vehicles) {
		end = len(v.vehicles)
	}
	return v.vehicles[start:end]
}

// All returns the full sorted sequence.
func (v *View) All() []models.Vehicle {
	return v.vehicles
}

// ToggleCompare adds the vehicle to the compare selection, or removes it if
// it is already selected.
func (v *View) ToggleCompare(id string) error {
	for i, selected := range v.compare {
		if selected == id {
			v.compare = append(v.compare[:i], v.compare[i+1:]...)
			return nil
		}
	}

	found := false
	for _, vehicle := range v.vehicles {
		if vehicle.ID == id {
			found = true
			break
		}
	}
	if !found {
		return ErrNotInView
	}
	if len(v.compare) >= MaxCompare {
		return ErrCompareFull
	}

	v.compare = append(v.compare, id)
	return nil
}

// CompareSelection returns the selected vehicles in selection order.
func (v *View) CompareSelection() []models.Vehicle {
	byID := make(map[string]models.Vehicle, len(v.vehicles))
	for _, vehicle := range v.vehicles {
		byID[vehicle.ID] = vehicle
	}

	selection := make([]models.Vehicle, 0, len(v.compare))
	for _, id := range v.compare {
		if vehicle, ok := byID[id]; ok {
			selection = append(selection, vehicle)
		}
	}
	return selection
}

func (v *View) resort() {
	SortVehicles(v.vehicles, v.sortKey)
}

// SortVehicles orders the slice in place by the given key. Every key is a
// total order: equal primary keys fall through to id descending so the
// result is deterministic for any input.
func SortVehicles(vehicles []models.Vehicle, key SortKey) {
	less := func(a, b models.Vehicle) bool {
		switch key {
		case SortPriceAsc:
			if a.Price != b.Price {
				return a.Price < b.Price
			}
		case SortPriceDesc:
			if a.Price != b.Price {
				return a.Price > b.Price
			}
		case SortYearAsc:
			if a.Year != b.Year {
				return a.Year < b.Year
			}
		case SortYearDesc:
			if a.Year != b.Year {
				return a.Year > b.Year
			}
		default: // newest first, tie-break by year descending
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
			if a.Year != b.Year {
				return a.Year > b.Year
			}
		}
		return a.ID > b.ID
	}

	sort.SliceStable(vehicles, func(i, j int) bool {
		return less(vehicles[i], vehicles[j])
	})
}

// Paginate returns one page of the given sequence with the same clamping
// rules as View. Exposed for the search endpoint's server-side paging.
func Paginate(vehicles []models.Vehicle, page, pageSize int) ([]models.Vehicle, int, int) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	totalPages := 1
	if len(vehicles) > 0 {
		totalPages = (len(vehicles) + pageSize - 1) / pageSize
	}
	page = clamp(page, 1, totalPages)

	start := (page - 1) * pageSize
	if start >= len(vehicles) {
		return nil, page, totalPages
	}
	end := start + pageSize
	if end > len(vehicles) {
		end = len(vehicles)
	}
	return vehicles[start:end], page, totalPages
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
