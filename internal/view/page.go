package view

import (
	"pantry/internal/domain"
	"pantry/internal/model"
)

type Row struct {
	Name          string
	DisplayName   string
	QuantityLabel string
}

// Page is what the template renders for a state.
type Page struct {
	Loading    bool
	Err        string
	Modal      Modal
	SearchTerm string
	Rows       []Row
}

// Render filters the cached items by the search term and formats the rows.
// The filter runs on every render and never reaches the store.
func Render(s State) Page {
	page := Page{
		Loading:    s.Loading,
		Err:        s.Err,
		Modal:      s.Modal,
		SearchTerm: s.SearchTerm,
	}
	for _, item := range Search(s.Items, s.SearchTerm) {
		page.Rows = append(page.Rows, Row{
			Name:          item.Name,
			DisplayName:   domain.DisplayName(item.Name),
			QuantityLabel: "Quantity: " + item.Quantity.String(),
		})
	}
	return page
}

func Search(items []model.Item, term string) []model.Item {
	return domain.Search(items, term)
}
