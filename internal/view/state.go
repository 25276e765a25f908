// Package view holds the state of one inventory page and the operations that
// move it. State is a plain value: every operation takes the current state and
// returns the next one.
package view

import "pantry/internal/model"

type State struct {
	Items      []model.Item
	Loading    bool
	Err        string
	Modal      Modal
	SearchTerm string
}

// Modal is the add/edit form. It is presentation only and never stored.
type Modal struct {
	Open          bool
	EditMode      bool
	CurrentItem   string
	NameField     string
	QuantityField string
}

func (m Modal) SubmitLabel() string {
	if m.EditMode {
		return "Update Item"
	}
	return "Add Item"
}

func BeginLoad(s State) State {
	s.Loading = true
	return s
}

// LoadSucceeded replaces the whole item list and clears any error.
func LoadSucceeded(s State, items []model.Item) State {
	s.Items = items
	s.Err = ""
	s.Loading = false
	return s
}

// LoadFailed drops the cached items so the error is shown instead of data.
func LoadFailed(s State, err error) State {
	s.Items = nil
	s.Err = err.Error()
	s.Loading = false
	return s
}

func MutationFailed(s State, err error) State {
	s.Err = err.Error()
	return s
}

func OpenAdd(s State) State {
	s.Modal = Modal{Open: true}
	return s
}

func OpenEdit(s State, item model.Item) State {
	s.Modal = Modal{
		Open:          true,
		EditMode:      true,
		CurrentItem:   item.Name,
		NameField:     item.Name,
		QuantityField: item.Quantity.String(),
	}
	return s
}

// Close dismisses the form without submitting and clears its fields.
func Close(s State) State {
	s.Modal = Modal{}
	return s
}

func SetSearch(s State, term string) State {
	s.SearchTerm = term
	return s
}

// FindItem looks name up in the cached list.
func (s State) FindItem(name string) (model.Item, bool) {
	for _, item := range s.Items {
		if item.Name == name {
			return item, true
		}
	}
	return model.Item{}, false
}

// OpenEditByName opens the edit form for a row of the cached list. A name no
// longer in the list opens with an empty quantity.
func OpenEditByName(s State, name string) State {
	if item, ok := s.FindItem(name); ok {
		return OpenEdit(s, item)
	}
	s.Modal = Modal{Open: true, EditMode: true, CurrentItem: name, NameField: name}
	return s
}
