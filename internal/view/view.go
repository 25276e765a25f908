package view

import (
	"context"

	"go.uber.org/zap"
	"pantry/internal/model"
)

// StoreClient is the part of the inventory service the page depends on.
type StoreClient interface {
	ListAll(ctx context.Context) ([]model.Item, error)
	Upsert(ctx context.Context, name, quantityText string) error
	Remove(ctx context.Context, name string) error
}

type View struct {
	store StoreClient
	log   *zap.Logger
}

func New(store StoreClient, logger *zap.Logger) *View {
	return &View{store: store, log: logger}
}

// Refresh reloads every item from the store. It always runs the full fetch;
// the cached list is never patched.
func (v *View) Refresh(ctx context.Context, s State) State {
	s = BeginLoad(s)
	items, err := v.store.ListAll(ctx)
	if err != nil {
		return LoadFailed(s, err)
	}
	return LoadSucceeded(s, items)
}

// Add writes the item, overwriting an existing one with the same name, then
// refreshes. A failed write keeps the current list and records the error.
func (v *View) Add(ctx context.Context, s State, name, quantityText string) State {
	if err := v.store.Upsert(ctx, name, quantityText); err != nil {
		return MutationFailed(s, err)
	}
	return v.Refresh(ctx, s)
}

// Edit takes the same path as Add.
func (v *View) Edit(ctx context.Context, s State, name, quantityText string) State {
	return v.Add(ctx, s, name, quantityText)
}

func (v *View) Remove(ctx context.Context, s State, name string) State {
	if err := v.store.Remove(ctx, name); err != nil {
		return MutationFailed(s, err)
	}
	return v.Refresh(ctx, s)
}

// Submit sends the form: an edit targets the item the form was opened for,
// an add uses the typed name. The form is cleared and closed either way.
func (v *View) Submit(ctx context.Context, s State, nameField, quantityField string) State {
	modal := s.Modal
	s.Modal = Modal{}
	if modal.EditMode {
		v.log.Debug("submit edit", zap.String("name", modal.CurrentItem))
		return v.Edit(ctx, s, modal.CurrentItem, quantityField)
	}
	v.log.Debug("submit add", zap.String("name", nameField))
	return v.Add(ctx, s, nameField, quantityField)
}
