package site

import "context"

// State is the whole persisted site document.
type State struct {
	Profile    Profile    `json:"profile"`
	Categories []Category `json:"categories"`
	Entries    []Entry    `json:"entries"`
	Homepage   Homepage   `json:"homepage"`
	Messages   []Message  `json:"messages"`
}

// NewState returns the documented defaults for a site that was never saved.
func NewState() *State {
	return &State{
		Profile:    EmptyProfile(),
		Categories: []Category{},
		Entries:    []Entry{},
		Homepage:   EmptyHomepage(),
		Messages:   []Message{},
	}
}

// Repository loads and saves the site document as one unit.
//
// Update runs fn against the freshly loaded state and saves the result while
// holding the store's write lock, so concurrent writers never interleave.
// If fn returns an error nothing is saved.
type Repository interface {
	Load(ctx context.Context) (*State, error)
	Save(ctx context.Context, state *State) error
	Update(ctx context.Context, fn func(state *State) error) (*State, error)
}
