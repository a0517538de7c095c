// README: Tour service; validation over the store.
package tour

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrNotFound   = errors.New("tour not found")
	ErrBadRequest = errors.New("bad request")
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

type CreateCommand struct {
	Name        string
	Description *string
	Location    string
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Tour, error) {
	cmd.Name = strings.TrimSpace(cmd.Name)
	cmd.Location = strings.TrimSpace(cmd.Location)
	if cmd.Name == "" || cmd.Location == "" {
		return nil, ErrBadRequest
	}
	t := &Tour{Name: cmd.Name, Description: cmd.Description, Location: cmd.Location}
	if err := s.store.Insert(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Tour, error) {
	if id <= 0 {
		return nil, ErrBadRequest
	}
	return s.store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Tour, error) {
	return s.store.List(ctx)
}
