package studio

import (
	"context"
	"strings"

	"studio-listing-backend/internal/model"
	"studio-listing-backend/internal/store"
)

// Filter holds the optional query parameters of a studio listing. Nil
// means the parameter was not supplied.
type Filter struct {
	Location      *string
	MaxPrice      *float64
	Search        *string
	AvailableOnly bool
}

// QueryKind identifies which single store query a Filter resolves to.
type QueryKind int

const (
	QueryAll QueryKind = iota
	QueryAvailable
	QueryByMaxPrice
	QueryByLocation
	QueryByKeyword
)

func (k QueryKind) String() string {
	switch k {
	case QueryAvailable:
		return "available"
	case QueryByMaxPrice:
		return "max_price"
	case QueryByLocation:
		return "location"
	case QueryByKeyword:
		return "keyword"
	default:
		return "all"
	}
}

// Query is a resolved listing query with its argument.
type Query struct {
	Kind     QueryKind
	Text     string
	MaxPrice float64
}

// Resolve picks exactly one query for f. The first match wins, in order:
// search, location, maxPrice, availableOnly, all. Filters never combine.
func Resolve(f Filter) Query {
	if f.Search != nil {
		if s := strings.TrimSpace(*f.Search); s != "" {
			return Query{Kind: QueryByKeyword, Text: s}
		}
	}
	if f.Location != nil {
		if l := strings.TrimSpace(*f.Location); l != "" {
			return Query{Kind: QueryByLocation, Text: l}
		}
	}
	if f.MaxPrice != nil {
		return Query{Kind: QueryByMaxPrice, MaxPrice: *f.MaxPrice}
	}
	if f.AvailableOnly {
		return Query{Kind: QueryAvailable}
	}
	return Query{Kind: QueryAll}
}

// Service serves studio listings on top of a store.
type Service struct {
	store store.Store
}

// NewService creates a new studio service.
func NewService(s store.Store) *Service {
	return &Service{store: s}
}

// List runs the single query resolved from f.
func (s *Service) List(ctx context.Context, f Filter) ([]Response, error) {
	var (
		studios []model.Studio
		err     error
	)

	q := Resolve(f)
	switch q.Kind {
	case QueryByKeyword:
		studios, err = s.store.ListByKeyword(ctx, q.Text)
	case QueryByLocation:
		studios, err = s.store.ListByLocation(ctx, q.Text)
	case QueryByMaxPrice:
		studios, err = s.store.ListByMaxPrice(ctx, q.MaxPrice)
	case QueryAvailable:
		studios, err = s.store.ListAvailable(ctx)
	default:
		studios, err = s.store.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	return NewResponses(studios), nil
}

// Get returns store.ErrNotFound for unknown ids.
func (s *Service) Get(ctx context.Context, id int64) (Response, error) {
	studio, err := s.store.GetByID(ctx, id)
	if err != nil {
		return Response{}, err
	}
	return NewResponse(studio), nil
}

// Create validates in and inserts it as a new studio.
func (s *Service) Create(ctx context.Context, in Input) (Response, error) {
	if violations := Validate(in); len(violations) > 0 {
		return Response{}, &ValidationError{Violations: violations}
	}
	studio, err := s.store.Insert(ctx, in.Draft())
	if err != nil {
		return Response{}, err
	}
	return NewResponse(studio), nil
}

// Update validates in and replaces every mutable field of studio id.
func (s *Service) Update(ctx context.Context, id int64, in Input) (Response, error) {
	if violations := Validate(in); len(violations) > 0 {
		return Response{}, &ValidationError{Violations: violations}
	}
	studio, err := s.store.Update(ctx, id, in.Draft())
	if err != nil {
		return Response{}, err
	}
	return NewResponse(studio), nil
}

// Delete reports whether a studio was removed.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.store.Delete(ctx, id)
}
