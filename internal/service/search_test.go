package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"casafinder/internal/catalog"
	"casafinder/internal/model"
)

type fakeCatalog struct {
	casas []model.Casa
	err   error
	calls int
}

func (f *fakeCatalog) FetchAll(ctx context.Context) ([]model.Casa, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.casas, nil
}

func TestSearchEmptyCriteriaSkipsCatalog(t *testing.T) {
	cat := &fakeCatalog{casas: []model.Casa{{ObjectID: 1, Piezas: 3}}}
	svc := NewHouseSearch(cat, nil, nil, nil)

	matches, err := svc.Search(context.Background(), model.SearchCriteria{})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("matches = %v, want empty", matches)
	}
	if cat.calls != 0 {
		t.Errorf("catalog called %d times, want 0", cat.calls)
	}
}

func TestSearchPropagatesCatalogError(t *testing.T) {
	wrapped := fmt.Errorf("%w: upstream down", catalog.ErrUnavailable)
	cat := &fakeCatalog{err: wrapped}
	svc := NewHouseSearch(cat, nil, nil, nil)

	_, err := svc.Search(context.Background(), model.SearchCriteria{Piezas: intp(3)})
	if !errors.Is(err, catalog.ErrUnavailable) {
		t.Errorf("err = %v, want ErrUnavailable", err)
	}
}

func TestSearchRanks(t *testing.T) {
	cat := &fakeCatalog{casas: []model.Casa{
		{ObjectID: 1, Piezas: 3, Garage: 1},
		{ObjectID: 2, Piezas: 6, Garage: 0},
	}}
	svc := NewHouseSearch(cat, nil, nil, nil)

	matches, err := svc.Search(context.Background(), model.SearchCriteria{
		Piezas: intp(3),
		Garage: boolp(true),
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matches) != 1 || matches[0].Casa.ObjectID != 1 {
		t.Errorf("matches = %v, want only casa 1", matches)
	}
}

func TestSearchEndToEndScenario(t *testing.T) {
	cat := &fakeCatalog{casas: []model.Casa{
		{ObjectID: 1, Name: "match", Piezas: 3, Garage: 1, Precio: 1800000},
		{ObjectID: 2, Name: "mismatch", Piezas: 1, Garage: 0, Precio: 5000000},
	}}
	svc := NewHouseSearch(cat, nil, nil, nil)

	matches, err := svc.Search(context.Background(), model.SearchCriteria{
		Piezas:    intp(3),
		Garage:    boolp(true),
		PrecioMax: intp(2000000),
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matches) != 1 || matches[0].Casa.ObjectID != 1 {
		t.Fatalf("matches = %v, want only casa 1", matches)
	}
	if matches[0].Score != 100 {
		t.Errorf("score = %.1f, want 100", matches[0].Score)
	}
}

func TestHandleTurnNonHouseQuery(t *testing.T) {
	cat := &fakeCatalog{}
	svc := NewHouseSearch(cat, nil, nil, nil)

	resp, err := svc.HandleTurn(context.Background(), &model.ChatRequest{Message: "qué hora es"})
	if err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}
	if resp.IsHouseQuery {
		t.Error("IsHouseQuery = true, want false")
	}
	if cat.calls != 0 {
		t.Errorf("catalog called %d times, want 0", cat.calls)
	}
	if resp.SearchID == "" {
		t.Error("SearchID is empty")
	}
}

func TestHandleTurnFirstSearch(t *testing.T) {
	cat := &fakeCatalog{casas: []model.Casa{
		{ObjectID: 1, Name: "Casa Norte", Piezas: 3, Garage: 1, Precio: 1800000},
		{ObjectID: 2, Name: "Casa Sur", Piezas: 5, Garage: 0, Precio: 3000000},
	}}
	svc := NewHouseSearch(cat, nil, nil, nil)

	resp, err := svc.HandleTurn(context.Background(), &model.ChatRequest{
		Message: "busco casa con 3 piezas, garage, hasta $2.000.000",
	})
	if err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}
	if !resp.IsHouseQuery {
		t.Fatal("IsHouseQuery = false, want true")
	}
	assertInt(t, resp.Criteria.Piezas, intp(3), "Criteria.Piezas")
	assertInt(t, resp.Criteria.PrecioMax, intp(2000000), "Criteria.PrecioMax")
	if resp.Criteria.Garage == nil || !*resp.Criteria.Garage {
		t.Errorf("Criteria.Garage = %v, want true", resp.Criteria.Garage)
	}
	if len(resp.Matches) != 1 || resp.Matches[0].Casa.ObjectID != 1 {
		t.Errorf("Matches = %v, want only Casa Norte", resp.Matches)
	}
	if resp.Summary == "" {
		t.Error("Summary is empty")
	}
	if resp.ResultsText == "" {
		t.Error("ResultsText is empty")
	}
	if resp.Refinement != "" {
		t.Errorf("Refinement = %q, want empty on first turn", resp.Refinement)
	}
}

func TestHandleTurnRefinement(t *testing.T) {
	cat := &fakeCatalog{casas: []model.Casa{
		{ObjectID: 1, Piezas: 3, Balcon: 1},
		{ObjectID: 2, Piezas: 3, Balcon: 0},
	}}
	svc := NewHouseSearch(cat, nil, nil, nil)

	prev := model.SearchCriteria{Piezas: intp(3)}
	resp, err := svc.HandleTurn(context.Background(), &model.ChatRequest{
		Message:  "que tenga balcón",
		Previous: &prev,
	})
	if err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}
	assertInt(t, resp.Criteria.Piezas, intp(3), "Criteria.Piezas")
	if resp.Criteria.Balcon == nil || !*resp.Criteria.Balcon {
		t.Errorf("Criteria.Balcon = %v, want true", resp.Criteria.Balcon)
	}
	if len(resp.Matches) != 1 || resp.Matches[0].Casa.ObjectID != 1 {
		t.Errorf("Matches = %v, want only casa 1", resp.Matches)
	}
	if resp.Refinement == "" {
		t.Error("Refinement is empty on a refinement turn")
	}
}

func TestHandleTurnEmptyCriteria(t *testing.T) {
	cat := &fakeCatalog{}
	svc := NewHouseSearch(cat, nil, nil, nil)

	resp, err := svc.HandleTurn(context.Background(), &model.ChatRequest{
		Message: "busco una casa bonita",
	})
	if err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}
	if !resp.IsHouseQuery {
		t.Error("IsHouseQuery = false, want true")
	}
	if len(resp.Matches) != 0 {
		t.Errorf("Matches = %v, want empty", resp.Matches)
	}
	if cat.calls != 0 {
		t.Errorf("catalog called %d times, want 0", cat.calls)
	}
}

func TestFeedbackWithoutLoggerIsNoop(t *testing.T) {
	svc := NewHouseSearch(&fakeCatalog{}, nil, nil, nil)
	if err := svc.Feedback(context.Background(), "id", 1, "click"); err != nil {
		t.Errorf("Feedback: %v", err)
	}
}
