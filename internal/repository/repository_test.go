package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/collections-admin-api/internal/mocks"
	"github.com/collections-admin-api/internal/models"
	"github.com/collections-admin-api/internal/repository"
)

func TestMockCollectionRepository_CreateOrUpdate(t *testing.T) {
	repo := mocks.NewMockCollectionRepository()
	ctx := context.Background()

	c := &models.Collection{Name: "Heroes", Author: "Jane", Type: models.ContentTypeComic, Genre: []string{"action"}}
	if err := repo.CreateOrUpdate(ctx, c, false); err != nil {
		t.Fatalf("CreateOrUpdate(create) failed: %v", err)
	}
	if c.ID == "" {
		t.Fatal("Create should assign an ID")
	}

	c.Name = "Heroes Reborn"
	if err := repo.CreateOrUpdate(ctx, c, true); err != nil {
		t.Fatalf("CreateOrUpdate(update) failed: %v", err)
	}

	stored, err := repo.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if stored == nil || stored.Name != "Heroes Reborn" {
		t.Errorf("Expected updated name, got %+v", stored)
	}

	calls := repo.Calls()
	if len(calls) != 2 {
		t.Fatalf("Expected 2 calls, got %d", len(calls))
	}
	if calls[0].IsEditing || !calls[1].IsEditing {
		t.Errorf("Unexpected editing flags: %+v", calls)
	}
}

func TestMockCollectionRepository_UpdateMissing(t *testing.T) {
	repo := mocks.NewMockCollectionRepository()

	err := repo.Update(context.Background(), &models.Collection{ID: "missing"})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestMockCollectionRepository_ListAndDelete(t *testing.T) {
	repo := mocks.NewMockCollectionRepository()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		repo.Create(ctx, &models.Collection{
			ID:   fmt.Sprintf("col-%d", i),
			Name: fmt.Sprintf("Collection %d", i),
		})
		time.Sleep(time.Millisecond)
	}

	page, _ := repo.List(ctx, 2, 0)
	if len(page) != 2 {
		t.Fatalf("Expected 2 collections, got %d", len(page))
	}
	if page[0].ID != "col-4" {
		t.Errorf("Expected newest first, got %s", page[0].ID)
	}

	rest, _ := repo.List(ctx, 10, 4)
	if len(rest) != 1 {
		t.Errorf("Expected 1 collection past offset 4, got %d", len(rest))
	}

	if err := repo.Delete(ctx, "col-0"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := repo.Delete(ctx, "col-0"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second delete, got %v", err)
	}

	count, _ := repo.Count(ctx)
	if count != 4 {
		t.Errorf("Expected 4, got %d", count)
	}
}

func TestMockUserRepository(t *testing.T) {
	repo := mocks.NewMockUserRepository()
	ctx := context.Background()

	repo.Add(&models.User{ID: "u1", Email: "a@test.com"})
	repo.Add(&models.User{ID: "u2", Email: "b@test.com"})

	u, err := repo.GetByID(ctx, "u1")
	if err != nil || u == nil {
		t.Fatalf("GetByID failed: %v", err)
	}

	missing, _ := repo.GetByID(ctx, "nope")
	if missing != nil {
		t.Error("Expected nil for missing user")
	}

	users, _ := repo.List(ctx, 0, 0)
	if len(users) != 2 {
		t.Errorf("Expected 2 users, got %d", len(users))
	}

	if err := repo.Delete(ctx, "nope"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
