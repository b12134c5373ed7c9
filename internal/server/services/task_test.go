package services

import (
	"context"
	"errors"
	"testing"

	"github.com/marziehyaghobi/cs50-final-project/internal/common"
	"github.com/marziehyaghobi/cs50-final-project/internal/server/models"
)

func TestAdd_ValidationError(t *testing.T) {
	db := newSQLMockDB(t)
	repo := &fakeTasksRepo{}
	s := NewTaskService(db, &fakeRepoManager{t: repo})

	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := s.Add(context.Background(), 1, title)
		if !errors.Is(err, common.ErrorValidation) {
			t.Fatalf("title %q: want common.ErrorValidation, got %v", title, err)
		}
	}
	if repo.createIn != nil {
		t.Fatalf("repository must not be called for invalid input")
	}
}

func TestAdd_TrimsTitle(t *testing.T) {
	db := newSQLMockDB(t)
	repo := &fakeTasksRepo{}
	s := NewTaskService(db, &fakeRepoManager{t: repo})

	task, err := s.Add(context.Background(), 7, "  buy milk  ")
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if task.Title != "buy milk" || task.UserID != 7 {
		t.Fatalf("unexpected task: %+v", task)
	}
}

func TestAdd_RepoError(t *testing.T) {
	db := newSQLMockDB(t)
	repo := &fakeTasksRepo{createErr: errors.New("db down")}
	s := NewTaskService(db, &fakeRepoManager{t: repo})

	_, err := s.Add(context.Background(), 1, "buy milk")
	if err == nil || errors.Is(err, common.ErrorValidation) {
		t.Fatalf("want wrapped repo error, got %v", err)
	}
}

func TestList_TrimsFilterAndScopesOwner(t *testing.T) {
	db := newSQLMockDB(t)
	repo := &fakeTasksRepo{listOut: []*models.Task{{ID: 1, UserID: 7, Title: "buy milk"}}}
	s := NewTaskService(db, &fakeRepoManager{t: repo})

	got, err := s.List(context.Background(), 7, "  milk ")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("unexpected result: %+v", got)
	}
	if repo.listIn.userID != 7 || repo.listIn.filter != "milk" {
		t.Fatalf("unexpected repo call: %+v", repo.listIn)
	}
}

func TestList_RepoError(t *testing.T) {
	db := newSQLMockDB(t)
	repo := &fakeTasksRepo{listErr: errors.New("db down")}
	s := NewTaskService(db, &fakeRepoManager{t: repo})

	if _, err := s.List(context.Background(), 7, ""); err == nil {
		t.Fatalf("expected error")
	}
}

func TestToggleAndDelete_Delegate(t *testing.T) {
	db := newSQLMockDB(t)
	repo := &fakeTasksRepo{}
	s := NewTaskService(db, &fakeRepoManager{t: repo})

	if err := s.Toggle(context.Background(), 1, 9); err != nil {
		t.Fatalf("Toggle error: %v", err)
	}
	if err := s.Delete(context.Background(), 1, 9); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if !repo.toggleCalled || !repo.deleteCalled {
		t.Fatalf("expected delegation to repository")
	}
}

func TestToggleAndDelete_WrapRepoErrors(t *testing.T) {
	db := newSQLMockDB(t)
	repo := &fakeTasksRepo{toggleErr: errors.New("t"), deleteErr: errors.New("d")}
	s := NewTaskService(db, &fakeRepoManager{t: repo})

	if err := s.Toggle(context.Background(), 1, 9); err == nil {
		t.Fatalf("expected toggle error")
	}
	if err := s.Delete(context.Background(), 1, 9); err == nil {
		t.Fatalf("expected delete error")
	}
}
