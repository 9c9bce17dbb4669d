package registry

import (
	"errors"
	"testing"
)

type stubFrontend struct{ id string }

func (s stubFrontend) ID() string        { return s.id }
func (s stubFrontend) Title() string     { return "Stub " + s.id }
func (s stubFrontend) Run(Session) error { return nil }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Frontend { return stubFrontend{"stub-b"} })
	Register("stub-a", func() Frontend { return stubFrontend{"stub-a"} })

	if !Exists("stub-a") {
		t.Error("Exists(stub-a) = false, expected true")
	}

	f, err := Create("stub-b")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if f.ID() != "stub-b" {
		t.Errorf("ID() = %q, expected stub-b", f.ID())
	}

	list := List()
	var ids []string
	for _, info := range list {
		ids = append(ids, info.ID)
	}
	if len(ids) < 2 || ids[0] != "stub-a" || ids[1] != "stub-b" {
		t.Errorf("List() = %v, expected sorted stubs", ids)
	}
	if list[0].Title != "Stub stub-a" {
		t.Errorf("Title = %q, expected Stub stub-a", list[0].Title)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("missing"); !errors.Is(err, ErrUnknown) {
		t.Errorf("Create(missing) error = %v, expected %v", err, ErrUnknown)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup", func() Frontend { return stubFrontend{"dup"} })

	defer func() {
		if recover() == nil {
			t.Error("Register() with duplicate ID should panic")
		}
	}()
	Register("dup", func() Frontend { return stubFrontend{"dup"} })
}
