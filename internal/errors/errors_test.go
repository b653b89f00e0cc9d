package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestFacetError_Error(t *testing.T) {
	err := &FacetError{
		Code:    ErrNotFound,
		Status:  404,
		Message: "post not found",
	}

	expected := "NOT_FOUND: post not found"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestNewInvalidRequest(t *testing.T) {
	err := NewInvalidRequest("archetype is required")

	if err.Code != ErrInvalidRequest {
		t.Errorf("Code = %q, want %q", err.Code, ErrInvalidRequest)
	}
	if err.Status != 400 {
		t.Errorf("Status = %d, want 400", err.Status)
	}
	if err.Message != "archetype is required" {
		t.Errorf("Message = %q, want %q", err.Message, "archetype is required")
	}
}

func TestNewUnknownArchetype(t *testing.T) {
	err := NewUnknownArchetype("recipe")

	if err.Code != ErrUnknownArchetype {
		t.Errorf("Code = %q, want %q", err.Code, ErrUnknownArchetype)
	}
	if err.Status != 400 {
		t.Errorf("Status = %d, want 400", err.Status)
	}
	if err.Details["archetype"] != "recipe" {
		t.Errorf("Details[archetype] = %v, want %q", err.Details["archetype"], "recipe")
	}
}

func TestNewNotFound(t *testing.T) {
	err := NewNotFound("01HXYZ")

	if err.Code != ErrNotFound {
		t.Errorf("Code = %q, want %q", err.Code, ErrNotFound)
	}
	if err.Status != 404 {
		t.Errorf("Status = %d, want 404", err.Status)
	}
	if err.Details["identifier"] != "01HXYZ" {
		t.Errorf("Details[identifier] = %v, want %q", err.Details["identifier"], "01HXYZ")
	}
}

func TestNewDuplicateSlug(t *testing.T) {
	err := NewDuplicateSlug("amethyst-guide")

	if err.Code != ErrDuplicateSlug {
		t.Errorf("Code = %q, want %q", err.Code, ErrDuplicateSlug)
	}
	if err.Status != 409 {
		t.Errorf("Status = %d, want 409", err.Status)
	}
	if err.Details["slug"] != "amethyst-guide" {
		t.Errorf("Details[slug] = %v, want %q", err.Details["slug"], "amethyst-guide")
	}
}

func TestNewSlugConflict(t *testing.T) {
	err := NewSlugConflict("amethyst-guide", 3)

	if err.Code != ErrSlugConflict {
		t.Errorf("Code = %q, want %q", err.Code, ErrSlugConflict)
	}
	if err.Details["attempts"] != 3 {
		t.Errorf("Details[attempts] = %v, want 3", err.Details["attempts"])
	}
}

func TestNewMissingVariable(t *testing.T) {
	missing := []string{"crystal", "benefit"}
	err := NewMissingVariable("crystal_guide", missing)

	if err.Code != ErrMissingVariable {
		t.Errorf("Code = %q, want %q", err.Code, ErrMissingVariable)
	}
	if err.Status != 422 {
		t.Errorf("Status = %d, want 422", err.Status)
	}
	if vars, ok := err.Details["missing_variables"].([]string); !ok || len(vars) != 2 {
		t.Errorf("Details[missing_variables] = %v, want %v", err.Details["missing_variables"], missing)
	}
}

func TestNewStoreUnavailable(t *testing.T) {
	cause := fmt.Errorf("disk I/O error")
	err := NewStoreUnavailable(cause)

	if err.Code != ErrStoreUnavailable {
		t.Errorf("Code = %q, want %q", err.Code, ErrStoreUnavailable)
	}
	if err.Status != 503 {
		t.Errorf("Status = %d, want 503", err.Status)
	}
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestNewInternal(t *testing.T) {
	t.Run("with error", func(t *testing.T) {
		originalErr := fmt.Errorf("database connection failed")
		err := NewInternal(originalErr)

		if err.Code != ErrInternal {
			t.Errorf("Code = %q, want %q", err.Code, ErrInternal)
		}
		if err.Status != 500 {
			t.Errorf("Status = %d, want 500", err.Status)
		}
		if err.Message != "an internal error occurred" {
			t.Errorf("Message = %q, want %q", err.Message, "an internal error occurred")
		}
		if err.Details["internal_error"] != "database connection failed" {
			t.Errorf("Details[internal_error] = %q, want %q", err.Details["internal_error"], "database connection failed")
		}
	})

	t.Run("with nil", func(t *testing.T) {
		err := NewInternal(nil)

		if err.Message != "an internal error occurred" {
			t.Errorf("Message = %q, want %q", err.Message, "an internal error occurred")
		}
		if err.Details == nil {
			t.Error("Details should not be nil")
		}
	})
}

func TestIs(t *testing.T) {
	t.Run("matching code", func(t *testing.T) {
		err := NewNotFound("test")
		if !Is(err, ErrNotFound) {
			t.Error("Is() = false, want true")
		}
	})

	t.Run("non-matching code", func(t *testing.T) {
		err := NewNotFound("test")
		if Is(err, ErrDuplicateSlug) {
			t.Error("Is() = true, want false")
		}
	})

	t.Run("non-FacetError", func(t *testing.T) {
		err := fmt.Errorf("plain error")
		if Is(err, ErrNotFound) {
			t.Error("Is() = true, want false for non-FacetError")
		}
	})

	t.Run("wrapped FacetError", func(t *testing.T) {
		inner := NewDuplicateSlug("rose-quartz")
		wrapped := fmt.Errorf("create post: %w", inner)
		if !Is(wrapped, ErrDuplicateSlug) {
			t.Error("Is() = false, want true for wrapped FacetError")
		}
		if Is(wrapped, ErrNotFound) {
			t.Error("Is() = true, want false for wrong code on wrapped FacetError")
		}
	})
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", NewNotFound("x"))

	fErr, ok := As(wrapped)
	if !ok {
		t.Fatal("As() ok = false, want true")
	}
	if fErr.Code != ErrNotFound {
		t.Errorf("Code = %q, want %q", fErr.Code, ErrNotFound)
	}

	if _, ok := As(fmt.Errorf("plain")); ok {
		t.Error("As() ok = true, want false for plain error")
	}
}
