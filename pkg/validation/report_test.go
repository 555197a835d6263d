package validation

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formstate/pkg/formstate"
	"github.com/goliatone/go-formstate/pkg/validators"
)

func TestFromStore(t *testing.T) {
	store := formstate.New(formstate.FirstName, formstate.LastName, "nickname")
	_ = store.SetValue(formstate.FirstName, "Ada")
	_, _ = store.Validate(formstate.FirstName, validators.Name)
	_, _ = store.Validate(formstate.LastName, validators.Name)

	got := FromStore(store)
	want := Report{
		Valid: false,
		Issues: []Issue{
			{Field: "lastName", Message: validators.RequiredMessage},
			{Field: "nickname", Message: NotEvaluatedMessage},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}
	if err := got.Err(); err == nil || err.Error() != "validation failed: lastName: Required field.; nickname: Not evaluated." {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFromStore_Valid(t *testing.T) {
	got := FromStore(formstate.New())
	if !got.Valid || len(got.Issues) != 0 {
		t.Fatalf("expected valid empty report, got %+v", got)
	}
	if err := got.Err(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}
