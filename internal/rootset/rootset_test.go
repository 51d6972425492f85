package rootset

import (
	"errors"
	"math/big"
	"testing"

	apperrors "github.com/agbru/polyroots/internal/errors"
)

func sample() []Encoded {
	return []Encoded{
		{ID: "1", Base: 10, Digits: "4"},
		{ID: "2", Base: 2, Digits: "111"},
		{ID: "3", Base: 10, Digits: "12"},
		{ID: "6", Base: 4, Digits: "213"},
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	set, err := Decode(sample())
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	want := []int64{4, 7, 12, 39}
	if set.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", set.Len(), len(want))
	}
	for i, w := range want {
		if set.Roots[i].Value.Int64() != w {
			t.Errorf("root %d = %s, want %d", i, set.Roots[i].Value, w)
		}
	}
	if set.Roots[3].ID != "6" {
		t.Errorf("root 3 ID = %q, want %q", set.Roots[3].ID, "6")
	}
}

func TestDecode_Empty(t *testing.T) {
	t.Parallel()

	set, err := Decode(nil)
	if err != nil {
		t.Fatalf("Decode(nil) error: %v", err)
	}
	if set.Len() != 0 {
		t.Errorf("Len() = %d, want 0", set.Len())
	}
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entry   Encoded
		kind    error
		wantMsg string
	}{
		{
			name:    "digit out of range",
			entry:   Encoded{ID: "2", Base: 2, Digits: "121"},
			kind:    apperrors.ErrInvalidDigit,
			wantMsg: `root "2": invalid digit '2' at position 1 of "121" for radix 2`,
		},
		{
			name:  "negative value",
			entry: Encoded{ID: "3", Base: 10, Digits: "-5"},
			kind:  apperrors.ErrInvalidDigit,
		},
		{
			name:  "radix too large",
			entry: Encoded{ID: "4", Base: 37, Digits: "1"},
			kind:  apperrors.ErrInvalidRadix,
		},
		{
			name:  "empty digits",
			entry: Encoded{ID: "5", Base: 10, Digits: ""},
			kind:  apperrors.ErrInvalidDigit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			entries := append(sample()[:1], tt.entry)
			_, err := Decode(entries)
			if !errors.Is(err, tt.kind) {
				t.Fatalf("Decode error = %v, want kind %v", err, tt.kind)
			}
			if tt.wantMsg != "" && err.Error() != tt.wantMsg {
				t.Errorf("error message = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestSelect(t *testing.T) {
	t.Parallel()

	set, err := Decode(sample())
	if err != nil {
		t.Fatal(err)
	}

	t.Run("prefix", func(t *testing.T) {
		t.Parallel()
		got, err := set.Select(3)
		if err != nil {
			t.Fatalf("Select(3) error: %v", err)
		}
		if len(got) != 3 || got[2].Int64() != 12 {
			t.Errorf("Select(3) = %v, want [4 7 12]", got)
		}
	})

	t.Run("zero", func(t *testing.T) {
		t.Parallel()
		got, err := set.Select(0)
		if err != nil || len(got) != 0 {
			t.Errorf("Select(0) = %v, %v; want empty, nil", got, err)
		}
	})

	t.Run("all", func(t *testing.T) {
		t.Parallel()
		got, err := set.Select(set.Len())
		if err != nil || len(got) != set.Len() {
			t.Errorf("Select(Len()) = %v, %v", got, err)
		}
	})

	t.Run("insufficient", func(t *testing.T) {
		t.Parallel()
		_, err := set.Select(5)
		if !errors.Is(err, apperrors.ErrInsufficientRoots) {
			t.Fatalf("Select(5) error = %v, want ErrInsufficientRoots", err)
		}
		var ire apperrors.InsufficientRootsError
		if !errors.As(err, &ire) || ire.Requested != 5 || ire.Available != 4 {
			t.Errorf("unexpected details: %+v", ire)
		}
	})

	t.Run("negative", func(t *testing.T) {
		t.Parallel()
		_, err := set.Select(-1)
		var ve apperrors.ValidationError
		if !errors.As(err, &ve) || ve.Field != "k" {
			t.Errorf("Select(-1) error = %v, want ValidationError on k", err)
		}
	})
}

func TestValues_ReturnsCopies(t *testing.T) {
	t.Parallel()

	set := RootSet{Roots: []Root{{ID: "1", Value: big.NewInt(9)}}}
	vals := set.Values()
	vals[0].SetInt64(0)
	if set.Roots[0].Value.Int64() != 9 {
		t.Error("Values() exposed internal storage")
	}
	sel, _ := set.Select(1)
	sel[0].SetInt64(0)
	if set.Roots[0].Value.Int64() != 9 {
		t.Error("Select() exposed internal storage")
	}
}
