// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

type orderQuery struct {
	OrderID string `query:"order_id" validate:"required,orderid"`
}

type pageQuery struct {
	Limit int    `json:"limit" validate:"min=1,max=100"`
	Order string `json:"order" validate:"omitempty,oneof=asc desc"`
	Name  string `validate:"omitempty,max=5"`
}

func TestValidateStruct_OrderID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		id      string
		wantErr string
	}{
		{"plain id", "ord_123", ""},
		{"uuid", "3f2b8c1e-8d6a-4a1b-9a51-6c7b1f0e2d44", ""},
		{"missing", "", "order_id is required"},
		{"whitespace", "ord 123", "order_id must be a non-empty identifier without whitespace"},
		{"control", "ord\n123", "order_id must be a non-empty identifier without whitespace"},
		{"too long", strings.Repeat("a", MaxOrderIDLength+1), "order_id must be a non-empty identifier"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			verr := ValidateStruct(&orderQuery{OrderID: tt.id})
			if tt.wantErr == "" {
				if verr != nil {
					t.Fatalf("unexpected error: %v", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(verr.Error(), tt.wantErr) {
				t.Errorf("Error() = %q, want substring %q", verr.Error(), tt.wantErr)
			}
			errs := verr.Fields
			if len(errs) != 1 || errs[0].Field != "order_id" || errs[0].Tag == "" {
				t.Errorf("Fields = %+v, want single order_id error", errs)
			}
		})
	}
}

func TestValidateStruct_Messages(t *testing.T) {
	t.Parallel()

	verr := ValidateStruct(&pageQuery{Limit: 0, Order: "sideways", Name: "toolongname"})
	if verr == nil {
		t.Fatal("expected validation errors")
	}

	errs := verr.Fields
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %d: %v", len(errs), verr)
	}

	want := map[string]string{
		"limit": "limit must be at least 1",
		"order": "order must be one of: asc desc",
		"Name":  "Name must be at most 5 characters",
	}
	for _, e := range errs {
		if msg, ok := want[e.Field]; !ok || e.Error() != msg {
			t.Errorf("field %s: got %q, want %q", e.Field, e.Error(), msg)
		}
	}

	if !strings.Contains(verr.Error(), "; ") {
		t.Errorf("combined message should join with '; ': %q", verr.Error())
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	t.Parallel()

	if verr := ValidateStruct(&pageQuery{Limit: 24, Order: "desc"}); verr != nil {
		t.Errorf("unexpected error: %v", verr)
	}
}

func TestRequestValidationError_Empty(t *testing.T) {
	t.Parallel()

	if got := (&RequestValidationError{}).Error(); got != "validation failed" {
		t.Errorf("Error() = %q", got)
	}
}
