package tasks

import (
	"errors"
	"strings"
	"testing"
)

func intPtr(n int) *int { return &n }

func TestListQuery_Validate(t *testing.T) {
	tests := []struct {
		name    string
		query   ListQuery
		wantErr bool
		wantMsg string
	}{
		{
			name:  "empty query",
			query: ListQuery{},
		},
		{
			name:  "search only",
			query: ListQuery{Search: "report"},
		},
		{
			name:  "sort by title",
			query: ListQuery{SortBy: "title"},
		},
		{
			name:  "sort by status",
			query: ListQuery{SortBy: "status"},
		},
		{
			name:  "sort by creation_time",
			query: ListQuery{SortBy: "creation_time"},
		},
		{
			name:    "unknown sort field",
			query:   ListQuery{SortBy: "priority"},
			wantErr: true,
			wantMsg: "sort_by must be one of title, status, creation_time",
		},
		{
			name:  "positive top_n",
			query: ListQuery{TopN: intPtr(3)},
		},
		{
			name:    "zero top_n",
			query:   ListQuery{TopN: intPtr(0)},
			wantErr: true,
			wantMsg: "top_n must be positive",
		},
		{
			name:    "negative top_n",
			query:   ListQuery{TopN: intPtr(-5)},
			wantErr: true,
			wantMsg: "top_n must be positive",
		},
		{
			name: "top_n overrides sort_by validation",
			// sort_by is ignored when top_n is present, even a bad one.
			query: ListQuery{TopN: intPtr(2), SortBy: "nonsense"},
		},
		{
			name:  "order is never validated",
			query: ListQuery{SortBy: "title", Order: "sideways"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Fatalf("Validate() error = %v, want ErrInvalidArgument", err)
				}
				if !strings.Contains(err.Error(), tt.wantMsg) {
					t.Errorf("Validate() error = %q, want it to contain %q", err, tt.wantMsg)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
		})
	}
}

func TestListQuery_Descending(t *testing.T) {
	tests := []struct {
		order string
		want  bool
	}{
		{"asc", false},
		{"", false},
		{"desc", true},
		{"descending", true},
		{"ASC", true}, // anything but the literal "asc" sorts descending
	}

	for _, tt := range tests {
		q := ListQuery{Order: tt.order}
		if got := q.Descending(); got != tt.want {
			t.Errorf("Descending() with order %q = %v, want %v", tt.order, got, tt.want)
		}
	}
}
