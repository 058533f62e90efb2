package dto_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"classbook/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name: "eq with table",
			filter: dto.Filter{
				Field:    "room_no",
				Operator: dto.FilterOperatorEq,
				Value:    "65",
				Table:    "bookings",
			},
			wantWhere: "bookings.room_no = :room_no",
			wantArgs:  map[string]any{"room_no": "65"},
		},
		{
			name: "eq without table",
			filter: dto.Filter{
				Field:    "date",
				Operator: dto.FilterOperatorEq,
				Value:    "2025-03-31",
			},
			wantWhere: "date = :date",
			wantArgs:  map[string]any{"date": "2025-03-31"},
		},
		{
			name: "not_eq",
			filter: dto.Filter{
				Field:    "status",
				Operator: dto.FilterOperatorNotEq,
				Value:    "rejected",
			},
			wantWhere: "status != :status",
			wantArgs:  map[string]any{"status": "rejected"},
		},
		{
			name: "in with slice",
			filter: dto.Filter{
				Field:    "status",
				Operator: dto.FilterOperatorIn,
				Value:    []string{"pending", "approved"},
			},
			wantWhere: "status IN (:status_0, :status_1) ",
			wantArgs:  map[string]any{"status_0": "pending", "status_1": "approved"},
		},
		{
			name: "unknown operator yields empty clause",
			filter: dto.Filter{
				Field:    "status",
				Operator: "between",
			},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "room_no", Operator: dto.FilterOperatorEq, Value: "65", Table: "bookings"},
			dto.Filter{Field: "date", Operator: dto.FilterOperatorEq, Value: "2025-03-31", Table: "bookings"},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(bookings.room_no = :room_no AND bookings.date = :date)", where)
	assert.Equal(t, map[string]any{"room_no": "65", "date": "2025-03-31"}, args)
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestQueryParams_FromRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/bookings?page=2&limit=5&sort_by=created_at&sort_dir=asc", nil)

	q := dto.QueryParams{}
	q.FromRequest(r, true)

	assert.Equal(t, 2, q.Page)
	assert.Equal(t, 5, q.Limit)
	assert.Equal(t, "created_at", q.SortBy)
	assert.Equal(t, dto.SortDirAsc, q.SortDir)
}

func TestQueryParams_Defaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/bookings", nil)

	q := dto.QueryParams{}
	q.FromRequest(r, true)

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)
}
