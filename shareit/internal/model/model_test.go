package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Astemirdum/shareit/pkg/datetime"
	"github.com/Astemirdum/shareit/shareit/internal/model"
	"github.com/stretchr/testify/require"
)

func TestStatus_Decide(t *testing.T) {
	t.Parallel()
	tests := []struct {
		from     model.Status
		approved bool
		want     model.Status
		ok       bool
	}{
		{from: model.StatusWaiting, approved: true, want: model.StatusApproved, ok: true},
		{from: model.StatusWaiting, approved: false, want: model.StatusRejected, ok: true},
		{from: model.StatusApproved, approved: true},
		{from: model.StatusApproved, approved: false},
		{from: model.StatusRejected, approved: true},
		{from: model.StatusRejected, approved: false},
	}
	for _, tt := range tests {
		got, ok := tt.from.Decide(tt.approved)
		require.Equal(t, tt.ok, ok, "%s/%v", tt.from, tt.approved)
		require.Equal(t, tt.want, got, "%s/%v", tt.from, tt.approved)
	}
}

func TestParseState(t *testing.T) {
	t.Parallel()
	got, err := model.ParseState("")
	require.NoError(t, err)
	require.Equal(t, model.StateAll, got)

	got, err = model.ParseState("CURRENT")
	require.NoError(t, err)
	require.Equal(t, model.StateCurrent, got)

	_, err = model.ParseState("UNSUPPORTED_STATUS")
	require.EqualError(t, err, "Unknown state: UNSUPPORTED_STATUS")
}

func TestPatchApply(t *testing.T) {
	t.Parallel()
	name := "Mary"
	u := model.UserPatch{Name: &name}.Apply(model.User{ID: 1, Name: "Ann", Email: "ann@mail.io"})
	require.Equal(t, model.User{ID: 1, Name: "Mary", Email: "ann@mail.io"}, u)

	available := false
	it := model.ItemPatch{Available: &available}.Apply(model.Item{ID: 2, Name: "drill", Description: "bosch", Available: true, OwnerID: 1})
	require.Equal(t, model.Item{ID: 2, Name: "drill", Description: "bosch", Available: false, OwnerID: 1}, it)
}

func TestItemView_JSON(t *testing.T) {
	t.Parallel()
	reqID := int64(7)
	view := model.ItemView{
		Item:        model.Item{ID: 1, Name: "drill", Description: "bosch", Available: true, OwnerID: 3, RequestID: &reqID},
		LastBooking: &model.BookingShort{ID: 4, BookerID: 5, ItemID: 1},
		Comments: []model.CommentView{{
			ID: 9, Text: "fine", AuthorName: "Bob", ItemID: 1,
			Created: datetime.New(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)),
		}},
	}
	b, err := json.Marshal(view)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"id":1,"name":"drill","description":"bosch","available":true,"requestId":7,
		"lastBooking":{"id":4,"bookerId":5},
		"nextBooking":null,
		"comments":[{"id":9,"text":"fine","authorName":"Bob","created":"2024-03-01T10:00:00"}]
	}`, string(b))
}
