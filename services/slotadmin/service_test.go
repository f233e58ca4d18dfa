package slotadmin

import (
	"context"
	"testing"

	"medibook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSlotAPI struct {
	stored  []models.SlotDefinition
	created []models.SlotDefinition
	updated []models.SlotDefinition
	deleted []string
}

func (f *fakeSlotAPI) ListSlots(ctx context.Context, q models.SlotListQuery) ([]models.SlotDefinition, error) {
	return f.stored, nil
}

func (f *fakeSlotAPI) CreateSlot(ctx context.Context, slot models.SlotDefinition) error {
	f.created = append(f.created, slot)
	return nil
}

func (f *fakeSlotAPI) UpdateSlot(ctx context.Context, slot models.SlotDefinition) error {
	f.updated = append(f.updated, slot)
	return nil
}

func (f *fakeSlotAPI) DeleteSlot(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func editorTime(hour, minute, period string) models.EditorTime {
	return models.EditorTime{Hour: hour, Minute: minute, Period: period}
}

func validRequest() models.SlotEditorRequest {
	return models.SlotEditorRequest{
		DoctorID:      "doc1",
		Date:          "2026-09-02",
		Start:         editorTime("9", "00", "AM"),
		End:           editorTime("1", "30", "PM"),
		SlotType:      models.SlotTypeOffline,
		SlotTimeRange: "15",
		Breaks: []models.EditorBreak{
			{Start: editorTime("12", "00", "PM"), End: editorTime("12", "30", "PM")},
		},
	}
}

func TestCreateConvertsEditorTimesToCanonicalForm(t *testing.T) {
	api := &fakeSlotAPI{}
	svc := &DefaultService{API: api}

	require.NoError(t, svc.Create(context.Background(), validRequest()))
	require.Len(t, api.created, 1)

	slot := api.created[0]
	assert.Equal(t, "09:00", slot.StartTime)
	assert.Equal(t, "13:30", slot.EndTime)
	assert.Equal(t, "15", slot.SlotTimeRange)
	require.Len(t, slot.Breaks, 1)
	assert.Equal(t, "12:00", slot.Breaks[0].BreakStart)
	assert.Equal(t, "12:30", slot.Breaks[0].BreakEnd)
}

func TestCreateRejectsInvalidWindows(t *testing.T) {
	svc := &DefaultService{API: &fakeSlotAPI{}}
	ctx := context.Background()

	req := validRequest()
	req.Start, req.End = req.End, req.Start
	req.Breaks = nil
	assert.ErrorIs(t, svc.Create(ctx, req), ErrInvalidWindow)

	req = validRequest()
	req.SlotTimeRange = "zero"
	assert.ErrorIs(t, svc.Create(ctx, req), ErrInvalidStep)

	req = validRequest()
	req.SlotTimeRange = "-5"
	assert.ErrorIs(t, svc.Create(ctx, req), ErrInvalidStep)

	req = validRequest()
	req.Breaks = []models.EditorBreak{
		{Start: editorTime("12", "30", "PM"), End: editorTime("12", "00", "PM")},
	}
	assert.ErrorIs(t, svc.Create(ctx, req), ErrInvalidBreak)

	req = validRequest()
	req.Breaks = []models.EditorBreak{
		{Start: editorTime("8", "00", "AM"), End: editorTime("8", "30", "AM")},
	}
	assert.ErrorIs(t, svc.Create(ctx, req), ErrInvalidBreak)

	req = validRequest()
	req.Start = editorTime("13", "00", "PM")
	assert.ErrorIs(t, svc.Create(ctx, req), models.ErrInvalidTimeFormat)
}

func TestUpdateRequiresID(t *testing.T) {
	api := &fakeSlotAPI{}
	svc := &DefaultService{API: api}
	ctx := context.Background()

	req := validRequest()
	assert.Error(t, svc.Update(ctx, req))

	req.ID = "slot1"
	require.NoError(t, svc.Update(ctx, req))
	require.Len(t, api.updated, 1)
	assert.Equal(t, "slot1", api.updated[0].ID)
}

func TestDelete(t *testing.T) {
	api := &fakeSlotAPI{}
	svc := &DefaultService{API: api}

	assert.Error(t, svc.Delete(context.Background(), ""))
	require.NoError(t, svc.Delete(context.Background(), "slot1"))
	assert.Equal(t, []string{"slot1"}, api.deleted)
}

func TestListRendersStoredSlotsForTheEditor(t *testing.T) {
	api := &fakeSlotAPI{stored: []models.SlotDefinition{
		{
			ID: "slot1", DoctorID: "doc1", Date: "2026-09-02",
			StartTime: "09:00", EndTime: "13:30",
			SlotType: models.SlotTypeOffline, SlotTimeRange: "15",
			Breaks: []models.BreakWindow{{BreakStart: "12:00", BreakEnd: "12:30"}},
		},
		// Corrupt record: skipped, not fatal.
		{ID: "slot2", StartTime: "garbage", EndTime: "10:00"},
	}}
	svc := &DefaultService{API: api}

	views, err := svc.List(context.Background(), models.SlotListQuery{PageNo: 1})
	require.NoError(t, err)
	require.Len(t, views, 1)

	view := views[0]
	assert.Equal(t, editorTime("9", "00", "AM"), view.Start)
	assert.Equal(t, editorTime("1", "30", "PM"), view.End)
	require.Len(t, view.Breaks, 1)
	assert.Equal(t, editorTime("12", "00", "PM"), view.Breaks[0].Start)
}

// Editor round trip: what List renders feeds back through Create unchanged.
func TestEditorRoundTrip(t *testing.T) {
	api := &fakeSlotAPI{}
	svc := &DefaultService{API: api}
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, validRequest()))
	api.stored = api.created

	views, err := svc.List(ctx, models.SlotListQuery{PageNo: 1})
	require.NoError(t, err)
	require.Len(t, views, 1)

	again := models.SlotEditorRequest{
		DoctorID:      views[0].DoctorID,
		Date:          views[0].Date,
		Start:         views[0].Start,
		End:           views[0].End,
		SlotType:      views[0].SlotType,
		SlotTimeRange: views[0].SlotTimeRange,
		Breaks:        views[0].Breaks,
	}
	require.NoError(t, svc.Create(ctx, again))
	assert.Equal(t, api.created[0].StartTime, api.created[1].StartTime)
	assert.Equal(t, api.created[0].EndTime, api.created[1].EndTime)
	assert.Equal(t, api.created[0].Breaks, api.created[1].Breaks)
}
