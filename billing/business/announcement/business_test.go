package announcement

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"waterbill.app/billing/mocks/store/announcement_repo"
	"waterbill.app/billing/store"
	"waterbill.app/billing/store/announcements"
)

var fixedNow = time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC)

func TestAddAnnouncement(t *testing.T) {
	testCases := []struct {
		name          string
		message       string
		expectCreate  bool
		storedMessage string
		createError   error
		expectedCode  errs.ErrCode
	}{
		{
			name:          "success_trims_message",
			message:       "  water off on Friday  ",
			expectCreate:  true,
			storedMessage: "water off on Friday",
		},
		{
			name:         "blank_message",
			message:      "   ",
			expectedCode: errs.InvalidArgument,
		},
		{
			name:          "store_fails",
			message:       "maintenance",
			expectCreate:  true,
			storedMessage: "maintenance",
			createError:   errors.New("conn reset"),
			expectedCode:  errs.Internal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := announcement_repo.NewMockQuerier(ctrl)
			b := &business{announcementRepo: repo, now: func() time.Time { return fixedNow }}

			id := uuid.New()
			if tc.expectCreate {
				repo.EXPECT().
					CreateAnnouncement(gomock.Any(), announcements.CreateAnnouncementParams{
						Message: tc.storedMessage,
						Date:    store.Timestamptz(fixedNow),
					}).
					Return(announcements.Announcement{ID: id, Message: tc.storedMessage, Date: store.Timestamptz(fixedNow)}, tc.createError)
			}

			result, err := b.AddAnnouncement(context.Background(), tc.message)
			if tc.expectedCode != errs.OK {
				require.Error(t, err)
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, result.ID)
			assert.Equal(t, tc.storedMessage, result.Message)
			assert.Equal(t, fixedNow, result.Date)
		})
	}
}

func TestListAnnouncements(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := announcement_repo.NewMockQuerier(ctrl)
	b := NewAnnouncementBusiness(repo)

	newer := announcements.Announcement{ID: uuid.New(), Message: "new", Date: store.Timestamptz(fixedNow)}
	older := announcements.Announcement{ID: uuid.New(), Message: "old", Date: store.Timestamptz(fixedNow.AddDate(0, 0, -3))}
	repo.EXPECT().ListAnnouncements(gomock.Any()).Return([]announcements.Announcement{newer, older}, nil)

	result, err := b.ListAnnouncements(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "new", result[0].Message)
	assert.Equal(t, "old", result[1].Message)

	repo.EXPECT().ListAnnouncements(gomock.Any()).Return(nil, errors.New("down"))
	_, err = b.ListAnnouncements(context.Background())
	assert.Equal(t, errs.Internal, errs.Code(err))
}
