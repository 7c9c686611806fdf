package announcement

import (
	"context"
	"strings"
	"time"

	"github.com/samber/lo"

	"encore.dev/beta/errs"

	"waterbill.app/billing/model"
	"waterbill.app/billing/store"
	"waterbill.app/billing/store/announcements"
)

type Business interface {
	ListAnnouncements(ctx context.Context) ([]model.Announcement, error)
	AddAnnouncement(ctx context.Context, message string) (*model.Announcement, error)
}

type business struct {
	announcementRepo announcements.Querier
	now              func() time.Time
}

func NewAnnouncementBusiness(announcementRepo announcements.Querier) Business {
	return &business{
		announcementRepo: announcementRepo,
		now:              time.Now,
	}
}

// ListAnnouncements returns announcements newest first
func (b *business) ListAnnouncements(ctx context.Context) ([]model.Announcement, error) {
	rows, err := b.announcementRepo.ListAnnouncements(ctx)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list announcements"}
	}
	return lo.Map(rows, func(row announcements.Announcement, _ int) model.Announcement {
		return model.AnnouncementFromRow(row)
	}), nil
}

func (b *business) AddAnnouncement(ctx context.Context, message string) (*model.Announcement, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "announcement message must not be empty"}
	}

	row, err := b.announcementRepo.CreateAnnouncement(ctx, announcements.CreateAnnouncementParams{
		Message: message,
		Date:    store.Timestamptz(b.now().UTC()),
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create announcement"}
	}

	announcement := model.AnnouncementFromRow(row)
	return &announcement, nil
}
