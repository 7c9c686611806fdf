package billing

import (
	"context"

	"waterbill.app/billing/model"
)

type AddAnnouncementRequest struct {
	Message string `json:"message" validate:"max=2000"`
}

func (r *AddAnnouncementRequest) Validate() error { return validateStruct(r) }

func (s *Service) GetAllAnnouncements(ctx context.Context, _ *EmptyRequest) ([]model.Announcement, error) {
	return s.services.Announcement.ListAnnouncements(ctx)
}

func (s *Service) AddAnnouncement(ctx context.Context, req *AddAnnouncementRequest) (*model.Announcement, error) {
	return s.services.Announcement.AddAnnouncement(ctx, req.Message)
}
