package services

import (
	"errors"
	"mime/multipart"

	"brushworks/internal/domain"
	"brushworks/internal/notify"
	"brushworks/internal/repos"
	"brushworks/internal/storage"
)

const PaintingsTable = "paintings"

var ErrNoImage = errors.New("artwork image required")

type PaintingService struct {
	Paintings *repos.PaintingRepo
	Media     *storage.MediaStore
	Feed      *notify.Broker
}

func NewPaintingService(paintings *repos.PaintingRepo, media *storage.MediaStore, feed *notify.Broker) *PaintingService {
	return &PaintingService{Paintings: paintings, Media: media, Feed: feed}
}

// Add stores the uploaded image, inserts the painting row and announces
// the insert on the change feed.
func (s *PaintingService) Add(p domain.Painting, image *multipart.FileHeader) (int64, error) {
	if image == nil {
		return 0, ErrNoImage
	}
	url, err := s.Media.SavePainting(image)
	if err != nil {
		return 0, err
	}
	p.ImageURL = url
	id, err := s.Paintings.Insert(p)
	if err != nil {
		return 0, err
	}
	s.Feed.Publish(PaintingsTable, notify.OpInsert, id)
	return id, nil
}

// SetSold toggles availability. Both directions are always legal; the
// repo stamps or clears sold_at in the same write.
func (s *PaintingService) SetSold(id int64, sold bool) error {
	if err := s.Paintings.SetSold(id, sold); err != nil {
		return err
	}
	s.Feed.Publish(PaintingsTable, notify.OpUpdate, id)
	return nil
}

// Delete removes a painting in two phases: best-effort image-object
// removal first, then the row. The returned cleanup error is advisory;
// only err blocks the deletion. A surviving image file after a
// successful row delete is accepted.
func (s *PaintingService) Delete(id int64) (cleanup error, err error) {
	p, err := s.Paintings.Get(id)
	if err != nil {
		return nil, err
	}
	if p.ImageURL != "" {
		cleanup = s.Media.RemoveByURL(p.ImageURL)
	}
	if err := s.Paintings.Delete(id); err != nil {
		return cleanup, err
	}
	s.Feed.Publish(PaintingsTable, notify.OpDelete, id)
	return cleanup, nil
}
