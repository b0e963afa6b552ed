package service

import (
	"log"

	"go-sari-pos/internal/model"
	"go-sari-pos/internal/repository"
	"go-sari-pos/internal/ws"
)

// ActivityService is the audit sink. Every mutating operation reports here;
// the write and the websocket broadcast both happen off the caller's path
// and their failures never surface to the primary operation.
type ActivityService interface {
	Log(actionType, description, userEmail string, data model.Payload)
	Recent(limit int) ([]model.ActivityLog, error)
}

type activityService struct {
	repo  repository.ActivityRepository
	wsHub *ws.Hub
}

func NewActivityService(repo repository.ActivityRepository, hub *ws.Hub) ActivityService {
	return &activityService{repo: repo, wsHub: hub}
}

func (s *activityService) Log(actionType, description, userEmail string, data model.Payload) {
	go func() {
		entry := &model.ActivityLog{
			ActionType:   actionType,
			Description:  description,
			UserEmail:    userEmail,
			AffectedData: data,
		}
		entry.CreatedBy = userEmail
		if err := s.repo.Create(entry); err != nil {
			log.Printf("activity: failed to record %q: %v", actionType, err)
		}
		if s.wsHub != nil {
			s.wsHub.BroadcastEvent(ws.Event{
				ActionType:  actionType,
				Description: description,
				UserEmail:   userEmail,
				Data:        data,
			})
		}
	}()
}

func (s *activityService) Recent(limit int) ([]model.ActivityLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.repo.FindRecent(limit)
}
