package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go-sari-pos/internal/model"
	"go-sari-pos/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LiabilityService tracks the store's own obligations: supplier debt,
// borrowed puhunan, deferred bills. New records start unpaid; settling one
// only flips its status, it never touches the revenue streams.
type LiabilityService interface {
	AddLiability(liabilityType, personInvolved string, amount float64, description string, dueDate *time.Time, userEmail string) (*model.Liability, error)
	SetStatus(id uuid.UUID, status model.LiabilityStatus, userEmail string) (*model.Liability, error)
	GetAllLiabilities() ([]model.Liability, error)
	GetTotalUnpaid() (float64, error)
}

type liabilityService struct {
	repo     repository.LiabilityRepository
	activity ActivityService
}

func NewLiabilityService(repo repository.LiabilityRepository, activity ActivityService) LiabilityService {
	return &liabilityService{repo: repo, activity: activity}
}

func (s *liabilityService) AddLiability(liabilityType, personInvolved string, amount float64, description string, dueDate *time.Time, userEmail string) (*model.Liability, error) {
	if strings.TrimSpace(liabilityType) == "" {
		return nil, fmt.Errorf("%w: type", ErrMissingField)
	}
	if strings.TrimSpace(personInvolved) == "" {
		return nil, fmt.Errorf("%w: person_involved", ErrMissingField)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: liability amount must be positive", ErrInvalidAmount)
	}

	liability := &model.Liability{
		Type:           liabilityType,
		PersonInvolved: personInvolved,
		Amount:         amount,
		Description:    description,
		Status:         model.LiabilityUnpaid,
		DueDate:        dueDate,
	}
	liability.CreatedBy = userEmail
	liability.UpdatedBy = userEmail

	if err := s.repo.Create(liability); err != nil {
		return nil, err
	}

	s.activity.Log("liability_added",
		fmt.Sprintf("Utang ng tindahan: %s of ₱%.2f kay %s", liability.Type, liability.Amount, liability.PersonInvolved),
		userEmail,
		model.Payload{
			"liability_id":    liability.ID,
			"type":            liability.Type,
			"person_involved": liability.PersonInvolved,
			"amount":          liability.Amount,
		})
	return liability, nil
}

func (s *liabilityService) SetStatus(id uuid.UUID, status model.LiabilityStatus, userEmail string) (*model.Liability, error) {
	switch status {
	case model.LiabilityPaid, model.LiabilityUnpaid:
	default:
		return nil, fmt.Errorf("%w: status", ErrMissingField)
	}

	liability, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrLiabilityNotFound, id)
		}
		return nil, err
	}

	liability.Status = status
	liability.UpdatedBy = userEmail
	if err := s.repo.Update(liability); err != nil {
		return nil, err
	}

	s.activity.Log("liability_status_updated",
		fmt.Sprintf("Liability kay %s marked as %s", liability.PersonInvolved, status),
		userEmail,
		model.Payload{"liability_id": liability.ID, "status": status})
	return liability, nil
}

func (s *liabilityService) GetAllLiabilities() ([]model.Liability, error) {
	return s.repo.FindAll()
}

func (s *liabilityService) GetTotalUnpaid() (float64, error) {
	liabilities, err := s.repo.FindAll()
	if err != nil {
		return 0, err
	}
	var total float64
	for _, l := range liabilities {
		if l.Status == model.LiabilityUnpaid {
			total += l.Amount
		}
	}
	return total, nil
}
